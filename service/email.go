package service

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"wellness/config"
	"wellness/history"
	"wellness/risk"

	"gopkg.in/gomail.v2"
)

// ErrEmailDisabled 邮件服务未启用
var ErrEmailDisabled = fmt.Errorf("邮件服务未启用，请配置 WELLNESS_EMAIL_ENABLED=true")

// EmailService 邮件服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendWeeklySummary 把最近的分析记录汇总后发送到用户邮箱
func (s *EmailService) SendWeeklySummary(toEmail, username string, entries []history.Entry) error {
	if !s.cfg.Enabled {
		return ErrEmailDisabled
	}
	if len(entries) == 0 {
		return fmt.Errorf("没有可发送的历史记录")
	}

	subject := "【健康风险】近期评估汇总"
	body := s.generateSummaryBody(username, entries)

	return s.sendEmail(toEmail, subject, body)
}

// summaryCategories 汇总表的类别列，按类别名排序
func summaryCategories(entries []history.Entry) []string {
	seen := map[string]bool{}
	var cats []string
	for _, e := range entries {
		for c := range e.Percentages {
			if !seen[c] {
				seen[c] = true
				cats = append(cats, c)
			}
		}
	}
	sort.Strings(cats)
	return cats
}

// generateSummaryBody 生成汇总邮件内容
func (s *EmailService) generateSummaryBody(username string, entries []history.Entry) string {
	cats := summaryCategories(entries)

	var head strings.Builder
	head.WriteString("<th>日期</th><th>总分</th><th>运动(分钟)</th>")
	for _, c := range cats {
		fmt.Fprintf(&head, "<th>%s</th>", html.EscapeString(risk.Category(c).Label()))
	}

	var rows strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%d</td><td>%d</td>", html.EscapeString(e.Date), e.Score, e.WorkoutMinutes)
		for _, c := range cats {
			fmt.Fprintf(&rows, "<td>%d%%</td>", e.Percentages[c])
		}
		rows.WriteString("</tr>\n")
	}

	latest := entries[len(entries)-1]

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: 'Microsoft YaHei', Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 720px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #ec4899, #db2777); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 16px; }
        .score { font-size: 32px; font-weight: bold; color: #db2777; }
        table { width: 100%%; border-collapse: collapse; font-size: 13px; }
        th { background: #fdf2f8; color: #9d174d; padding: 8px; border: 1px solid #fbcfe8; }
        td { padding: 8px; border: 1px solid #f3f4f6; text-align: center; }
        .warning { background: #fff3cd; border-left: 4px solid #ffc107; padding: 15px; margin: 20px 0; border-radius: 4px; }
        .warning p { margin: 0; color: #856404; font-size: 14px; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🌸 健康风险评估</h1>
        </div>
        <div class="content">
            <p>尊敬的 <strong>%s</strong>，您好！</p>
            <p>最近一次评估（%s）的总体健康分：<span class="score">%d/100</span></p>
            <table>
                <tr>%s</tr>
%s            </table>
            <div class="warning">
                <p>%s</p>
            </div>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复</p>
        </div>
    </div>
</body>
</html>
`, html.EscapeString(username), html.EscapeString(latest.Date), latest.Score, head.String(), rows.String(), html.EscapeString(risk.Disclaimer))
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}
