package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"reflect"
	"strings"
	"time"

	"wellness/history"
	"wellness/middleware"
	"wellness/risk"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// SummaryMailer 发送历史汇总邮件
type SummaryMailer interface {
	SendWeeklySummary(toEmail, username string, entries []history.Entry) error
}

// WellnessHandler 健康风险评估处理器
type WellnessHandler struct {
	engine *risk.Engine
	store  *history.Store
	mailer SummaryMailer
	now    func() time.Time
}

// NewWellnessHandler 创建评估处理器
func NewWellnessHandler(engine *risk.Engine, store *history.Store, mailer SummaryMailer) *WellnessHandler {
	return &WellnessHandler{
		engine: engine,
		store:  store,
		mailer: mailer,
		now:    time.Now,
	}
}

// AnalyzeResponse 分析结果
type AnalyzeResponse struct {
	*risk.Assessment
	HistoryCount int `json:"history_count"`
}

// inputFields risk.Input 的全部 JSON 字段名，按表单顺序
var inputFields = func() []string {
	t := reflect.TypeOf(risk.Input{})
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name := strings.Split(t.Field(i).Tag.Get("json"), ",")[0]; name != "" && name != "-" {
			names = append(names, name)
		}
	}
	return names
}()

// inputFieldName 把结构体字段名换成 JSON 字段名
func inputFieldName(structField string) string {
	f, ok := reflect.TypeOf(risk.Input{}).FieldByName(structField)
	if !ok {
		return structField
	}
	name := strings.Split(f.Tag.Get("json"), ",")[0]
	if name == "" {
		return structField
	}
	return name
}

// missingInputField 返回第一个未提交（或为 null）的问卷字段
// 疲劳程度和运动时长允许取 0，缺省不能静默当作 0
func missingInputField(raw map[string]json.RawMessage) (string, bool) {
	for _, name := range inputFields {
		v, ok := raw[name]
		if !ok || len(v) == 0 || string(v) == "null" {
			return name, true
		}
	}
	return "", false
}

// assess 绑定输入、评估并写入当前会话历史；失败时已写出响应
func (h *WellnessHandler) assess(c *gin.Context) (*risk.Assessment, int, bool) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWithJSON(&raw); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return nil, 0, false
	}
	if field, missing := missingInputField(raw); missing {
		InvalidField(c, field, "字段 "+field+" 缺失")
		return nil, 0, false
	}

	var in risk.Input
	if err := c.ShouldBindBodyWithJSON(&in); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			field := inputFieldName(ve[0].StructField())
			InvalidField(c, field, "字段 "+field+" 无效")
			return nil, 0, false
		}
		BadRequest(c, "参数错误: "+err.Error())
		return nil, 0, false
	}

	a, err := h.engine.Analyze(in)
	if err != nil {
		var fe *risk.ValidationError
		if errors.As(err, &fe) {
			InvalidField(c, fe.Field, fe.Error())
			return nil, 0, false
		}
		if errors.Is(err, risk.ErrArity) {
			log.Printf("错误: 模型输入维度不一致: %v", err)
		} else {
			log.Printf("错误: 风险评估失败: %v", err)
		}
		InternalError(c, SafeErrorMessage(err, "风险评估失败"))
		return nil, 0, false
	}

	pct := make(map[string]int, len(a.Risks))
	for _, r := range a.Risks {
		pct[string(r.Category)] = r.Percent
	}
	entry := history.NewEntry(h.now(), a.OverallScore, pct, in.WorkoutMinutes)
	n := h.store.Append(middleware.GetSessionKey(c), entry)
	return a, n, true
}

// Form 获取问卷表单
// @Summary 获取问卷表单
// @Description 返回当前报告变体的字段描述（区间、默认值、选项）与每日清单
// @Tags 健康评估
// @Produce json
// @Success 200 {object} Response{data=risk.FormSchema} "获取成功"
// @Router /api/v1/wellness/form [get]
func (h *WellnessHandler) Form(c *gin.Context) {
	Success(c, risk.Form(h.engine.Profile()))
}

// Analyze 风险分析
// @Summary 风险分析
// @Description 对问卷回答逐类别预测风险概率，给出总体健康分、风险等级、危急提醒、建议和运动反馈，并写入当前会话历史。问卷字段全部必填，疲劳程度和运动时长缺省时不按 0 处理
// @Tags 健康评估
// @Accept json
// @Produce json
// @Param request body risk.Input true "问卷回答"
// @Success 200 {object} Response{data=AnalyzeResponse} "分析成功"
// @Failure 400 {object} Response{data=FieldError} "字段缺失、超出范围或取值无效"
// @Failure 429 {object} Response "请求过于频繁"
// @Failure 500 {object} Response "服务器错误"
// @Router /api/v1/wellness/analyze [post]
func (h *WellnessHandler) Analyze(c *gin.Context) {
	a, n, ok := h.assess(c)
	if !ok {
		return
	}
	Success(c, AnalyzeResponse{Assessment: a, HistoryCount: n})
}

// AnalyzeText 风险分析（纯文本报告）
// @Summary 风险分析（纯文本）
// @Description 与风险分析相同，以纯文本报告返回
// @Tags 健康评估
// @Accept json
// @Produce plain
// @Param request body risk.Input true "问卷回答"
// @Success 200 {string} string "文本报告"
// @Failure 400 {object} Response{data=FieldError} "字段缺失、超出范围或取值无效"
// @Router /api/v1/wellness/analyze/text [post]
func (h *WellnessHandler) AnalyzeText(c *gin.Context) {
	a, _, ok := h.assess(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := risk.RenderText(&buf, a); err != nil {
		InternalError(c, "生成报告失败")
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

// History 获取历史记录
// @Summary 获取历史记录
// @Description 返回当前会话最近的分析记录，按时间先后排列
// @Tags 健康评估
// @Produce json
// @Success 200 {object} Response{data=[]history.Entry} "获取成功"
// @Router /api/v1/wellness/history [get]
func (h *WellnessHandler) History(c *gin.Context) {
	Success(c, h.store.Entries(middleware.GetSessionKey(c)))
}

// Trend 获取趋势
// @Summary 获取趋势
// @Description 返回总分、运动时长和各类别风险的时间序列；没有历史时 empty=true 并附提示
// @Tags 健康评估
// @Produce json
// @Success 200 {object} Response{data=history.Trend} "获取成功"
// @Router /api/v1/wellness/trend [get]
func (h *WellnessHandler) Trend(c *gin.Context) {
	Success(c, h.store.Trend(middleware.GetSessionKey(c)))
}

// ClearHistory 清空历史记录
// @Summary 清空历史记录
// @Description 清空当前会话的分析记录
// @Tags 健康评估
// @Produce json
// @Success 200 {object} Response "清空成功"
// @Router /api/v1/wellness/history [delete]
func (h *WellnessHandler) ClearHistory(c *gin.Context) {
	h.store.Clear(middleware.GetSessionKey(c))
	SuccessWithMessage(c, "历史记录已清空", nil)
}
