package risk

import (
	"fmt"
	"log"
)

// Disclaimer 每份报告附带的免责声明
const Disclaimer = "AI generated advice is informational only; consult a doctor for medical advice."

// CategoryRisk 单个类别的评估结果
type CategoryRisk struct {
	Category    Category `json:"category"`
	Label       string   `json:"label"`
	Probability float64  `json:"probability"`
	Percent     int      `json:"percent"`
	Tier        Tier     `json:"tier"`
}

// Advisory 高风险类别的建议
type Advisory struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Percent  int      `json:"percent"`
	Text     string   `json:"text"`
}

// Assessment 一次分析的完整输出
type Assessment struct {
	Profile          Profile        `json:"profile"`
	OverallScore     int            `json:"overall_score"`
	Risks            []CategoryRisk `json:"risks"`
	Escalation       bool           `json:"escalation"`
	Advisories       []Advisory     `json:"advisories"`
	ExerciseFeedback string         `json:"exercise_feedback"`
	Insights         []string       `json:"insights"`
	Disclaimer       string         `json:"disclaimer"`
}

// Probabilities 以类别为键的概率表
func (a *Assessment) Probabilities() map[Category]float64 {
	out := make(map[Category]float64, len(a.Risks))
	for _, r := range a.Risks {
		out[r.Category] = r.Probability
	}
	return out
}

// Option 引擎可选配置
type Option func(*Engine)

// WithEscalationThreshold 覆盖危急提醒阈值
func WithEscalationThreshold(t float64) Option {
	return func(e *Engine) {
		if t > 0 && t < 1 {
			e.escalation = t
		}
	}
}

// Engine 风险聚合器：持有启动时拟合好的模型集合，可并发只读使用
type Engine struct {
	profile    Profile
	categories []Category
	models     map[Category]*Model
	escalation float64
}

// NewEngine 为指定变体拟合全部类别模型
func NewEngine(profile Profile, opts ...Option) (*Engine, error) {
	cats := profile.Categories()
	if len(cats) == 0 {
		return nil, fmt.Errorf("报告变体 %q 没有类别", profile)
	}
	e := &Engine{
		profile:    profile,
		categories: cats,
		models:     make(map[Category]*Model, len(cats)),
		escalation: DefaultEscalationThreshold,
	}
	for _, o := range opts {
		o(e)
	}
	for _, c := range cats {
		table, err := c.Table()
		if err != nil {
			return nil, err
		}
		m, err := Fit(table)
		if err != nil {
			return nil, fmt.Errorf("拟合 %s 模型失败: %w", c, err)
		}
		log.Printf("已拟合风险模型 %s（%d 次迭代）", c, m.Iterations)
		e.models[c] = m
	}
	return e, nil
}

// Profile 当前报告变体
func (e *Engine) Profile() Profile { return e.profile }

// Categories 参与评估的类别
func (e *Engine) Categories() []Category {
	out := make([]Category, len(e.categories))
	copy(out, e.categories)
	return out
}

// Model 返回类别模型
func (e *Engine) Model(c Category) (*Model, bool) {
	m, ok := e.models[c]
	return m, ok
}

// Analyze 校验输入、逐类别预测并生成报告
func (e *Engine) Analyze(in Input) (*Assessment, error) {
	snap, err := Normalize(in, e.categories)
	if err != nil {
		return nil, err
	}

	a := &Assessment{
		Profile:    e.profile,
		Risks:      make([]CategoryRisk, 0, len(e.categories)),
		Advisories: []Advisory{},
		Disclaimer: Disclaimer,
	}
	probs := make([]float64, 0, len(e.categories))
	for _, c := range e.categories {
		p, err := e.models[c].Predict(snap[c])
		if err != nil {
			return nil, fmt.Errorf("类别 %s: %w", c, err)
		}
		probs = append(probs, p)
		a.Risks = append(a.Risks, CategoryRisk{
			Category:    c,
			Label:       c.Label(),
			Probability: p,
			Percent:     Percent(p),
			Tier:        TierFor(p),
		})
		if NeedsAdvisory(p) {
			a.Advisories = append(a.Advisories, Advisory{
				Category: c,
				Label:    c.Label(),
				Percent:  Percent(p),
				Text:     c.Advisory(),
			})
		}
	}

	a.OverallScore = OverallScore(probs)
	a.Escalation = Escalated(probs, e.escalation)
	a.ExerciseFeedback = ExerciseFeedback(in.WorkoutMinutes, in.ExerciseType)
	a.Insights = Insights(in)
	return a, nil
}
