package risk

import "math"

// Tier 风险等级
type Tier string

const (
	TierLow      Tier = "Low"
	TierModerate Tier = "Moderate"
	TierHigh     Tier = "High"
)

// 分级阈值（百分比）
const (
	moderateFromPercent = 30
	highFromPercent     = 70
)

const (
	// DefaultEscalationThreshold 任一类别概率严格大于该值时触发危急提醒
	DefaultEscalationThreshold = 0.75
	// AdvisoryThreshold 概率严格大于该值时附加建议
	AdvisoryThreshold = 0.5
)

// TierFor 按展示用的整数百分比对固定断点 30/70 分级，保证数字与等级一致
func TierFor(p float64) Tier {
	pct := Percent(p)
	switch {
	case pct < moderateFromPercent:
		return TierLow
	case pct < highFromPercent:
		return TierModerate
	default:
		return TierHigh
	}
}

// OverallScore round((1 - mean(probs)) * 100)，结果在 [0,100]
func OverallScore(probs []float64) int {
	if len(probs) == 0 {
		return 100
	}
	var sum float64
	for _, p := range probs {
		sum += p
	}
	score := int(math.Round((1 - sum/float64(len(probs))) * 100))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Escalated 最大概率严格超过阈值时为 true
func Escalated(probs []float64, threshold float64) bool {
	for _, p := range probs {
		if p > threshold {
			return true
		}
	}
	return false
}

// NeedsAdvisory 概率严格大于 0.5 时需要附加建议
func NeedsAdvisory(p float64) bool {
	return p > AdvisoryThreshold
}

// Percent 概率转整数百分比（截断，0.296 显示为 29）
func Percent(p float64) int {
	return int(p * 100)
}
