package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor_Breakpoints(t *testing.T) {
	tests := []struct {
		p    float64
		want Tier
	}{
		{0, TierLow},
		{0.29, TierLow},
		{0.30, TierModerate},
		{0.69, TierModerate},
		{0.70, TierHigh},
		{1, TierHigh},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, TierFor(tt.p), "TierFor(%v)", tt.p)
	}
}

func TestOverallScore(t *testing.T) {
	assert.Equal(t, 70, OverallScore([]float64{0.2, 0.4}))
	assert.Equal(t, 100, OverallScore([]float64{0, 0, 0}))
	assert.Equal(t, 0, OverallScore([]float64{1, 1}))
	assert.Equal(t, 88, OverallScore([]float64{0.125}))
	assert.Equal(t, 100, OverallScore(nil))

	probs := []float64{0.1, 0.5, 0.9, 0.3, 0.1, 0.6}
	score := OverallScore(probs)
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 100)
	assert.Equal(t, 58, score)
}

func TestEscalated(t *testing.T) {
	assert.False(t, Escalated([]float64{0.1, 0.75}, DefaultEscalationThreshold))
	assert.True(t, Escalated([]float64{0.1, 0.7501}, DefaultEscalationThreshold))
	assert.False(t, Escalated(nil, DefaultEscalationThreshold))
}

func TestNeedsAdvisory(t *testing.T) {
	assert.False(t, NeedsAdvisory(0.5))
	assert.True(t, NeedsAdvisory(0.5001))
	assert.False(t, NeedsAdvisory(0.2))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(0))
	assert.Equal(t, 50, Percent(0.5))
	assert.Equal(t, 82, Percent(0.8251))
	assert.Equal(t, 100, Percent(1))
}

func TestPercentAndTierAgree(t *testing.T) {
	tests := []struct {
		p       float64
		percent int
		tier    Tier
	}{
		{0.296, 29, TierLow},
		{0.2999, 29, TierLow},
		{0.697, 69, TierModerate},
		{0.6999, 69, TierModerate},
		{0.70, 70, TierHigh},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.percent, Percent(tt.p), "Percent(%v)", tt.p)
		assert.Equalf(t, tt.tier, TierFor(tt.p), "TierFor(%v)", tt.p)
	}
	// 任意概率下，百分比落在等级对应的区间内
	for i := 0; i <= 1000; i++ {
		p := float64(i) / 1000
		pct := Percent(p)
		switch TierFor(p) {
		case TierLow:
			assert.Less(t, pct, 30)
		case TierModerate:
			assert.GreaterOrEqual(t, pct, 30)
			assert.Less(t, pct, 70)
		case TierHigh:
			assert.GreaterOrEqual(t, pct, 70)
		}
	}
}
