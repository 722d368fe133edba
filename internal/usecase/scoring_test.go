package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/leadmarket/internal/entity"
)

func TestScore_TopTierLeadClampsAt100(t *testing.T) {
	engine := NewScoringEngine()
	lead := newTestLead("")

	result := engine.Score(lead)

	// Raw weighted sum is 135 plus 15 completeness bonus, clamped to 100.
	assert.Equal(t, 100.0, result.OverallScore)
	assert.Equal(t, "A+", result.QualityGrade)
	assert.False(t, result.Fallback)
	assert.Equal(t, 0.45, result.ConversionProbability)
}

func TestScore_MidTierLead(t *testing.T) {
	engine := NewScoringEngine()
	lead := &entity.Lead{
		JobTitle:    "Account Manager",
		Email:       "bob@acme.biz",
		CompanyName: "Acme Co",
		Industry:    "retail",
	}

	result := engine.Score(lead)

	// 1*25 + 0.5*15 + 0.5*15 + 0.5*20 + 0.5*10 = 55, +5 for the job title.
	assert.Equal(t, 60.0, result.OverallScore)
	assert.Equal(t, "B-", result.QualityGrade)
}

func TestScore_IsIdempotent(t *testing.T) {
	engine := NewScoringEngine()
	lead := newTestLead("")

	first := engine.Score(lead)
	second := engine.Score(lead)

	assert.Equal(t, first, second)
}

func TestScore_NilLeadUsesFallback(t *testing.T) {
	engine := NewScoringEngine()

	result := engine.Score(nil)

	assert.True(t, result.Fallback)
	assert.Equal(t, 50.0, result.OverallScore)
	assert.Equal(t, "C", result.QualityGrade)
}

func TestFallbackResult_Bonuses(t *testing.T) {
	engine := NewScoringEngine()
	lead := &entity.Lead{
		JobTitle: "CTO",
		Domain:   "acme.com",
		Location: "Austin, TX",
	}

	result := engine.fallbackResult(lead)

	// 50 base + 20 executive title + 10 .com domain + 5 location.
	assert.Equal(t, 85.0, result.OverallScore)
	assert.Equal(t, "A+", result.QualityGrade)
	assert.True(t, result.Fallback)
}

func TestGradeBoundaries(t *testing.T) {
	cases := []struct {
		score    float64
		expected string
	}{
		{100, "A+"},
		{85, "A+"},
		{84.99, "A"},
		{80, "A"},
		{75, "A-"},
		{70, "B+"},
		{65, "B"},
		{60, "B-"},
		{55, "C+"},
		{50, "C"},
		{49.99, "D"},
		{0, "D"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, gradeFor(tc.score), "score %.2f", tc.score)
	}
}

func TestConversionProbability_UnknownIndustryUsesDefaultFactor(t *testing.T) {
	engine := NewScoringEngine()

	// 0.15 * 2 * (0.8 + 0.6*0.4) * (0.7 + 1.0*0.6)
	p := engine.conversionProbability(100, "something else", 1.0)

	assert.Equal(t, 0.41, p)
}

func TestConversionProbability_NeverExceedsCap(t *testing.T) {
	engine := NewScoringEngine()
	engine.baseConversionRate = 10 // force an absurd base

	p := engine.conversionProbability(100, "technology", 1.0)

	assert.Equal(t, 0.95, p)
}

func TestConversionProbability_MonotoneInScore(t *testing.T) {
	engine := NewScoringEngine()

	low := engine.conversionProbability(40, "technology", 0.5)
	high := engine.conversionProbability(90, "technology", 0.5)

	assert.Less(t, low, high)
}
