package usecase

import (
	"math"
	"strings"

	"github.com/xavierca1/leadmarket/internal/entity"
)

type ScoreResult struct {
	OverallScore          float64 `json:"overall_score"`          // 0-100
	QualityGrade          string  `json:"quality_grade"`          // A+ .. D
	ConversionProbability float64 `json:"conversion_probability"` // capped at 0.95
	Fallback              bool    `json:"fallback,omitempty"`
}

// ScoringEngine converts a lead into a bounded quality score and grade.
// It is stateless and safe for concurrent use; construct one and inject it
// wherever scoring is needed.
type ScoringEngine struct {
	weights            FeatureVector
	baseConversionRate float64
}

func NewScoringEngine() *ScoringEngine {
	return &ScoringEngine{
		weights:            FeatureVector{25, 15, 15, 20, 10},
		baseConversionRate: 0.15,
	}
}

var industryFactors = map[string]float64{
	"technology":         0.9,
	"telecommunications": 0.85,
	"healthcare":         0.85,
	"consulting":         0.85,
	"finance":            0.8,
	"marketing":          0.8,
	"e-commerce":         0.8,
	"energy":             0.8,
	"education":          0.75,
	"manufacturing":      0.75,
	"media":              0.75,
	"retail":             0.7,
	"legal":              0.7,
	"automotive":         0.7,
	"real estate":        0.65,
	"hospitality":        0.65,
	"construction":       0.6,
}

// Score never fails: any unusable computation falls back to the simplified
// score so callers always receive a value.
func (e *ScoringEngine) Score(lead *entity.Lead) (result ScoreResult) {
	defer func() {
		if r := recover(); r != nil {
			result = e.fallbackResult(lead)
		}
	}()

	if lead == nil {
		return e.fallbackResult(lead)
	}

	features := ExtractFeatures(lead)

	score := 0.0
	for i, f := range features {
		score += f * e.weights[i]
	}
	score += completenessBonus(lead)

	score = clamp(score, 0, 100)
	score = round2(score)

	return ScoreResult{
		OverallScore:          score,
		QualityGrade:          gradeFor(score),
		ConversionProbability: e.conversionProbability(score, lead.Industry, features[featEmailPattern]),
	}
}

// +5 for each optional-but-valuable field present, max +15.
func completenessBonus(lead *entity.Lead) float64 {
	bonus := 0.0
	if lead.Location != "" {
		bonus += 5
	}
	if lead.Domain != "" {
		bonus += 5
	}
	if lead.JobTitle != "" && lead.JobTitle != "Unknown" {
		bonus += 5
	}
	return bonus
}

func gradeFor(score float64) string {
	switch {
	case score >= 85:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 75:
		return "A-"
	case score >= 70:
		return "B+"
	case score >= 65:
		return "B"
	case score >= 60:
		return "B-"
	case score >= 55:
		return "C+"
	case score >= 50:
		return "C"
	default:
		return "D"
	}
}

// conversionProbability is a secondary heuristic: base rate scaled by score,
// industry and contact quality, capped at 95%. Monotone in score.
func (e *ScoringEngine) conversionProbability(score float64, industry string, contactFactor float64) float64 {
	scoreMultiplier := (score / 100.0) * 2

	industryFactor, ok := industryFactors[strings.ToLower(industry)]
	if !ok {
		industryFactor = 0.6
	}
	industryMultiplier := 0.8 + industryFactor*0.4

	contactMultiplier := 0.7 + contactFactor*0.6

	p := e.baseConversionRate * scoreMultiplier * industryMultiplier * contactMultiplier
	return round2(math.Min(p, 0.95))
}

// fallbackResult is the simplified scoring path: base 50 plus fixed bonuses
// for senior titles, a premium domain and a present location.
func (e *ScoringEngine) fallbackResult(lead *entity.Lead) ScoreResult {
	score := 50.0

	if lead != nil {
		jobTitle := strings.ToLower(lead.JobTitle)
		if containsAny(jobTitle, "ceo", "cto", "cfo", "director", "president") {
			score += 20
		} else if containsAny(jobTitle, "manager", "senior", "vp", "head") {
			score += 10
		}
		if strings.Contains(strings.ToLower(lead.Domain), ".com") {
			score += 10
		}
		if lead.Location != "" {
			score += 5
		}
	}

	score = math.Min(score, 100)
	return ScoreResult{
		OverallScore:          score,
		QualityGrade:          gradeFor(score),
		ConversionProbability: round2(math.Min(e.baseConversionRate*(score/100.0)*2, 0.95)),
		Fallback:              true,
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
