package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/leadmarket/internal/entity"
)

func TestExtractFeatures_TopTierLead(t *testing.T) {
	lead := &entity.Lead{
		JobTitle:    "CEO",
		Domain:      "acme.io",
		Location:    "Austin, TX",
		Email:       "john.doe@acme.io",
		CompanyName: "Acme Technologies International",
	}

	v := ExtractFeatures(lead)

	assert.Equal(t, FeatureVector{3, 1.0, 1.0, 1.0, 1.0}, v)
}

func TestExtractFeatures_IsDeterministic(t *testing.T) {
	lead := newTestLead("")

	first := ExtractFeatures(lead)
	second := ExtractFeatures(lead)

	assert.Equal(t, first, second)
}

func TestSeniorityScore(t *testing.T) {
	cases := []struct {
		title    string
		expected float64
	}{
		{"CEO & Founder", 3},
		{"Chief Technology Officer (CTO)", 3},
		{"President", 3},
		{"VP of Sales", 2},
		{"Senior Director of Engineering", 2}, // director outranks senior
		{"Head of Growth", 2},
		{"Account Manager", 1},
		{"Senior Analyst", 1},
		{"Principal Engineer", 1},
		{"Intern", 0},
		{"", 0},
	}

	for _, tc := range cases {
		lead := &entity.Lead{JobTitle: tc.title}
		v := ExtractFeatures(lead)
		assert.Equal(t, tc.expected, v[0], "title %q", tc.title)
	}
}

func TestDomainScore(t *testing.T) {
	assert.Equal(t, 1.0, ExtractFeatures(&entity.Lead{Domain: "acme.com"})[1])
	assert.Equal(t, 1.0, ExtractFeatures(&entity.Lead{Domain: "startup.ai"})[1])
	assert.Equal(t, 0.5, ExtractFeatures(&entity.Lead{Domain: "acme.biz"})[1])
	assert.Equal(t, 0.5, ExtractFeatures(&entity.Lead{})[1])
}

func TestLocationScore(t *testing.T) {
	assert.Equal(t, 1.0, ExtractFeatures(&entity.Lead{Location: "New York, NY"})[2])
	assert.Equal(t, 1.0, ExtractFeatures(&entity.Lead{Location: "Greater London Area"})[2])
	assert.Equal(t, 0.5, ExtractFeatures(&entity.Lead{Location: "Springfield"})[2])
	assert.Equal(t, 0.5, ExtractFeatures(&entity.Lead{})[2])
}

func TestEmailPatternScore(t *testing.T) {
	cases := []struct {
		email    string
		expected float64
	}{
		{"john.doe@acme.io", 1.0},
		{"jane.smith@corp.com", 1.0},
		{"john.doe.jr@acme.io", 0.7}, // three tokens, not firstname.lastname
		{"jdoe@acme.io", 0.7},
		{"jd@acme.io", 0.5},
		{".doe@acme.io", 0.7}, // empty first token falls through to length
		{"", 0.5},
	}

	for _, tc := range cases {
		v := ExtractFeatures(&entity.Lead{Email: tc.email})
		assert.Equal(t, tc.expected, v[3], "email %q", tc.email)
	}
}

func TestCompanyLengthScore(t *testing.T) {
	assert.Equal(t, 1.0, ExtractFeatures(&entity.Lead{CompanyName: "Acme Technologies International"})[4])
	assert.Equal(t, 0.7, ExtractFeatures(&entity.Lead{CompanyName: "Acme Corp."})[4])
	assert.Equal(t, 0.5, ExtractFeatures(&entity.Lead{CompanyName: "Acme"})[4])
	assert.Equal(t, 0.5, ExtractFeatures(&entity.Lead{})[4])
}
