package usecase

import (
	"strings"

	"github.com/xavierca1/leadmarket/internal/entity"
)

// FeatureVector is the fixed ordered encoding of a lead used as scoring input:
// seniority, domain quality, location tier, email pattern, company name length.
type FeatureVector [5]float64

const (
	featSeniority = iota
	featDomain
	featLocation
	featEmailPattern
	featCompanyLength
)

var seniorityTiers = []struct {
	score    float64
	keywords []string
}{
	{3, []string{"ceo", "cto", "cfo", "president"}},
	{2, []string{"director", "vp", "vice president", "head of"}},
	{1, []string{"manager", "senior", "lead", "principal"}},
}

var premiumTLDs = []string{".com", ".io", ".co", ".ai", ".tech"}

var majorCities = []string{
	"new york", "san francisco", "london", "boston", "seattle",
	"austin", "los angeles", "chicago", "denver", "atlanta",
	"toronto", "vancouver", "sydney", "melbourne",
}

// ExtractFeatures is a pure function: identical input always yields the
// identical vector. No I/O, no randomness.
func ExtractFeatures(lead *entity.Lead) FeatureVector {
	jobTitle := strings.ToLower(lead.JobTitle)
	companyName := strings.ToLower(lead.CompanyName)
	location := strings.ToLower(lead.Location)
	domain := strings.ToLower(lead.Domain)
	email := strings.ToLower(lead.Email)

	var v FeatureVector
	v[featSeniority] = seniorityScore(jobTitle)
	v[featDomain] = domainScore(domain)
	v[featLocation] = locationScore(location)
	v[featEmailPattern] = emailPatternScore(email)
	v[featCompanyLength] = companyLengthScore(companyName)
	return v
}

// The highest matching tier wins, no aggregation across keywords from
// different tiers.
func seniorityScore(jobTitle string) float64 {
	for _, tier := range seniorityTiers {
		for _, kw := range tier.keywords {
			if strings.Contains(jobTitle, kw) {
				return tier.score
			}
		}
	}
	return 0
}

// Missing domain counts as non-premium.
func domainScore(domain string) float64 {
	for _, tld := range premiumTLDs {
		if strings.Contains(domain, tld) {
			return 1.0
		}
	}
	return 0.5
}

func locationScore(location string) float64 {
	for _, city := range majorCities {
		if strings.Contains(location, city) {
			return 1.0
		}
	}
	return 0.5
}

// firstname.lastname local parts score highest, any non-trivial local part
// scores 0.7, everything else (including missing email) 0.5.
func emailPatternScore(email string) float64 {
	local := ""
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}

	if parts := strings.Split(local, "."); len(parts) == 2 && parts[0] != "" && parts[1] != "" {
		return 1.0
	}
	if len(local) > 3 {
		return 0.7
	}
	return 0.5
}

// Company name length is a weak proxy for an established company.
func companyLengthScore(companyName string) float64 {
	switch n := len(companyName); {
	case n > 15:
		return 1.0
	case n > 8:
		return 0.7
	default:
		return 0.5
	}
}
