package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xavierca1/leadmarket/internal/entity"
)

type ValidationResult struct {
	Score   float64                 `json:"score"` // 0-1
	Status  entity.ValidationStatus `json:"status"`
	Issues  []string                `json:"issues"`
	Details map[string]string       `json:"details"`
}

// LeadValidator runs the per-field admission rules. Weights sum to 0.70;
// the completeness bonus adds at most 0.30 and the composite is clamped to 1.
type LeadValidator struct {
	priceMin float64
	priceMax float64
}

func NewLeadValidator() *LeadValidator {
	return &LeadValidator{priceMin: 10.0, priceMax: 10000.0}
}

const (
	weightEmail       = 0.15
	weightPhone       = 0.10
	weightCompanyName = 0.10
	weightContactName = 0.10
	weightPrice       = 0.05
	weightIndustry    = 0.05
	weightLocation    = 0.05
	weightDescription = 0.10
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
var nonPhoneChars = regexp.MustCompile(`[^\d+]`)

var disposableDomains = []string{"temp-mail.org", "10minutemail.com", "guerrillamail.com"}

var roleAccountPrefixes = []string{"info@", "contact@", "sales@", "hello@", "support@"}

var validIndustries = []string{
	"technology", "healthcare", "finance", "education", "retail",
	"manufacturing", "real estate", "legal", "marketing",
	"food & beverage", "construction", "consulting", "non-profit", "e-commerce",
}

// Validate checks every field independently and combines the weighted pass
// scores into a composite in [0,1].
func (v *LeadValidator) Validate(input RawLeadInput) ValidationResult {
	score := 0.0
	details := make(map[string]string)
	var issues []string

	add := func(field string, contribution float64, detail, issue string) {
		score += contribution
		details[field] = detail
		if issue != "" {
			issues = append(issues, issue)
		}
	}

	contribution, detail, issue := v.validateEmail(input.Email)
	add("email", contribution, detail, issue)
	contribution, detail, issue = v.validatePhone(input.Phone)
	add("phone", contribution, detail, issue)
	contribution, detail, issue = v.validateLength("company name", input.CompanyName, 2, 100, weightCompanyName)
	add("company_name", contribution, detail, issue)
	contribution, detail, issue = v.validateLength("contact name", input.FullName, 2, 50, weightContactName)
	add("contact_name", contribution, detail, issue)
	contribution, detail, issue = v.validatePrice(input.Price)
	add("price", contribution, detail, issue)
	contribution, detail, issue = v.validateIndustry(input.Industry)
	add("industry", contribution, detail, issue)
	contribution, detail, issue = v.validateLength("location", input.Location, 3, 100, weightLocation)
	add("location", contribution, detail, issue)
	contribution, detail, issue = v.validateLength("description", input.Description, 10, 1000, weightDescription)
	add("description", contribution, detail, issue)

	bonus := completenessValidationBonus(input)
	score += bonus
	details["completeness_bonus"] = fmt.Sprintf("%.2f", bonus)

	score = clamp(score, 0, 1)

	return ValidationResult{
		Score:   score,
		Status:  deriveValidationStatus(score, len(issues)),
		Issues:  issues,
		Details: details,
	}
}

func (v *LeadValidator) validateEmail(email string) (float64, string, string) {
	if email == "" {
		return 0, "missing", "Email is required"
	}
	if !emailPattern.MatchString(email) {
		return 0, "invalid format", "Invalid email format"
	}

	lower := strings.ToLower(email)
	domain := lower[strings.Index(lower, "@")+1:]

	quality := 0.8
	issue := ""
	for _, d := range disposableDomains {
		if domain == d {
			quality = 0.5
			issue = "Disposable email domain detected"
		}
	}
	for _, prefix := range roleAccountPrefixes {
		if strings.HasPrefix(lower, prefix) {
			quality = 1.0
		}
	}

	return weightEmail * quality, fmt.Sprintf("valid, domain %s", domain), issue
}

func (v *LeadValidator) validatePhone(phone string) (float64, string, string) {
	if phone == "" {
		return 0, "missing", "Phone number is required"
	}
	cleaned := nonPhoneChars.ReplaceAllString(phone, "")
	if !phonePattern.MatchString(cleaned) {
		return 0, "invalid format", "Invalid phone format"
	}
	return weightPhone, "valid", ""
}

func (v *LeadValidator) validateLength(name, value string, min, max int, weight float64) (float64, string, string) {
	if value == "" {
		msg := fmt.Sprintf("%s is required", capitalize(name))
		return 0, "missing", msg
	}
	if len(value) < min || len(value) > max {
		msg := fmt.Sprintf("%s must be between %d and %d characters", capitalize(name), min, max)
		return 0, "out of bounds", msg
	}
	return weight, fmt.Sprintf("valid, length %d", len(value)), ""
}

func (v *LeadValidator) validatePrice(raw string) (float64, string, string) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, "unparsable", "Invalid price format - must be a number"
	}
	if price < v.priceMin || price > v.priceMax {
		msg := fmt.Sprintf("Price must be between $%.0f and $%.0f", v.priceMin, v.priceMax)
		return 0, "out of range", msg
	}
	return weightPrice, fmt.Sprintf("valid, %.2f", price), ""
}

func (v *LeadValidator) validateIndustry(industry string) (float64, string, string) {
	lower := strings.ToLower(strings.TrimSpace(industry))
	for _, valid := range validIndustries {
		if lower == valid {
			return weightIndustry, "valid", ""
		}
	}
	return 0, "unknown industry", fmt.Sprintf("Industry must be one of: %s", strings.Join(validIndustries, ", "))
}

// 0.2 x required-field completion plus 0.1 x optional-field completion.
func completenessValidationBonus(input RawLeadInput) float64 {
	required := []string{input.Email, input.Phone, input.CompanyName, input.FullName, input.Location, input.Description}
	optional := []string{input.Domain, input.JobTitle}

	requiredPresent := 0
	for _, f := range required {
		if f != "" {
			requiredPresent++
		}
	}
	optionalPresent := 0
	for _, f := range optional {
		if f != "" {
			optionalPresent++
		}
	}

	return 0.2*(float64(requiredPresent)/float64(len(required))) +
		0.1*(float64(optionalPresent)/float64(len(optional)))
}

func deriveValidationStatus(score float64, issueCount int) entity.ValidationStatus {
	switch {
	case score >= 0.8 && issueCount == 0:
		return entity.ValidationValidated
	case score >= 0.6:
		return entity.ValidationNeedsReview
	default:
		return entity.ValidationRejected
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// DeriveApprovalStatus maps a validation outcome to the initial approval state.
func DeriveApprovalStatus(status entity.ValidationStatus, score float64) entity.ApprovalStatus {
	switch {
	case status == entity.ValidationValidated && score >= 0.8:
		return entity.ApprovalApproved
	case status == entity.ValidationRejected:
		return entity.ApprovalRejected
	default:
		return entity.ApprovalUnderReview
	}
}
