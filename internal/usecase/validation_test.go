package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/leadmarket/internal/entity"
)

func fullyValidInput() RawLeadInput {
	return RawLeadInput{
		Title:       "Enterprise SaaS buyer",
		FullName:    "John Doe",
		Email:       "john.doe@acme.com",
		Phone:       "+15125551234",
		JobTitle:    "CEO",
		CompanyName: "Acme Technologies",
		Location:    "Austin, TX",
		Domain:      "acme.com",
		Industry:    "technology",
		Description: "Decision maker actively evaluating vendor contracts for Q3.",
		Price:       "250",
	}
}

func TestValidate_FullyValidLead(t *testing.T) {
	v := NewLeadValidator()

	result := v.Validate(fullyValidInput())

	// Weighted fields give 0.67 (email quality 0.8), bonus 0.3.
	assert.InDelta(t, 0.97, result.Score, 0.001)
	assert.Equal(t, entity.ValidationValidated, result.Status)
	assert.Empty(t, result.Issues)
}

func TestValidate_MissingEverything(t *testing.T) {
	v := NewLeadValidator()

	result := v.Validate(RawLeadInput{})

	assert.Equal(t, entity.ValidationRejected, result.Status)
	assert.Contains(t, result.Issues, "Email is required")
	assert.Contains(t, result.Issues, "Phone number is required")
	assert.Contains(t, result.Issues, "Company name is required")
}

func TestValidate_DisposableEmailForcesReview(t *testing.T) {
	v := NewLeadValidator()
	input := fullyValidInput()
	input.Email = "john.doe@temp-mail.org"

	result := v.Validate(input)

	// Score stays above 0.8 but the issue blocks the validated status.
	assert.InDelta(t, 0.925, result.Score, 0.001)
	assert.Equal(t, entity.ValidationNeedsReview, result.Status)
	assert.Contains(t, result.Issues, "Disposable email domain detected")
}

func TestValidate_RoleAccountScoresFullEmailWeight(t *testing.T) {
	v := NewLeadValidator()
	input := fullyValidInput()
	input.Email = "sales@acme.com"

	result := v.Validate(input)

	assert.InDelta(t, 1.0, result.Score, 0.001)
	assert.Empty(t, result.Issues)
}

func TestValidate_InvalidEmailFormat(t *testing.T) {
	v := NewLeadValidator()
	input := fullyValidInput()
	input.Email = "not-an-email"

	result := v.Validate(input)

	assert.Contains(t, result.Issues, "Invalid email format")
}

func TestValidate_PhoneToleratesFormatting(t *testing.T) {
	v := NewLeadValidator()
	input := fullyValidInput()
	input.Phone = "+1 (512) 555-1234"

	result := v.Validate(input)

	assert.NotContains(t, result.Issues, "Invalid phone format")
}

func TestValidate_PriceOutOfRange(t *testing.T) {
	v := NewLeadValidator()

	for _, price := range []string{"5", "10001"} {
		input := fullyValidInput()
		input.Price = price
		result := v.Validate(input)
		assert.Contains(t, result.Issues, "Price must be between $10 and $10000", "price %s", price)
	}
}

func TestValidate_UnparsablePrice(t *testing.T) {
	v := NewLeadValidator()
	input := fullyValidInput()
	input.Price = "a lot"

	result := v.Validate(input)

	assert.Contains(t, result.Issues, "Invalid price format - must be a number")
}

func TestValidate_UnknownIndustry(t *testing.T) {
	v := NewLeadValidator()
	input := fullyValidInput()
	input.Industry = "alchemy"

	result := v.Validate(input)

	assert.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0], "Industry must be one of")
}

func TestValidate_IndustryIsCaseInsensitive(t *testing.T) {
	v := NewLeadValidator()
	input := fullyValidInput()
	input.Industry = "  Technology "

	result := v.Validate(input)

	assert.Empty(t, result.Issues)
}

func TestCompletenessValidationBonus(t *testing.T) {
	assert.InDelta(t, 0.3, completenessValidationBonus(fullyValidInput()), 0.001)
	assert.InDelta(t, 0.0, completenessValidationBonus(RawLeadInput{}), 0.001)

	half := RawLeadInput{Email: "a@b.co", Phone: "+1512", CompanyName: "Acme", Domain: "acme.co"}
	assert.InDelta(t, 0.2*0.5+0.1*0.5, completenessValidationBonus(half), 0.001)
}

func TestDeriveValidationStatus(t *testing.T) {
	assert.Equal(t, entity.ValidationValidated, deriveValidationStatus(0.8, 0))
	assert.Equal(t, entity.ValidationNeedsReview, deriveValidationStatus(0.8, 1))
	assert.Equal(t, entity.ValidationNeedsReview, deriveValidationStatus(0.6, 0))
	assert.Equal(t, entity.ValidationRejected, deriveValidationStatus(0.59, 0))
}

func TestDeriveApprovalStatus(t *testing.T) {
	assert.Equal(t, entity.ApprovalApproved, DeriveApprovalStatus(entity.ValidationValidated, 0.9))
	assert.Equal(t, entity.ApprovalRejected, DeriveApprovalStatus(entity.ValidationRejected, 0.3))
	assert.Equal(t, entity.ApprovalUnderReview, DeriveApprovalStatus(entity.ValidationNeedsReview, 0.7))
}
