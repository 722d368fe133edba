package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/leadmarket/internal/entity"
)

func createLeadInput() CreateLeadInput {
	return CreateLeadInput{
		VendorID: "vendor-1",
		Lead:     fullyValidInput(),
	}
}

func newCreateLeadUseCase(leadRepo *MockLeadRepository, validationRepo *MockValidationRecordRepository) *CreateLeadUseCase {
	return NewCreateLeadUseCase(leadRepo, validationRepo, NewLeadValidator(), NewScoringEngine())
}

func TestCreateLead_HappyPathAutoApproves(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	validationRepo := new(MockValidationRecordRepository)

	leadRepo.On("FindByVendorAndEmail", mock.Anything, "vendor-1", "john.doe@acme.com").Return(nil, entity.ErrLeadNotFound)
	leadRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Lead")).Return(nil)
	validationRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.ValidationRecord")).Return(nil)

	uc := newCreateLeadUseCase(leadRepo, validationRepo)
	out, err := uc.Execute(context.Background(), createLeadInput())

	assert.NoError(t, err)
	assert.NotEmpty(t, out.LeadID)
	assert.Equal(t, 100.0, out.LeadScore)
	assert.Equal(t, "A+", out.QualityGrade)
	assert.Equal(t, entity.ValidationValidated, out.ValidationStatus)
	assert.Equal(t, entity.ApprovalApproved, out.ApprovalStatus)
	assert.Empty(t, out.Issues)
	leadRepo.AssertExpectations(t)
	validationRepo.AssertExpectations(t)
}

func TestCreateLead_DuplicateEmailForVendorIsRejected(t *testing.T) {
	leadRepo := new(MockLeadRepository)

	existing := newTestLead("")
	leadRepo.On("FindByVendorAndEmail", mock.Anything, "vendor-1", "john.doe@acme.com").Return(existing, nil)

	uc := newCreateLeadUseCase(leadRepo, new(MockValidationRecordRepository))
	_, err := uc.Execute(context.Background(), createLeadInput())

	de, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, "DUPLICATE", de.Code)
	leadRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateLead_RequiredFields(t *testing.T) {
	uc := newCreateLeadUseCase(new(MockLeadRepository), new(MockValidationRecordRepository))

	_, err := uc.Execute(context.Background(), CreateLeadInput{Lead: fullyValidInput()})
	assert.True(t, IsDomainError(err))

	input := createLeadInput()
	input.Lead.Title = ""
	_, err = uc.Execute(context.Background(), input)
	assert.True(t, IsDomainError(err))

	input = createLeadInput()
	input.Lead.Price = "-50"
	_, err = uc.Execute(context.Background(), input)
	assert.True(t, IsDomainError(err))
}

func TestCreateLead_CompensatesWhenValidationRecordFails(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	validationRepo := new(MockValidationRecordRepository)

	leadRepo.On("FindByVendorAndEmail", mock.Anything, "vendor-1", "john.doe@acme.com").Return(nil, entity.ErrLeadNotFound)
	leadRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	validationRepo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)
	// The saga must undo the lead insert.
	leadRepo.On("DeleteMany", mock.Anything, mock.AnythingOfType("[]string")).Return(1, nil)

	uc := newCreateLeadUseCase(leadRepo, validationRepo)
	_, err := uc.Execute(context.Background(), createLeadInput())

	assert.Error(t, err)
	assert.True(t, IsTechnicalError(err))
	leadRepo.AssertCalled(t, "DeleteMany", mock.Anything, mock.AnythingOfType("[]string"))
}

func TestCreateLead_NormalizesEmailForAdmissionCheck(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	validationRepo := new(MockValidationRecordRepository)

	input := createLeadInput()
	input.Lead.Email = "  John.Doe@ACME.com "

	leadRepo.On("FindByVendorAndEmail", mock.Anything, "vendor-1", "john.doe@acme.com").Return(nil, entity.ErrLeadNotFound)
	leadRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	validationRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := newCreateLeadUseCase(leadRepo, validationRepo)
	_, err := uc.Execute(context.Background(), input)

	assert.NoError(t, err)
	leadRepo.AssertExpectations(t)
}
