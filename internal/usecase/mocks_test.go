package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/leadmarket/internal/entity"
	"github.com/xavierca1/leadmarket/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByVendorAndEmail(ctx context.Context, vendorID, email string) (*entity.Lead, error) {
	args := m.Called(ctx, vendorID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context, filter entity.LeadFilter) ([]*entity.Lead, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) DeleteMany(ctx context.Context, ids []string) (int, error) {
	args := m.Called(ctx, ids)
	return args.Int(0), args.Error(1)
}

// MockValidationRecordRepository
type MockValidationRecordRepository struct {
	mock.Mock
}

func (m *MockValidationRecordRepository) Create(ctx context.Context, record *entity.ValidationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockValidationRecordRepository) ListByLeadID(ctx context.Context, leadID string) ([]*entity.ValidationRecord, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ValidationRecord), args.Error(1)
}

// MockApprovalRecordRepository
type MockApprovalRecordRepository struct {
	mock.Mock
}

func (m *MockApprovalRecordRepository) Create(ctx context.Context, record *entity.ApprovalRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockApprovalRecordRepository) ListByLeadID(ctx context.Context, leadID string) ([]*entity.ApprovalRecord, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ApprovalRecord), args.Error(1)
}

// MockNotificationPublisher
type MockNotificationPublisher struct {
	mock.Mock
}

func (m *MockNotificationPublisher) PublishLeadEvent(ctx context.Context, payload queue.NotificationPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func newTestLead(id string) *entity.Lead {
	lead, _ := entity.NewLead("vendor-1", "Enterprise SaaS buyer", "John Doe", "john.doe@acme.io", "Acme Technologies International", "technology", 250)
	if id != "" {
		lead.ID = id
	}
	lead.JobTitle = "CEO"
	lead.Location = "Austin, TX"
	lead.Domain = "acme.io"
	return lead
}
