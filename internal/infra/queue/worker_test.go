package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockVendorFinder struct {
	mock.Mock
}

func (m *MockVendorFinder) FindVendorEmail(ctx context.Context, vendorID string) (string, string, error) {
	args := m.Called(ctx, vendorID)
	return args.String(0), args.String(1), args.Error(2)
}

type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) SendLeadApproved(to, vendorName, leadTitle string) error {
	args := m.Called(to, vendorName, leadTitle)
	return args.Error(0)
}

func (m *MockMailSender) SendLeadRejected(to, vendorName, leadTitle, reason string) error {
	args := m.Called(to, vendorName, leadTitle, reason)
	return args.Error(0)
}

func TestProcessMessage_ApprovedRoutesToApprovalMail(t *testing.T) {
	vendors := new(MockVendorFinder)
	mailer := new(MockMailSender)

	vendors.On("FindVendorEmail", mock.Anything, "vendor-1").Return("ana@acme.com", "Ana", nil)
	mailer.On("SendLeadApproved", "ana@acme.com", "Ana", "Enterprise buyer").Return(nil)

	w := NewWorker(nil, vendors, mailer)
	err := w.processMessage(context.Background(), NotificationPayload{
		VendorID:  "vendor-1",
		LeadID:    "lead-1",
		LeadTitle: "Enterprise buyer",
		Kind:      KindLeadApproved,
	})

	assert.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestProcessMessage_RejectedCarriesReason(t *testing.T) {
	vendors := new(MockVendorFinder)
	mailer := new(MockMailSender)

	vendors.On("FindVendorEmail", mock.Anything, "vendor-1").Return("ana@acme.com", "Ana", nil)
	mailer.On("SendLeadRejected", "ana@acme.com", "Ana", "Enterprise buyer", "incomplete data").Return(nil)

	w := NewWorker(nil, vendors, mailer)
	err := w.processMessage(context.Background(), NotificationPayload{
		VendorID:  "vendor-1",
		LeadTitle: "Enterprise buyer",
		Kind:      KindLeadRejected,
		Message:   "incomplete data",
	})

	assert.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestProcessMessage_UnknownKindIsDropped(t *testing.T) {
	vendors := new(MockVendorFinder)
	mailer := new(MockMailSender)

	vendors.On("FindVendorEmail", mock.Anything, "vendor-1").Return("ana@acme.com", "Ana", nil)

	w := NewWorker(nil, vendors, mailer)
	err := w.processMessage(context.Background(), NotificationPayload{
		VendorID: "vendor-1",
		Kind:     "lead.sold",
	})

	assert.NoError(t, err)
	mailer.AssertNotCalled(t, "SendLeadApproved", mock.Anything, mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "SendLeadRejected", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessMessage_UnknownVendorFails(t *testing.T) {
	vendors := new(MockVendorFinder)
	mailer := new(MockMailSender)

	vendors.On("FindVendorEmail", mock.Anything, "ghost").Return("", "", assert.AnError)

	w := NewWorker(nil, vendors, mailer)
	err := w.processMessage(context.Background(), NotificationPayload{
		VendorID: "ghost",
		Kind:     KindLeadApproved,
	})

	assert.Error(t, err)
}
