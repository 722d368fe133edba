package usecase

import (
	"context"

	"github.com/xavierca1/leadmarket/internal/infra/queue"
)

// NotificationPublisherInterface hands transition events to the vendor
// notification channel. Fire-and-forget: callers log failures and move on.
type NotificationPublisherInterface interface {
	PublishLeadEvent(ctx context.Context, payload queue.NotificationPayload) error
}

// LeadStatsRepositoryInterface exposes the aggregate queries the pipeline
// summary needs without widening the entity repository contract.
type LeadStatsRepositoryInterface interface {
	PipelineSummary(ctx context.Context, vendorID string) (*PipelineSummary, error)
}
