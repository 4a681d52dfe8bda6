package usecase

import (
	"context"

	"notifier/internal/domain/service"
)

// EventReport summarizes the synchronous part of event handling. Push and
// email run independently of the caller and report through logs only.
type EventReport struct {
	NotificationID string `json:"notification_id,omitempty"` // Empty when the in-app channel was denied.
}

// EventUsecase turns semantic account events into channel dispatches.
type EventUsecase interface {
	// HandleAccountEvent writes the gated in-app record synchronously,
	// then fans out push and email on detached contexts with per-channel
	// timeouts. Only the in-app write can fail the call; the other
	// channels are best effort by design.
	HandleAccountEvent(ctx context.Context, event *service.AccountEvent) (*EventReport, error)

	// SubmitAccountEvent enqueues the event for asynchronous handling
	// when a publisher is configured, and handles it inline otherwise.
	SubmitAccountEvent(ctx context.Context, event *service.AccountEvent) error
}
