package service

import (
	"context"

	"notifier/internal/domain/entity"
)

// AccountEvent represents a semantic account event queued for asynchronous
// fan-out by the dispatch worker.
type AccountEvent struct {
	RequestID string          `json:"request_id,omitempty"` // For distributed tracing.
	AccountID string          `json:"account_id"`
	Category  entity.Category `json:"category"`
	Message   string          `json:"message"`
	Title     string          `json:"title,omitempty"` // Push/email title; defaults derived from category when empty.
	Link      string          `json:"link,omitempty"`  // Optional click-through URL for push.

	// Origin device info, present when the event was raised by a client
	// that holds a push token. The token is re-registered before dispatch
	// so the issuing device is never missed by its own notification.
	OriginToken      string            `json:"origin_token,omitempty"`
	OriginDeviceType entity.DeviceType `json:"origin_device_type,omitempty"`
	OriginUserAgent  string            `json:"origin_user_agent,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account event for async processing
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
