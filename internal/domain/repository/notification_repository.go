package repository

import (
	"context"

	"notifier/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrNotificationNotFound is returned when a notification record does not exist.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines persistence for durable notification records.
type NotificationRepository interface {
	// Create persists a new notification record under its pre-generated ID.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByAccount retrieves every record owned by the account. No
	// ordering is assumed from the store; callers sort and truncate.
	FindByAccount(ctx context.Context, accountID string) ([]*entity.Notification, error)

	// MarkRead flips a single record to read.
	MarkRead(ctx context.Context, id string) error

	// MarkAllRead flips every unread record for the account and returns
	// how many were updated.
	MarkAllRead(ctx context.Context, accountID string) (int64, error)

	// Delete removes a record.
	Delete(ctx context.Context, id string) error

	// CountUnread returns the number of unread records for the account.
	CountUnread(ctx context.Context, accountID string) (int64, error)
}
