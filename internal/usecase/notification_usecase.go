package usecase

import (
	"context"

	"notifier/internal/domain/entity"
)

// NotificationUsecase defines the interface for durable in-app notification
// record management.
type NotificationUsecase interface {
	// CreateNotification writes a gated notification record and returns
	// its generated ID. When settings deny the in-app channel for this
	// account+category, it returns an empty ID and nil error: a denied
	// channel is silent, not a failure.
	CreateNotification(ctx context.Context, accountID, message string, category entity.Category) (string, error)

	// ListNotifications retrieves up to limit records, newest first.
	ListNotifications(ctx context.Context, accountID string, limit int) ([]*entity.Notification, error)

	// MarkRead marks a single notification as read.
	MarkRead(ctx context.Context, id string) error

	// MarkAllRead marks every unread notification for the account as read
	// and returns how many records were updated.
	MarkAllRead(ctx context.Context, accountID string) (int64, error)

	// DeleteNotification hard-deletes a notification record.
	DeleteNotification(ctx context.Context, id string) error

	// CountUnread returns the number of unread records for the account.
	CountUnread(ctx context.Context, accountID string) (int64, error)
}
