package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"notifier/config"
	deliverycontext "notifier/internal/delivery/context"
	"notifier/internal/domain/entity"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/repository"
	"notifier/internal/usecase"
	"notifier/internal/util"

	"github.com/pkg/errors"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	accountRepo      repository.AccountRepository
	settings         usecase.SettingsUsecase
	cfg              *config.Config
	logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	accountRepo repository.AccountRepository,
	settings usecase.SettingsUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		accountRepo:      accountRepo,
		settings:         settings,
		cfg:              cfg,
		logger:           logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateNotification writes one gated in-app record. A denied channel
// returns an empty ID with nil error: user opt-out is silence, not failure.
func (srv *notificationService) CreateNotification(ctx context.Context, accountID, message string, category entity.Category) (string, error) {
	if accountID == "" || message == "" || category == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("accountId, message and category are required")
	}

	if !srv.settings.AllowsInApp(ctx, accountID, category) {
		srv.log(ctx).Debug("in-app notification denied by settings",
			slog.String("account_id", accountID),
			slog.String("category", string(category)))

		return "", nil
	}

	notification := &entity.Notification{
		ID:        util.NotificationID(accountID),
		AccountID: accountID,
		Message:   message,
		Category:  category,
		Read:      false,
		CreatedAt: time.Now(),
	}
	notification.Decorate(srv.profileImage(ctx, accountID, category))

	if err := srv.notificationRepo.Create(ctx, notification); err != nil {
		return "", errors.Wrap(err, "create notification record")
	}

	srv.log(ctx).Info("notification created",
		slog.String("notification_id", notification.ID),
		slog.String("account_id", accountID),
		slog.String("category", string(category)))

	return notification.ID, nil
}

// profileImage resolves the fallback decoration for categories without a
// fixed icon. Best effort: a lookup failure only means no decoration.
func (srv *notificationService) profileImage(ctx context.Context, accountID string, category entity.Category) string {
	if _, ok := entity.IconFor(category); ok {
		return ""
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("profile image lookup failed",
				slog.Any("error", err), slog.String("account_id", accountID))
		}

		return ""
	}

	return account.ProfileImageURL
}

// ListNotifications fetches the account's records unordered, sorts newest
// first in the application layer and truncates afterwards. The store is
// not assumed to support compound ordering on this key.
func (srv *notificationService) ListNotifications(ctx context.Context, accountID string, limit int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = srv.cfg.Dispatch.ListLimit
	}

	notifications, err := srv.notificationRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "list notifications")
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})

	if len(notifications) > limit {
		notifications = notifications[:limit]
	}

	return notifications, nil
}

// MarkRead marks a single notification as read.
func (srv *notificationService) MarkRead(ctx context.Context, id string) error {
	if err := srv.notificationRepo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "mark notification read")
	}

	return nil
}

// MarkAllRead marks every unread record for the account as read.
func (srv *notificationService) MarkAllRead(ctx context.Context, accountID string) (int64, error) {
	updated, err := srv.notificationRepo.MarkAllRead(ctx, accountID)
	if err != nil {
		return 0, errors.Wrap(err, "mark all notifications read")
	}

	return updated, nil
}

// DeleteNotification hard-deletes one record.
func (srv *notificationService) DeleteNotification(ctx context.Context, id string) error {
	if err := srv.notificationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "delete notification")
	}

	return nil
}

// CountUnread returns the number of unread records for the account.
func (srv *notificationService) CountUnread(ctx context.Context, accountID string) (int64, error) {
	count, err := srv.notificationRepo.CountUnread(ctx, accountID)
	if err != nil {
		return 0, errors.Wrap(err, "count unread notifications")
	}

	return count, nil
}
