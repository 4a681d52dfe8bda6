// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "notifier/internal/delivery/context"
	"notifier/internal/domain/entity"
	"notifier/internal/domain/repository"
	"notifier/internal/usecase"

	"github.com/pkg/errors"
)

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	settingsRepo repository.SettingsRepository
	logger       *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(
	settingsRepo repository.SettingsRepository,
	logger *slog.Logger,
) usecase.SettingsUsecase {
	return &settingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *settingsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AllowsInApp resolves category-level and in-app channel gating together.
// Always-allowed categories bypass the stored record entirely, so audit
// relevant events survive missing or malformed settings documents.
func (srv *settingsService) AllowsInApp(ctx context.Context, accountID string, category entity.Category) bool {
	if category.IsAlwaysAllowed() {
		return true
	}

	settings, err := srv.settingsRepo.FindByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			// No document at all: telemetry categories are opt-in,
			// everything else defaults to allowed.
			return !category.DeniedByDefault()
		}
		// A store error degrades to deny for anything that is not
		// always-allowed. Never propagated past this boundary.
		srv.log(ctx).Warn("settings lookup failed, denying category",
			slog.Any("error", err),
			slog.String("account_id", accountID),
			slog.String("category", string(category)))

		return false
	}

	if !settings.NotificationsEnabled || !settings.InAppEnabled {
		return false
	}

	if category.IsDefectRelated() && !settings.DefectAlerts {
		return false
	}

	if category.IsMachineRelated() && !settings.MachineAlerts {
		return false
	}

	return true
}

// AllowsPush reports channel-level push gating. Push is not in the
// denied-by-default set, so an absent record resolves to allowed.
func (srv *settingsService) AllowsPush(ctx context.Context, accountID string) bool {
	return srv.allowsChannel(ctx, accountID, "push", func(s *entity.NotificationSettings) bool {
		return s.PushEnabled
	})
}

// AllowsEmail reports channel-level email gating. Default when the record
// is absent: allowed.
func (srv *settingsService) AllowsEmail(ctx context.Context, accountID string) bool {
	return srv.allowsChannel(ctx, accountID, "email", func(s *entity.NotificationSettings) bool {
		return s.EmailEnabled
	})
}

func (srv *settingsService) allowsChannel(ctx context.Context, accountID, channel string, flag func(*entity.NotificationSettings) bool) bool {
	settings, err := srv.settingsRepo.FindByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return true
		}
		srv.log(ctx).Warn("settings lookup failed, using channel default",
			slog.Any("error", err),
			slog.String("account_id", accountID),
			slog.String("channel", channel))

		return true
	}

	return settings.NotificationsEnabled && flag(settings)
}
