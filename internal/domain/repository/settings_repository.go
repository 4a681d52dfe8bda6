package repository

import (
	"context"

	"notifier/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSettingsNotFound is returned when an account has no settings document.
// Absence is a common, valid state; callers resolve defaults themselves.
var ErrSettingsNotFound = errors.New("notification settings not found")

// SettingsRepository defines read access to per-account notification settings.
type SettingsRepository interface {
	// FindByAccount retrieves the settings document for an account, or
	// ErrSettingsNotFound when none exists.
	FindByAccount(ctx context.Context, accountID string) (*entity.NotificationSettings, error)
}
