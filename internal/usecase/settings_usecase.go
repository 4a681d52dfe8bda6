package usecase

import (
	"context"

	"notifier/internal/domain/entity"
)

// SettingsUsecase resolves whether an account+category+channel combination
// may produce output. Resolution never fails past this boundary: a store
// error degrades to allow for always-allowed categories and deny otherwise.
type SettingsUsecase interface {
	// AllowsInApp reports whether a durable in-app record may be written
	// for the category. Combines category-level and in-app channel gating.
	AllowsInApp(ctx context.Context, accountID string, category entity.Category) bool

	// AllowsPush reports whether the push channel is enabled for the
	// account. Channel-level only; category gating happens before dispatch.
	AllowsPush(ctx context.Context, accountID string) bool

	// AllowsEmail reports whether the email channel is enabled for the account.
	AllowsEmail(ctx context.Context, accountID string) bool
}
