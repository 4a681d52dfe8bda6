package usecase

import (
	"context"

	"notifier/internal/domain/entity"
)

// TokenRegistration carries the device info for a token upsert.
type TokenRegistration struct {
	Token      string            `json:"token"`
	DeviceType entity.DeviceType `json:"device_type"`
	UserAgent  string            `json:"user_agent"`
}

// DeviceUsecase defines the interface for the per-account device-token registry.
type DeviceUsecase interface {
	// RegisterDeviceToken upserts a token by value: an entry already
	// holding the token is refreshed in place, otherwise a new entry is
	// appended. Idempotent; never produces duplicate entries, including
	// under concurrent registration of the same token.
	RegisterDeviceToken(ctx context.Context, accountID string, reg *TokenRegistration) error

	// VerifyTokenRegistered reports whether the token is present and
	// active on the account. Used by the delivery verifier and exposed
	// for diagnostics.
	VerifyTokenRegistered(ctx context.Context, accountID, token string) (bool, error)

	// RemoveDeviceToken marks the token inactive without deleting the entry.
	RemoveDeviceToken(ctx context.Context, accountID, token string) error
}
