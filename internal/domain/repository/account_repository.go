// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"notifier/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when an account document does not exist.
	ErrAccountNotFound = errors.New("account not found")
	// ErrTokenConflict is returned when a conditional token write lost its
	// race and the caller should re-read and retry.
	ErrTokenConflict = errors.New("device token write conflict")
)

// AccountRepository defines account-document operations, including the
// embedded device-token registry. Token writes are conditional single
// document updates so concurrent registrations cannot produce duplicates.
type AccountRepository interface {
	// FindByID retrieves an account by its identifier.
	FindByID(ctx context.Context, accountID string) (*entity.Account, error)

	// TouchDeviceToken refreshes the entry whose token value matches:
	// device type, user agent, last-updated and active flag are all
	// overwritten. Returns false when no entry matches the token.
	TouchDeviceToken(ctx context.Context, accountID string, token *entity.DeviceToken) (bool, error)

	// AppendDeviceToken appends a new token entry, guarded so an entry
	// with the same token value cannot already exist. Returns
	// ErrTokenConflict when the guard fails, ErrAccountNotFound when the
	// account is absent.
	AppendDeviceToken(ctx context.Context, accountID string, token *entity.DeviceToken) error

	// HasActiveDeviceToken reports whether the token value is registered
	// and active on the account.
	HasActiveDeviceToken(ctx context.Context, accountID string, token string) (bool, error)

	// DeactivateDeviceToken marks the matching token entry inactive.
	// Returns false when no entry matches.
	DeactivateDeviceToken(ctx context.Context, accountID string, token string) (bool, error)
}
