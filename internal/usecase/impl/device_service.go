package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "notifier/internal/delivery/context"
	"notifier/internal/domain/entity"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/repository"
	"notifier/internal/usecase"

	"github.com/pkg/errors"
)

// tokenUpsertAttempts bounds the conditional-write retry loop. Two devices
// racing on the same token converge within one retry; more attempts only
// cover pathological store behavior.
const tokenUpsertAttempts = 3

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(
	accountRepo repository.AccountRepository,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	return &deviceService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDeviceToken upserts a token by value using conditional single
// document updates: refresh-in-place when the token is already present,
// otherwise a guarded append that fails instead of duplicating when a
// concurrent registration won the race. A lost race retries the refresh.
func (srv *deviceService) RegisterDeviceToken(ctx context.Context, accountID string, reg *usecase.TokenRegistration) error {
	if accountID == "" || reg == nil || reg.Token == "" {
		return domainerrors.ErrValidationFailed.WithDetails("accountId and token are required")
	}

	deviceType := reg.DeviceType
	if deviceType == "" {
		deviceType = entity.DeviceTypeWeb
	}

	now := time.Now()
	token := &entity.DeviceToken{
		Token:       reg.Token,
		DeviceType:  deviceType,
		UserAgent:   reg.UserAgent,
		IsActive:    true,
		CreatedAt:   now,
		LastUpdated: now,
	}

	for attempt := 1; attempt <= tokenUpsertAttempts; attempt++ {
		touched, err := srv.accountRepo.TouchDeviceToken(ctx, accountID, token)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "refresh device token")
		}
		if touched {
			srv.log(ctx).Debug("device token refreshed",
				slog.String("account_id", accountID),
				slog.String("device_type", string(deviceType)),
				slog.Int("attempt", attempt))

			return nil
		}

		err = srv.accountRepo.AppendDeviceToken(ctx, accountID, token)
		if err == nil {
			srv.log(ctx).Info("device token registered",
				slog.String("account_id", accountID),
				slog.String("device_type", string(deviceType)))

			return nil
		}
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}
		if !errors.Is(err, repository.ErrTokenConflict) {
			return errors.Wrap(err, "append device token")
		}
		// Another registration appended the same token between our two
		// writes. Loop back and refresh the entry it created.
	}

	return domainerrors.ErrTokenRegistrationConflict
}

// VerifyTokenRegistered is the cheap existence check used by the delivery
// verifier; a missing account simply means the token is not registered.
func (srv *deviceService) VerifyTokenRegistered(ctx context.Context, accountID, token string) (bool, error) {
	if accountID == "" || token == "" {
		return false, domainerrors.ErrValidationFailed.WithDetails("accountId and token are required")
	}

	exists, err := srv.accountRepo.HasActiveDeviceToken(ctx, accountID, token)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "verify device token")
	}

	return exists, nil
}

// RemoveDeviceToken marks the entry inactive. The record stays: pruning is
// a separate concern and inactive entries are skipped by dispatch.
func (srv *deviceService) RemoveDeviceToken(ctx context.Context, accountID, token string) error {
	if accountID == "" || token == "" {
		return domainerrors.ErrValidationFailed.WithDetails("accountId and token are required")
	}

	deactivated, err := srv.accountRepo.DeactivateDeviceToken(ctx, accountID, token)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return errors.Wrap(err, "deactivate device token")
	}
	if !deactivated {
		return domainerrors.ErrTokensNotFound
	}

	return nil
}
