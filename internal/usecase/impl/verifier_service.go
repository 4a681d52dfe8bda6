package impl

import (
	"context"
	"log/slog"

	"notifier/config"
	"notifier/internal/domain/service"
	"notifier/internal/usecase"
)

// verifierService implements the VerifierUsecase interface.
//
// Registration and dispatch may race on a store with read-after-write lag:
// a dispatch issued right after registering can read a pre-registration
// token set and miss the issuing device. The delays are tunable heuristics
// for that lag, not a consistency guarantee.
type verifierService struct {
	devices   usecase.DeviceUsecase
	scheduler service.Scheduler
	cfg       *config.Config
	logger    *slog.Logger
}

// NewVerifierService is the constructor for verifierService.
func NewVerifierService(
	devices usecase.DeviceUsecase,
	scheduler service.Scheduler,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.VerifierUsecase {
	return &verifierService{
		devices:   devices,
		scheduler: scheduler,
		cfg:       cfg,
		logger:    logger,
	}
}

// ScheduleVerifiedSend defers the dispatch behind a token existence check.
// Whichever branch runs, send is invoked exactly once per call. The caller
// returns immediately; outcomes are logged only.
func (srv *verifierService) ScheduleVerifiedSend(accountID string, reg *usecase.TokenRegistration, send func(ctx context.Context) error) {
	if reg == nil || reg.Token == "" {
		srv.logger.Warn("verified send scheduled without a token", slog.String("account_id", accountID))

		return
	}

	srv.scheduler.Schedule(srv.cfg.Verify.Delay, func() {
		ctx := context.Background()

		exists, err := srv.devices.VerifyTokenRegistered(ctx, accountID, reg.Token)
		if err != nil {
			srv.logger.Warn("token verification failed, treating as unregistered",
				slog.Any("error", err), slog.String("account_id", accountID))
		}

		if exists {
			srv.runSend(ctx, accountID, send)

			return
		}

		// The registration did not land or is not yet visible. Replay it,
		// give the store a shorter settle interval, then send regardless:
		// a missed push here is acceptable, a duplicate is not.
		if err := srv.devices.RegisterDeviceToken(ctx, accountID, reg); err != nil {
			srv.logger.Warn("token re-registration failed",
				slog.Any("error", err), slog.String("account_id", accountID))
		}

		srv.scheduler.Schedule(srv.cfg.Verify.RetryDelay, func() {
			srv.runSend(context.Background(), accountID, send)
		})
	})
}

func (srv *verifierService) runSend(ctx context.Context, accountID string, send func(ctx context.Context) error) {
	if err := send(ctx); err != nil {
		srv.logger.Error("verified dispatch failed",
			slog.Any("error", err), slog.String("account_id", accountID))

		return
	}

	srv.logger.Debug("verified dispatch completed", slog.String("account_id", accountID))
}
