package impl

import (
	"context"
	"log/slog"
	"sync"

	"notifier/config"
	deliverycontext "notifier/internal/delivery/context"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/repository"
	"notifier/internal/domain/service"
	"notifier/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// firebaseBatchSize is the transport's hard limit per multicast call.
const firebaseBatchSize = 500

// pushService implements the PushUsecase interface.
type pushService struct {
	accountRepo repository.AccountRepository
	settings    usecase.SettingsUsecase
	sender      service.PushSender
	cfg         *config.Config
	logger      *slog.Logger
}

// NewPushService is the constructor for pushService.
func NewPushService(
	accountRepo repository.AccountRepository,
	settings usecase.SettingsUsecase,
	sender service.PushSender,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PushUsecase {
	return &pushService{
		accountRepo: accountRepo,
		settings:    settings,
		sender:      sender,
		cfg:         cfg,
		logger:      logger,
	}
}

func (srv *pushService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DispatchPush gates on the push setting, resolves the active token set
// and multicasts. Skipped and NoTokens are reported as outcomes, never as
// errors: monitoring must not conflate opt-out with malfunction.
func (srv *pushService) DispatchPush(ctx context.Context, accountID string, message *service.PushMessage) (*usecase.PushReport, error) {
	if accountID == "" || message == nil || message.Title == "" || message.Body == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("accountId, title and body are required")
	}
	if srv.sender == nil {
		return nil, domainerrors.ErrConfiguration.WithDetails("push transport is not configured")
	}

	if !srv.settings.AllowsPush(ctx, accountID) {
		srv.log(ctx).Debug("push dispatch skipped by settings", slog.String("account_id", accountID))

		return &usecase.PushReport{Outcome: usecase.OutcomeSkipped}, nil
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "resolve account for push dispatch")
	}

	tokens := account.ActiveTokens()
	if len(tokens) == 0 {
		return &usecase.PushReport{Outcome: usecase.OutcomeNoTokens}, nil
	}

	return srv.multicast(ctx, tokens, message)
}

// BroadcastPush multicasts to caller-supplied tokens, bypassing account
// gating entirely. Target selection is the caller's responsibility.
func (srv *pushService) BroadcastPush(ctx context.Context, tokens []string, message *service.PushMessage) (*usecase.PushReport, error) {
	if message == nil || message.Title == "" || message.Body == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title and body are required")
	}
	if srv.sender == nil {
		return nil, domainerrors.ErrConfiguration.WithDetails("push transport is not configured")
	}
	if len(tokens) == 0 {
		return &usecase.PushReport{Outcome: usecase.OutcomeNoTokens}, nil
	}

	return srv.multicast(ctx, tokens, message)
}

// multicast fans the message out in transport-sized batches with bounded
// parallelism. A batch-level transport failure marks every token in that
// batch failed without aborting the remaining batches, keeping the
// report invariant: SuccessCount+FailureCount == len(tokens).
func (srv *pushService) multicast(ctx context.Context, tokens []string, message *service.PushMessage) (*usecase.PushReport, error) {
	ctx, cancel := context.WithTimeout(ctx, srv.cfg.Dispatch.PushTimeout)
	defer cancel()

	report := &usecase.PushReport{Outcome: usecase.OutcomeSent}

	var mu sync.Mutex
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(srv.cfg.Dispatch.PushParallelism)

	for start := 0; start < len(tokens); start += firebaseBatchSize {
		batch := tokens[start:min(start+firebaseBatchSize, len(tokens))]
		group.Go(func() error {
			result, err := srv.sender.SendMulticast(ctx, batch, message)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				srv.log(ctx).Error("push multicast batch failed",
					slog.Any("error", err), slog.Int("batch_size", len(batch)))
				report.FailureCount += len(batch)
				for _, token := range batch {
					report.Failures = append(report.Failures, service.TokenResult{Token: token, Error: err.Error()})
				}

				return nil
			}
			report.SuccessCount += result.SuccessCount
			report.FailureCount += result.FailureCount
			report.Failures = append(report.Failures, result.Failures...)

			return nil
		})
	}

	// Group functions never return errors; Wait only fences completion.
	_ = group.Wait()

	srv.log(ctx).Info("push multicast completed",
		slog.Int("tokens", len(tokens)),
		slog.Int("success_count", report.SuccessCount),
		slog.Int("failure_count", report.FailureCount))

	return report, nil
}
