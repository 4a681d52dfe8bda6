package impl

import (
	"context"
	"log/slog"

	"notifier/config"
	deliverycontext "notifier/internal/delivery/context"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/repository"
	"notifier/internal/domain/service"
	"notifier/internal/usecase"

	"github.com/pkg/errors"
)

// emailService implements the EmailUsecase interface.
type emailService struct {
	accountRepo repository.AccountRepository
	settings    usecase.SettingsUsecase
	sender      service.MailSender
	cfg         *config.Config
	logger      *slog.Logger
}

// NewEmailService is the constructor for emailService.
func NewEmailService(
	accountRepo repository.AccountRepository,
	settings usecase.SettingsUsecase,
	sender service.MailSender,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.EmailUsecase {
	return &emailService{
		accountRepo: accountRepo,
		settings:    settings,
		sender:      sender,
		cfg:         cfg,
		logger:      logger,
	}
}

func (srv *emailService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DispatchEmail resolves the recipient, gates on the email setting,
// verifies transport connectivity and sends. The handshake runs before
// every send so a dead transport surfaces as transient, not as a hard
// failure halfway through delivery.
func (srv *emailService) DispatchEmail(ctx context.Context, accountID, subject, htmlBody string) (*usecase.EmailReport, error) {
	if accountID == "" || subject == "" || htmlBody == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("accountId, subject and htmlBody are required")
	}
	if srv.sender == nil {
		return nil, domainerrors.ErrConfiguration.WithDetails("email transport is not configured")
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "resolve account for email dispatch")
	}
	if account.Email == "" {
		return nil, domainerrors.ErrEmailNotFound
	}

	if !srv.settings.AllowsEmail(ctx, accountID) {
		srv.log(ctx).Debug("email dispatch skipped by settings", slog.String("account_id", accountID))

		return &usecase.EmailReport{Outcome: usecase.OutcomeSkipped}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, srv.cfg.Dispatch.EmailTimeout)
	defer cancel()

	if err := srv.sender.Verify(ctx); err != nil {
		srv.log(ctx).Warn("email transport verification failed",
			slog.Any("error", err), slog.String("account_id", accountID))

		return nil, domainerrors.ErrTransientDelivery.WithDetails(err.Error())
	}

	message := &service.MailMessage{
		To:      account.Email,
		ToName:  account.DisplayName,
		Subject: subject,
		HTML:    htmlBody,
	}
	if err := srv.sender.Send(ctx, message); err != nil {
		return nil, errors.Wrap(err, "send email")
	}

	srv.log(ctx).Info("email dispatched",
		slog.String("account_id", accountID), slog.String("subject", subject))

	return &usecase.EmailReport{Outcome: usecase.OutcomeSent}, nil
}
