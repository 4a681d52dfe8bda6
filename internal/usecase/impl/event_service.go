package impl

import (
	"context"
	"fmt"
	"log/slog"

	"notifier/config"
	deliverycontext "notifier/internal/delivery/context"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/service"
	"notifier/internal/usecase"
)

// eventService implements the EventUsecase interface. It is the fan-out
// point: one semantic account event becomes an in-app record plus
// best-effort push and email dispatches.
type eventService struct {
	notifications usecase.NotificationUsecase
	devices       usecase.DeviceUsecase
	push          usecase.PushUsecase
	email         usecase.EmailUsecase
	verifier      usecase.VerifierUsecase
	publisher     service.EventPublisher // nil when no queue is configured
	cfg           *config.Config
	logger        *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(
	notifications usecase.NotificationUsecase,
	devices usecase.DeviceUsecase,
	push usecase.PushUsecase,
	email usecase.EmailUsecase,
	verifier usecase.VerifierUsecase,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.EventUsecase {
	return &eventService{
		notifications: notifications,
		devices:       devices,
		push:          push,
		email:         email,
		verifier:      verifier,
		publisher:     publisher,
		cfg:           cfg,
		logger:        logger,
	}
}

func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleAccountEvent writes the in-app record synchronously; that write is
// the only failure the caller sees. Push and email run on detached
// contexts in any order, independent of the record write and of each
// other: a failed record never holds back the channels, and a failed
// channel never rolls back the record. Channel outcomes are logged for
// operability only.
func (srv *eventService) HandleAccountEvent(ctx context.Context, event *service.AccountEvent) (*usecase.EventReport, error) {
	if event == nil || event.AccountID == "" || event.Message == "" || event.Category == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("accountId, message and category are required")
	}

	notificationID, createErr := srv.notifications.CreateNotification(ctx, event.AccountID, event.Message, event.Category)
	if createErr != nil {
		srv.log(ctx).Error("in-app record write failed",
			slog.Any("error", createErr), slog.String("account_id", event.AccountID))
	}

	detached := context.WithoutCancel(ctx)
	go srv.dispatchPush(detached, event)
	go srv.dispatchEmail(detached, event)

	if createErr != nil {
		return nil, createErr
	}

	return &usecase.EventReport{NotificationID: notificationID}, nil
}

// SubmitAccountEvent hands the event to the queue when one is configured,
// otherwise handles it inline.
func (srv *eventService) SubmitAccountEvent(ctx context.Context, event *service.AccountEvent) error {
	if event == nil || event.AccountID == "" || event.Message == "" || event.Category == "" {
		return domainerrors.ErrValidationFailed.WithDetails("accountId, message and category are required")
	}

	if srv.publisher == nil {
		_, err := srv.HandleAccountEvent(ctx, event)

		return err
	}

	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	return srv.publisher.PublishAccountEvent(ctx, event)
}

// dispatchPush sends the push leg. When the event carries the issuing
// device's token, that token is re-registered first and the dispatch is
// deferred behind the delivery verifier so the registering device is not
// missed by a stale token read.
func (srv *eventService) dispatchPush(ctx context.Context, event *service.AccountEvent) {
	message := &service.PushMessage{
		Title: eventTitle(event),
		Body:  event.Message,
		Link:  event.Link,
		Data:  map[string]string{"category": string(event.Category)},
	}

	if event.OriginToken == "" {
		report, err := srv.push.DispatchPush(ctx, event.AccountID, message)
		srv.logPushOutcome(ctx, event, report, err)

		return
	}

	reg := &usecase.TokenRegistration{
		Token:      event.OriginToken,
		DeviceType: event.OriginDeviceType,
		UserAgent:  event.OriginUserAgent,
	}
	if err := srv.devices.RegisterDeviceToken(ctx, event.AccountID, reg); err != nil {
		srv.log(ctx).Warn("origin token registration failed",
			slog.Any("error", err), slog.String("account_id", event.AccountID))
	}

	srv.verifier.ScheduleVerifiedSend(event.AccountID, reg, func(ctx context.Context) error {
		report, err := srv.push.DispatchPush(ctx, event.AccountID, message)
		srv.logPushOutcome(ctx, event, report, err)

		return err
	})
}

func (srv *eventService) logPushOutcome(ctx context.Context, event *service.AccountEvent, report *usecase.PushReport, err error) {
	if err != nil {
		srv.log(ctx).Error("push dispatch failed",
			slog.Any("error", err),
			slog.String("account_id", event.AccountID),
			slog.String("category", string(event.Category)))

		return
	}

	srv.log(ctx).Info("push dispatch finished",
		slog.String("account_id", event.AccountID),
		slog.String("outcome", string(report.Outcome)),
		slog.Int("success_count", report.SuccessCount),
		slog.Int("failure_count", report.FailureCount))
}

func (srv *eventService) dispatchEmail(ctx context.Context, event *service.AccountEvent) {
	report, err := srv.email.DispatchEmail(ctx, event.AccountID, eventTitle(event), emailBody(event))
	if err != nil {
		srv.log(ctx).Error("email dispatch failed",
			slog.Any("error", err),
			slog.String("account_id", event.AccountID),
			slog.String("category", string(event.Category)))

		return
	}

	srv.log(ctx).Info("email dispatch finished",
		slog.String("account_id", event.AccountID),
		slog.String("outcome", string(report.Outcome)))
}

func eventTitle(event *service.AccountEvent) string {
	if event.Title != "" {
		return event.Title
	}

	return "Account activity"
}

func emailBody(event *service.AccountEvent) string {
	return fmt.Sprintf("<p>%s</p>", event.Message)
}
