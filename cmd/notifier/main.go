package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"notifier/config"
	"notifier/internal/delivery"
	"notifier/internal/delivery/http"
	"notifier/internal/delivery/http/router/handler"
	"notifier/internal/domain/service"
	logs "notifier/internal/infra/log"
	"notifier/internal/infra/mail"
	"notifier/internal/infra/mongo"
	"notifier/internal/infra/pubsub"
	"notifier/internal/infra/push"
	"notifier/internal/infra/schedule"
	"notifier/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		mongo.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongo.NewAccountRepository,
			mongo.NewNotificationRepository,
			mongo.NewSettingsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPushSender,
			newMailSender,
			schedule.NewClock,
			schedule.NewScheduler,
			pubsub.NewEventPublisher,
		),
	)
}

// newPushSender creates the Firebase push transport with dependency injection
func newPushSender(ctx context.Context, cfg *config.Config) (service.PushSender, error) {
	if cfg.Firebase == nil {
		return nil, nil // Push channel is optional
	}

	sender, err := push.NewFirebaseSender(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase sender: %w", err)
	}

	return sender, nil
}

// newMailSender creates the SMTP mail transport with dependency injection
func newMailSender(cfg *config.Config) (service.MailSender, error) {
	if cfg.SMTP == nil {
		return nil, nil // Email channel is optional
	}

	sender, err := mail.NewSMTPSender(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP sender: %w", err)
	}

	return sender, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSettingsService,
			impl.NewNotificationService,
			impl.NewDeviceService,
			impl.NewPushService,
			impl.NewEmailService,
			impl.NewVerifierService,
			impl.NewEventService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNotificationHandler,
			handler.NewDeviceHandler,
			handler.NewDispatchHandler,
			handler.NewEventHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
