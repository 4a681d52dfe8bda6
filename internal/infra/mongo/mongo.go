// Package mongo contains the concrete implementation of the persistence
// layer on the MongoDB driver.
package mongo

import (
	"context"
	"log/slog"
	"time"

	"notifier/config"
	"notifier/internal/domain/lifecycle"
	"notifier/internal/errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB database handle. Connectivity is verified on
// startup with a bounded retry loop; the client is torn down on stop.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo

	client, err := mongo.Connect(
		options.Client().
			ApplyURI(cfg.URI).
			SetConnectTimeout(cfg.ConnectTimeout).
			SetMaxPoolSize(cfg.MaxPoolSize).
			SetMinPoolSize(cfg.MinPoolSize).
			SetMaxConnIdleTime(cfg.MaxConnIdleTime).
			SetRetryWrites(true).
			SetRetryReads(true),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return pingWithRetry(ctx, params.Logger, client, cfg)
		},
		OnStop: func(stopCtx context.Context) error {
			return client.Disconnect(stopCtx)
		},
	})

	return client.Database(cfg.Database), nil
}

func pingWithRetry(ctx context.Context, logger *slog.Logger, client *mongo.Client, cfg *config.MongoConfig) error {
	var lastErr error
	for attempt := 1; attempt <= cfg.RetryAttempts; attempt++ {
		if lastErr = client.Ping(ctx, nil); lastErr == nil {
			return nil
		}

		logger.Warn("MongoDB ping failed",
			slog.Any("error", lastErr),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", cfg.RetryAttempts))

		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "MongoDB connectivity check cancelled")
		case <-time.After(cfg.RetryInterval):
		}
	}

	return errors.Wrap(lastErr, "failed to ping MongoDB")
}
