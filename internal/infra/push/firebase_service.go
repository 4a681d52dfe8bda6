package push

import (
	"context"

	"notifier/config"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type firebaseSender struct {
	client *messaging.Client
}

// NewFirebaseSender creates a push sender backed by Firebase Cloud Messaging.
func NewFirebaseSender(ctx context.Context, cfg *config.Config) (service.PushSender, error) {
	if cfg.Firebase.CredentialsPath == "" {
		return nil, domainerrors.ErrConfiguration.WithDetails("firebase credentials path is not set")
	}

	opt := option.WithCredentialsFile(cfg.Firebase.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseSender{
		client: client,
	}, nil
}

// SendMulticast sends a push notification to up to 500 device tokens in a
// single request and reports the per-token outcome.
func (s *firebaseSender) SendMulticast(ctx context.Context, tokens []string, message *service.PushMessage) (*service.MulticastResult, error) {
	if len(tokens) == 0 {
		return &service.MulticastResult{}, nil
	}

	// Firebase limits to 500 tokens per request
	if len(tokens) > 500 {
		return nil, errors.Errorf("token count exceeds limit: %d (max 500)", len(tokens))
	}

	data := make(map[string]string, len(message.Data)+1)
	for key, value := range message.Data {
		data[key] = value
	}
	if message.Link != "" {
		data["link"] = message.Link
	}

	multicast := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: message.Title,
			Body:  message.Body,
		},
		Data: data,
	}

	response, err := s.client.SendEachForMulticast(ctx, multicast)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.MulticastResult{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
	}
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error != nil {
			result.Failures = append(result.Failures, service.TokenResult{
				Token: tokens[idx],
				Error: sendResponse.Error.Error(),
			})
		}
	}

	return result, nil
}
