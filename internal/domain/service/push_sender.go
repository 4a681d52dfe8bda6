package service

import (
	"context"
)

// PushMessage is the channel-agnostic payload handed to the push transport.
type PushMessage struct {
	Title string            `json:"title"`          // Notification title.
	Body  string            `json:"body"`           // Notification body text.
	Link  string            `json:"link,omitempty"` // Optional click-through URL.
	Data  map[string]string `json:"data,omitempty"` // Extra key/value payload.
}

// TokenResult records the outcome of one token within a multicast send.
type TokenResult struct {
	Token string `json:"token"`           // The target registration token.
	Error string `json:"error,omitempty"` // Transport error message, empty on success.
}

// MulticastResult aggregates a multicast send. SuccessCount+FailureCount
// always equals the number of submitted tokens.
type MulticastResult struct {
	SuccessCount int           `json:"success_count"`
	FailureCount int           `json:"failure_count"`
	Failures     []TokenResult `json:"failures,omitempty"` // Per-token failures only.
}

// PushSender defines the interface for multicast push transports.
type PushSender interface {
	// SendMulticast sends one message to many tokens. A partial failure is
	// reported in the result, not as an error; err is reserved for
	// transport-level failures where nothing was attempted.
	SendMulticast(ctx context.Context, tokens []string, message *PushMessage) (*MulticastResult, error)
}
