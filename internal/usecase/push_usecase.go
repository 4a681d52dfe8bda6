package usecase

import (
	"context"

	"notifier/internal/domain/service"
)

// DispatchOutcome labels how a channel dispatch concluded. Skipped and
// NoTokens are non-error outcomes and must stay distinguishable from
// failures at every layer.
type DispatchOutcome string

const (
	// OutcomeSent means the transport was invoked for at least one target.
	OutcomeSent DispatchOutcome = "sent"
	// OutcomeSkipped means account settings disabled the channel.
	OutcomeSkipped DispatchOutcome = "skipped"
	// OutcomeNoTokens means the account has no active push endpoints.
	OutcomeNoTokens DispatchOutcome = "no_tokens"
)

// PushReport is the result of one push dispatch. When Outcome is
// OutcomeSent, SuccessCount+FailureCount equals the number of tokens
// submitted to the transport.
type PushReport struct {
	Outcome      DispatchOutcome       `json:"outcome"`
	SuccessCount int                   `json:"success_count"`
	FailureCount int                   `json:"failure_count"`
	Failures     []service.TokenResult `json:"failures,omitempty"`
}

// PushUsecase defines the interface for the push dispatch channel.
type PushUsecase interface {
	// DispatchPush gates on the account's push setting, resolves the
	// active token set and multicasts the message. Partial per-token
	// failure is carried in the report, never as an error.
	DispatchPush(ctx context.Context, accountID string, message *service.PushMessage) (*PushReport, error)

	// BroadcastPush multicasts to an explicit token set, bypassing
	// per-account gating. Used when the caller owns target selection.
	BroadcastPush(ctx context.Context, tokens []string, message *service.PushMessage) (*PushReport, error)
}
