package usecase

import "context"

// EmailReport is the result of one email dispatch.
type EmailReport struct {
	Outcome DispatchOutcome `json:"outcome"`
}

// EmailUsecase defines the interface for the email dispatch channel.
type EmailUsecase interface {
	// DispatchEmail resolves the account's email address, gates on the
	// email setting, verifies transport connectivity, then sends. A
	// disabled channel yields OutcomeSkipped with nil error; a failed
	// connectivity handshake yields a transient delivery error.
	DispatchEmail(ctx context.Context, accountID, subject, htmlBody string) (*EmailReport, error)
}
