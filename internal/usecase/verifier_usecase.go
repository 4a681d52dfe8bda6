package usecase

import "context"

// VerifierUsecase bridges the read-after-write race between token
// registration and token-based dispatch. Registration may not be visible
// to an immediate read, so dispatch is deferred behind an existence check.
type VerifierUsecase interface {
	// ScheduleVerifiedSend defers send by the configured delay, then
	// checks that the token is registered and active. Present: send runs
	// once. Absent: the registration is replayed and send runs once after
	// a shorter interval, best effort. Non-blocking; the caller returns
	// immediately. Send errors are logged, never returned.
	ScheduleVerifiedSend(accountID string, reg *TokenRegistration, send func(ctx context.Context) error)
}
