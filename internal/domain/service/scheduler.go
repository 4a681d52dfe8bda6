package service

import "time"

// Clock abstracts time for deferred work so tests can drive it manually.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc runs fn after d on its own goroutine.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a cancellable handle for a deferred function.
type Timer interface {
	// Stop cancels the pending run. Returns false if it already fired.
	Stop() bool
}

// Scheduler runs deferred tasks and tracks them for graceful shutdown.
type Scheduler interface {
	// Schedule runs task after delay. The returned cancel func stops the
	// task if it has not started; calling it after the fact is a no-op.
	Schedule(delay time.Duration, task func()) (cancel func())
}
