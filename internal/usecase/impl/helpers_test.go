package impl

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"notifier/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Dispatch: &config.DispatchConfig{
			PushTimeout:     10 * time.Second,
			EmailTimeout:    15 * time.Second,
			PushParallelism: 4,
			ListLimit:       10,
		},
		Verify: &config.VerifyConfig{
			Delay:      5 * time.Second,
			RetryDelay: time.Second,
		},
	}
}

// immediateScheduler runs scheduled tasks synchronously, so tests can
// assert on verifier behavior without waiting out real delays.
type immediateScheduler struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (s *immediateScheduler) Schedule(delay time.Duration, task func()) func() {
	s.mu.Lock()
	s.delays = append(s.delays, delay)
	s.mu.Unlock()
	task()

	return func() {}
}

func (s *immediateScheduler) scheduledDelays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]time.Duration(nil), s.delays...)
}
