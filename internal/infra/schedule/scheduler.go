package schedule

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"notifier/internal/domain/service"

	"go.uber.org/fx"
)

// realClock implements service.Clock over package time.
type realClock struct{}

// NewClock returns a clock backed by the system time.
func NewClock() service.Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, fn func()) service.Timer {
	return time.AfterFunc(d, fn)
}

// Params contains the dependencies for constructing the scheduler.
type Params struct {
	fx.In

	LC     fx.Lifecycle
	Clock  service.Clock
	Logger *slog.Logger
}

// scheduler implements the service.Scheduler interface. It tracks every
// pending timer so shutdown can cancel deferred work instead of leaving
// timers to fire against torn-down dependencies.
type scheduler struct {
	clock  service.Clock
	logger *slog.Logger

	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]service.Timer
	closed  bool
}

// NewScheduler creates the process-wide deferred task scheduler.
func NewScheduler(params Params) service.Scheduler {
	s := &scheduler{
		clock:   params.Clock,
		logger:  params.Logger,
		pending: make(map[uint64]service.Timer),
	}

	params.LC.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			s.shutdown()

			return nil
		},
	})

	return s
}

// Schedule runs task after delay on its own goroutine.
func (s *scheduler) Schedule(delay time.Duration, task func()) func() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.logger.Warn("scheduler stopped, dropping deferred task", slog.Duration("delay", delay))

		return func() {}
	}

	id := s.nextID
	s.nextID++

	timer := s.clock.AfterFunc(delay, func() {
		s.forget(id)
		task()
	})
	s.pending[id] = timer
	s.mu.Unlock()

	return func() {
		s.forget(id)
		timer.Stop()
	}
}

func (s *scheduler) forget(id uint64) {
	s.mu.Lock()
	delete(s.pending, id)
	s.mu.Unlock()
}

// shutdown cancels every pending timer. Tasks already running are not
// interrupted.
func (s *scheduler) shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, timer := range s.pending {
		timer.Stop()
		delete(s.pending, id)
	}
}
