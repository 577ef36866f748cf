package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ErrSchedulerStopped is returned when arming a job on a stopped scheduler.
var ErrSchedulerStopped = errors.New("scheduler is stopped")

// Job is the body of a periodic job. ctx is cancelled as soon as the job is
// disarmed or re-armed, so a job that acquires a lock should check ctx.Err()
// afterwards and bail out when it is set.
type Job func(ctx context.Context, now time.Time)

// Scheduler runs named periodic jobs, each on its own ticker goroutine. Arming
// a name that is already armed cancels the old loop first, so at most one
// loop per name is ever live.
type Scheduler struct {
	mu         sync.Mutex
	ctx        context.Context
	cancelFunc context.CancelFunc
	jobs       map[string]context.CancelFunc
	wg         sync.WaitGroup
	now        func() time.Time
	logger     *slog.Logger
}

// NewScheduler creates a new Scheduler.
func NewScheduler(logger *slog.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		ctx:        ctx,
		cancelFunc: cancel,
		jobs:       make(map[string]context.CancelFunc),
		now:        time.Now,
		logger:     logger.With("component", "scheduler"),
	}
}

// Arm starts running fn every interval under name, replacing any loop
// already armed under that name. When immediate is true fn also runs once
// right away, on the job goroutine.
func (s *Scheduler) Arm(name string, interval time.Duration, immediate bool, fn Job) error {
	if interval <= 0 {
		return fmt.Errorf("job %q: interval must be positive, got %s", name, interval)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx.Err() != nil {
		return ErrSchedulerStopped
	}

	if cancel, ok := s.jobs[name]; ok {
		cancel()
		s.logger.Debug("cancelled stale job", "job", name)
	}

	ctx, cancel := context.WithCancel(s.ctx)
	s.jobs[name] = cancel

	s.wg.Add(1)
	go s.loop(ctx, name, interval, immediate, fn)

	s.logger.Debug("armed job", "job", name, "interval", interval, "immediate", immediate)
	return nil
}

// Disarm cancels the job armed under name and reports whether one was. It
// does not wait for a running invocation to return.
func (s *Scheduler) Disarm(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cancel, ok := s.jobs[name]
	if !ok {
		return false
	}
	cancel()
	delete(s.jobs, name)
	s.logger.Debug("disarmed job", "job", name)
	return true
}

// Armed reports whether a job is armed under name.
func (s *Scheduler) Armed(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.jobs[name]
	return ok
}

// Stop cancels every job and waits for their goroutines to exit. Stop must
// not be called from inside a job.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.cancelFunc()
	s.jobs = make(map[string]context.CancelFunc)
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, name string, interval time.Duration, immediate bool, fn Job) {
	defer s.wg.Done()

	if immediate {
		fn(ctx, s.now())
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("job stopped", "job", name)
			return

		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			fn(ctx, s.now())
		}
	}
}
