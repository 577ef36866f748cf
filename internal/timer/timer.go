// Package timer implements the stopwatch that measures an activity while it
// is being logged.
package timer

import (
	"fmt"
	"time"
)

// State is the stopwatch state.
type State string

// Stopwatch states. Stopped is terminal until Reset.
const (
	Idle    State = "idle"
	Running State = "running"
	Paused  State = "paused"
	Stopped State = "stopped"
)

// stampLayout is the minute-precision wall-clock stamp format.
const stampLayout = "15:04"

// Stopwatch measures elapsed time from wall-clock marks rather than by
// counting ticks, so missed ticks never cause drift.
//
// Stopwatch is not safe for concurrent use.
type Stopwatch struct {
	now       func() time.Time
	state     State
	start     time.Time     // effective start while running
	elapsed   time.Duration // frozen value while paused or stopped
	startedAt string
	endedAt   string
}

// Option configures a Stopwatch.
type Option func(*Stopwatch)

// WithClock sets the clock the stopwatch reads.
func WithClock(now func() time.Time) Option {
	return func(s *Stopwatch) {
		s.now = now
	}
}

// New returns an idle stopwatch.
func New(opts ...Option) *Stopwatch {
	s := &Stopwatch{now: time.Now, state: Idle}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state.
func (s *Stopwatch) State() State {
	return s.state
}

// Start moves an idle or paused stopwatch to running and reports whether it
// did. Resuming keeps the elapsed time: the effective start is set to now
// minus what had already elapsed. The start stamp is recorded on the first
// start only.
func (s *Stopwatch) Start() bool {
	if s.state != Idle && s.state != Paused {
		return false
	}
	now := s.now()
	s.start = now.Add(-s.elapsed)
	if s.startedAt == "" {
		s.startedAt = now.Format(stampLayout)
	}
	s.state = Running
	return true
}

// Pause freezes a running stopwatch.
func (s *Stopwatch) Pause() bool {
	if s.state != Running {
		return false
	}
	s.elapsed = s.sinceStart()
	s.state = Paused
	return true
}

// Stop ends a running or paused run and records the end stamp.
func (s *Stopwatch) Stop() bool {
	if s.state != Running && s.state != Paused {
		return false
	}
	if s.state == Running {
		s.elapsed = s.sinceStart()
	}
	s.endedAt = s.now().Format(stampLayout)
	s.state = Stopped
	return true
}

// Reset returns the stopwatch to idle from any state, clearing the elapsed
// time, start mark and stamps.
func (s *Stopwatch) Reset() {
	*s = Stopwatch{now: s.now, state: Idle}
}

// Elapsed returns the elapsed time, truncated to whole seconds.
func (s *Stopwatch) Elapsed() time.Duration {
	d := s.elapsed
	if s.state == Running {
		d = s.sinceStart()
	}
	return d.Truncate(time.Second)
}

func (s *Stopwatch) sinceStart() time.Duration {
	d := s.now().Sub(s.start)
	if d < 0 {
		return 0
	}
	return d
}

// TotalMinutes returns the elapsed whole minutes, the value stored as an
// activity's total duration.
func (s *Stopwatch) TotalMinutes() int {
	return int(s.Elapsed() / time.Minute)
}

// StartStamp returns the HH:MM of the first start, or "" before any start.
func (s *Stopwatch) StartStamp() string {
	return s.startedAt
}

// EndStamp returns the HH:MM recorded by Stop, or "".
func (s *Stopwatch) EndStamp() string {
	return s.endedAt
}

// Format renders the elapsed time as zero-padded HH:MM:SS.
func (s *Stopwatch) Format() string {
	return FormatElapsed(s.Elapsed())
}

// FormatElapsed renders d as zero-padded HH:MM:SS. Hours are not wrapped.
func FormatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}
