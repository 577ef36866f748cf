package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStopwatch() (*Stopwatch, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, time.June, 20, 9, 58, 30, 0, time.UTC)}
	return New(WithClock(clock.Now)), clock
}

func TestStopwatchRun(t *testing.T) {
	t.Parallel()

	sw, clock := newTestStopwatch()
	assert.Equal(t, Idle, sw.State())

	require.True(t, sw.Start())
	assert.Equal(t, "09:58", sw.StartStamp())
	assert.False(t, sw.Start(), "already running")

	clock.Advance(90*time.Second + 400*time.Millisecond)
	assert.Equal(t, 90*time.Second, sw.Elapsed())
	assert.Equal(t, "00:01:30", sw.Format())
	assert.Equal(t, 1, sw.TotalMinutes())

	require.True(t, sw.Stop())
	assert.Equal(t, Stopped, sw.State())
	assert.Equal(t, "10:00", sw.EndStamp())

	clock.Advance(time.Hour)
	assert.Equal(t, 90*time.Second, sw.Elapsed(), "stopped is frozen")
	assert.False(t, sw.Start(), "stopped is terminal")
	assert.False(t, sw.Pause())
}

func TestStopwatchPauseDoesNotCountPausedTime(t *testing.T) {
	t.Parallel()

	sw, clock := newTestStopwatch()
	require.True(t, sw.Start())
	clock.Advance(2 * time.Minute)

	require.True(t, sw.Pause())
	assert.False(t, sw.Pause())
	clock.Advance(17 * time.Minute)
	assert.Equal(t, 2*time.Minute, sw.Elapsed())

	require.True(t, sw.Start())
	assert.Equal(t, "09:58", sw.StartStamp(), "resume keeps the first start stamp")
	clock.Advance(30 * time.Second)
	assert.Equal(t, 150*time.Second, sw.Elapsed())

	require.True(t, sw.Pause())
	require.True(t, sw.Stop())
	assert.Equal(t, 150*time.Second, sw.Elapsed())
}

func TestStopwatchReset(t *testing.T) {
	t.Parallel()

	prepare := map[string]func(*Stopwatch, *fakeClock){
		"running": func(sw *Stopwatch, c *fakeClock) {
			sw.Start()
			c.Advance(time.Minute)
		},
		"paused": func(sw *Stopwatch, c *fakeClock) {
			sw.Start()
			c.Advance(time.Minute)
			sw.Pause()
		},
		"stopped": func(sw *Stopwatch, c *fakeClock) {
			sw.Start()
			c.Advance(time.Minute)
			sw.Stop()
		},
		"idle": func(*Stopwatch, *fakeClock) {},
	}

	for name, fn := range prepare {
		t.Run(name, func(t *testing.T) {
			sw, clock := newTestStopwatch()
			fn(sw, clock)

			sw.Reset()
			assert.Equal(t, Idle, sw.State())
			assert.Zero(t, sw.Elapsed())
			assert.Empty(t, sw.StartStamp())
			assert.Empty(t, sw.EndStamp())
			assert.Equal(t, "00:00:00", sw.Format())

			require.True(t, sw.Start())
			clock.Advance(5 * time.Second)
			assert.Equal(t, 5*time.Second, sw.Elapsed())
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "00:00:59", FormatElapsed(59*time.Second))
	assert.Equal(t, "01:01:01", FormatElapsed(time.Hour+time.Minute+time.Second))
	assert.Equal(t, "27:00:00", FormatElapsed(27*time.Hour))
	assert.Equal(t, "00:00:00", FormatElapsed(-time.Second))
}
