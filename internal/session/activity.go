package session

import (
	"context"
	"slices"
	"time"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/giseleterencioa-design/app-daybaby/internal/events"
	"github.com/giseleterencioa-design/app-daybaby/internal/report"
	"github.com/giseleterencioa-design/app-daybaby/internal/timer"
)

// StartTimer starts or resumes the stopwatch and arms the tick loop.
func (c *Controller) StartTimer() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || !c.stopwatch.Start() {
		return false
	}
	if err := c.scheduler.Arm(tickJob, c.timerTickInterval, false, c.tick); err != nil {
		c.logger.Warn("failed to arm timer tick", "error", err)
	}
	return true
}

// PauseTimer pauses the stopwatch and cancels the tick loop.
func (c *Controller) PauseTimer() bool {
	return c.haltTimer((*timer.Stopwatch).Pause)
}

// StopTimer stops the stopwatch and cancels the tick loop.
func (c *Controller) StopTimer() bool {
	return c.haltTimer((*timer.Stopwatch).Stop)
}

func (c *Controller) haltTimer(transition func(*timer.Stopwatch) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !transition(c.stopwatch) {
		return false
	}
	c.scheduler.Disarm(tickJob)
	c.elapsed = c.stopwatch.Elapsed()
	return true
}

// ResetTimer returns the stopwatch to idle and cancels the tick loop.
func (c *Controller) ResetTimer() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetTimerLocked()
}

func (c *Controller) resetTimerLocked() {
	c.stopwatch.Reset()
	c.scheduler.Disarm(tickJob)
	c.elapsed = 0
}

// TimerState returns the stopwatch state.
func (c *Controller) TimerState() timer.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopwatch.State()
}

// Elapsed returns the elapsed time as of the last tick or transition.
func (c *Controller) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

// FormattedElapsed returns Elapsed as HH:MM:SS.
func (c *Controller) FormattedElapsed() string {
	return timer.FormatElapsed(c.Elapsed())
}

func (c *Controller) tick(ctx context.Context, _ time.Time) {
	c.mu.Lock()
	if ctx.Err() != nil || c.stopwatch.State() != timer.Running {
		c.mu.Unlock()
		return
	}
	c.elapsed = c.stopwatch.Elapsed()
	elapsed := c.elapsed
	handler := c.onTick
	c.mu.Unlock()

	if handler != nil {
		handler(elapsed)
	}
}

// SaveActivity adds draft to the selected baby. Missing fields are filled
// in: the custom name from the type's display name, the date from the
// journal cursor and the time from the clock. The start and end stamps and
// total minutes are taken from the stopwatch when it has run and cleared
// otherwise; values in the draft are ignored. On success
// activity_added is published and the stopwatch is reset; on error nothing
// changes.
func (c *Controller) SaveActivity(ctx context.Context, draft domain.Activity) (domain.Activity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return domain.Activity{}, ErrClosed
	}
	if !c.ready {
		return domain.Activity{}, ErrNotReady
	}

	if draft.CustomName == "" {
		if t, ok := c.journal.ActivityType(draft.TypeID, c.tr, c.prefs.ColorPalette); ok {
			draft.CustomName = t.Name
		}
	}
	now := c.now()
	if draft.Date == "" {
		draft.Date = c.journal.CursorKey()
	}
	if draft.Time == "" {
		draft.Time = domain.TimeKey(now)
	}

	// Timer fields only ever come from the stopwatch.
	draft.Details.StartTime = ""
	draft.Details.EndTime = ""
	draft.Details.TotalDuration = nil
	if elapsed := c.stopwatch.Elapsed(); elapsed > 0 {
		draft.Details.StartTime = c.stopwatch.StartStamp()
		draft.Details.EndTime = c.stopwatch.EndStamp()
		if draft.Details.EndTime == "" {
			draft.Details.EndTime = domain.TimeKey(now)
		}
		minutes := c.stopwatch.TotalMinutes()
		draft.Details.TotalDuration = &minutes
	}

	saved, err := c.journal.AddActivity(draft)
	if err != nil {
		return domain.Activity{}, err
	}

	if err := c.publish(ctx, events.ActivityAdded, map[string]string{
		"type": saved.TypeID,
		"date": saved.Date,
	}); err != nil {
		c.logger.WarnContext(ctx, "failed to record activity", "error", err)
	}
	c.resetTimerLocked()

	c.logger.DebugContext(ctx, "activity saved",
		"activity_id", saved.ID,
		"type", saved.TypeID,
		"date", saved.Date)
	return saved, nil
}

// DeleteCustomActivityType removes a custom type together with every
// activity logged under it. It returns the number of activities removed and
// whether the type existed.
func (c *Controller) DeleteCustomActivityType(id string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.journal.RemoveCustomActivityType(id) {
		return 0, false
	}
	return c.journal.RemoveActivitiesByType(id), true
}

// ClearActivityType removes every activity of a type, for all babies.
func (c *Controller) ClearActivityType(typeID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.journal.RemoveActivitiesByType(typeID)
	c.logger.Info("cleared activity type", "type", typeID, "removed", n)
	return n
}

// Report builds the report bundle for the selected baby, newest saved
// activity first. The range labels the report; all of the baby's activities
// are included.
func (c *Controller) Report(start, end time.Time) (report.Bundle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	baby, ok := c.journal.SelectedBaby()
	if !ok {
		return report.Bundle{}, domain.ErrNoBabySelected
	}
	activities := c.journal.ActivitiesOf(baby.ID)
	slices.Reverse(activities)
	return report.Build(baby, activities, start, end, c.now()), nil
}
