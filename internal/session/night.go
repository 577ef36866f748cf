package session

import (
	"context"
	"time"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/giseleterencioa-design/app-daybaby/internal/prefs"
)

// IsNightTime reports whether hour falls in the night window [start, end).
// A window with start > end wraps past midnight; start == end is empty.
func IsNightTime(hour, start, end int) bool {
	switch {
	case start == end:
		return false
	case start > end:
		return hour >= start || hour < end
	default:
		return hour >= start && hour < end
	}
}

// armNightLoop (re)arms the night check, running it immediately. c.mu must
// be held.
func (c *Controller) armNightLoop() error {
	return c.scheduler.Arm(nightJob, c.nightPollInterval, true, c.checkNight)
}

// checkNight switches to the dark theme during the night window. It never
// switches back: leaving dark mode is always a manual choice.
func (c *Controller) checkNight(ctx context.Context, _ time.Time) {
	c.mu.Lock()
	if ctx.Err() != nil || c.closed {
		c.mu.Unlock()
		return
	}

	hour := c.now().Hour()
	if !IsNightTime(hour, c.nightStartHour, c.nightEndHour) || c.prefs.Theme == domain.ThemeDark {
		c.mu.Unlock()
		return
	}

	dark := domain.ThemeDark
	err := c.applyLocked(ctx, prefs.Patch{Theme: &dark})
	handler := c.onTheme
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn("failed to switch to night theme", "error", err)
		return
	}
	c.logger.Info("switched to dark theme for the night", "hour", hour)
	if handler != nil {
		handler(dark)
	}
}
