package derive

import (
	"fmt"
	"time"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
)

// LastActivity returns the most recent activity of typeID by date and time.
func LastActivity(activities []domain.Activity, typeID string) (domain.Activity, bool) {
	var (
		last  domain.Activity
		found bool
	)
	for _, a := range activities {
		if a.TypeID != typeID {
			continue
		}
		if !found || a.SortKey() > last.SortKey() {
			last = a
			found = true
		}
	}
	return last, found
}

// ActivityTime resolves an activity's date and time of day in loc.
func ActivityTime(a domain.Activity, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(domain.DateLayout+"T"+domain.TimeLayout, a.SortKey(), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: activity %s at %q", domain.ErrInvalidFormat, a.ID, a.SortKey())
	}
	return t, nil
}

// TimeSince renders how long ago the last activity of typeID happened,
// relative to now and in now's location. It reports false when no activity
// of that type exists.
func TimeSince(activities []domain.Activity, typeID string, now time.Time) (string, bool) {
	last, ok := LastActivity(activities, typeID)
	if !ok {
		return "", false
	}
	at, err := ActivityTime(last, now.Location())
	if err != nil {
		return "", false
	}
	return FormatSince(now.Sub(at)), true
}

// FormatSince renders an elapsed duration using the coarsest non-zero unit
// pair, dropping the finer unit when it is zero: "2d 3h ago", "2d ago",
// "1h 30m ago", "1h ago", "5m ago" or "just now".
func FormatSince(d time.Duration) string {
	minutes := int(d / time.Minute)
	hours := int(d / time.Hour)
	days := int(d / (24 * time.Hour))

	switch {
	case days > 0:
		if h := hours % 24; h > 0 {
			return fmt.Sprintf("%dd %dh ago", days, h)
		}
		return fmt.Sprintf("%dd ago", days)
	case hours > 0:
		if m := minutes % 60; m > 0 {
			return fmt.Sprintf("%dh %dm ago", hours, m)
		}
		return fmt.Sprintf("%dh ago", hours)
	case minutes > 0:
		return fmt.Sprintf("%dm ago", minutes)
	default:
		return "just now"
	}
}
