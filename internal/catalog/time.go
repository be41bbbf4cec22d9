package catalog

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time within a single day, in minutes since midnight.
type TimeOfDay int

const minutesPerDay = 24 * 60

// Clock builds a TimeOfDay from hour and minute.
func Clock(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay parses "HH:MM" (24h).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return Clock(t.Hour(), t.Minute()), nil
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < minutesPerDay
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Interval is the half-open span [Start, End) a session occupies its hall.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

func (iv Interval) Valid() bool {
	return iv.Start.Valid() && iv.End.Valid() && iv.Start < iv.End
}

func (iv Interval) String() string {
	return iv.Start.String() + "-" + iv.End.String()
}

// ConflictsWith reports whether two valid intervals overlap. Intervals that
// only touch (one ends exactly when the other starts) do not conflict, and the
// verdict does not depend on argument order.
func ConflictsWith(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}
