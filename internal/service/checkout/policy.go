package checkout

import (
	"fmt"
	"time"

	"github.com/mikko13/tigercookies-checkout/internal/domain/attendance"
)

// TimeOfDay is a wall-clock time without a date, used for shift cutoffs.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" (24-hour).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// On anchors the time-of-day to a calendar day in loc. Only day's wall date
// matters: a DATE column scans back as UTC midnight, but the cutoff must
// still land in the service timezone.
func (t TimeOfDay) On(day time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, loc)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ShiftPolicy maps each shift to the cutoff time-of-day after which an open
// session with no approved overtime gets auto-closed.
type ShiftPolicy map[attendance.Shift]TimeOfDay

// ParseShiftPolicy builds a ShiftPolicy from shift-name -> "HH:MM" pairs,
// as read from configuration.
func ParseShiftPolicy(cutoffs map[string]string) (ShiftPolicy, error) {
	policy := make(ShiftPolicy, len(cutoffs))
	for name, raw := range cutoffs {
		shift, err := attendance.ParseShift(name)
		if err != nil {
			return nil, fmt.Errorf("shift policy: %w", err)
		}
		cutoff, err := ParseTimeOfDay(raw)
		if err != nil {
			return nil, fmt.Errorf("shift policy for %s: %w", shift, err)
		}
		policy[shift] = cutoff
	}
	return policy, nil
}
