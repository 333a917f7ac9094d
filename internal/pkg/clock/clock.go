package clock

import "time"

// Clock supplies the current time in the service timezone. The reconciliation
// sweep reads it exactly once per pass so every record in the pass sees the
// same "now".
type Clock interface {
	Now() time.Time
}

// Manila returns the Philippine Standard Time location (UTC+8, no DST).
// Falls back to a fixed zone when the tzdata is unavailable, which is exact
// for PST since the offset never changes.
func Manila() *time.Location {
	loc, err := time.LoadLocation("Asia/Manila")
	if err != nil {
		return time.FixedZone("PST", 8*60*60)
	}
	return loc
}

type systemClock struct {
	loc *time.Location
}

// NewSystemClock creates a Clock backed by the wall clock, reporting time in loc.
func NewSystemClock(loc *time.Location) Clock {
	return &systemClock{loc: loc}
}

func (c *systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// DateOf truncates an instant to its calendar day, keeping the location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Fixed is a settable Clock for tests.
type Fixed struct {
	Current time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{Current: t}
}

func (f *Fixed) Now() time.Time {
	return f.Current
}

// Advance moves the fixed clock forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.Current = f.Current.Add(d)
}
