package checkout

import (
	"fmt"
	"math"
	"time"

	"github.com/mikko13/tigercookies-checkout/internal/domain/attendance"
	"github.com/mikko13/tigercookies-checkout/internal/domain/overtime"
)

// Outcome is what the engine decided for one session.
type Outcome int

const (
	// NoAction: the session stays open, it is not time to close it yet.
	NoAction Outcome = iota
	// AutoClose: close the session with the Decision's checkout fields.
	AutoClose
	// Skipped: the session cannot be evaluated (already closed, or no cutoff
	// configured for its shift). Never retried within the same sweep.
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case NoAction:
		return "no_action"
	case AutoClose:
		return "auto_close"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Decision is the engine's immutable verdict for one session. CheckOut,
// Status and TotalHours are meaningful only when Outcome is AutoClose.
type Decision struct {
	Outcome    Outcome
	CheckOut   time.Time
	Status     string
	TotalHours float64
	Reason     string
}

// Engine decides whether an open session should be auto-closed. It is a pure
// function of its inputs: no I/O, no clock reads, no logging. Persistence is
// the sweeper's job.
type Engine struct {
	policy ShiftPolicy
	grace  time.Duration
	loc    *time.Location
}

// DefaultOvertimeGrace pads the approved overtime window against clock skew
// and manual-checkout races.
const DefaultOvertimeGrace = 5 * time.Minute

func NewEngine(policy ShiftPolicy, grace time.Duration, loc *time.Location) *Engine {
	if grace <= 0 {
		grace = DefaultOvertimeGrace
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{policy: policy, grace: grace, loc: loc}
}

// Decide evaluates one open session against the current instant and the
// employee's approved overtime request for the same date, if any.
//
// The overtime window is checked before the shift cutoff: an approval
// extends, never shortens, the employee's session.
func (e *Engine) Decide(session attendance.Session, now time.Time, approvedOT *overtime.Request) Decision {
	if !session.Open() {
		return Decision{Outcome: Skipped, Reason: "session already closed"}
	}

	if approvedOT != nil && approvedOT.Status == overtime.StatusApproved && approvedOT.ReviewedAt != nil {
		window := time.Duration(approvedOT.OvertimeHours * float64(time.Hour))
		overtimeEnd := approvedOT.ReviewedAt.Add(window + e.grace)
		if now.Before(overtimeEnd) {
			return Decision{Outcome: NoAction, Reason: "approved overtime window still open"}
		}
		return Decision{
			Outcome:    AutoClose,
			CheckOut:   now,
			Status:     attendance.StatusCheckedOutOTAuto,
			TotalHours: workedHours(session.CheckIn, now),
		}
	}

	cutoff, ok := e.policy[session.Shift]
	if !ok {
		return Decision{Outcome: Skipped, Reason: fmt.Sprintf("no cutoff configured for shift %q", session.Shift)}
	}
	cutoffAt := cutoff.On(session.Date, e.loc)
	if now.Before(cutoffAt) {
		return Decision{Outcome: NoAction, Reason: "before shift cutoff"}
	}
	return Decision{
		Outcome:    AutoClose,
		CheckOut:   cutoffAt,
		Status:     attendance.StatusAutoCheckedOut,
		TotalHours: workedHours(session.CheckIn, cutoffAt),
	}
}

// workedHours is the checkout-minus-checkin duration in hours, rounded to two
// decimals. A negative raw difference means the session crossed midnight
// (Night shift) with the check-in anchored to the session date, so a day is
// added before differencing.
func workedHours(checkIn, checkOut time.Time) float64 {
	d := checkOut.Sub(checkIn)
	if d < 0 {
		d += 24 * time.Hour
	}
	return math.Round(d.Hours()*100) / 100
}
