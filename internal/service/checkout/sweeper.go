package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mikko13/tigercookies-checkout/internal/domain/attendance"
	"github.com/mikko13/tigercookies-checkout/internal/domain/notification"
	"github.com/mikko13/tigercookies-checkout/internal/domain/overtime"
	"github.com/mikko13/tigercookies-checkout/internal/pkg/clock"
)

// Result summarizes one reconciliation pass. It is retained for the ops API
// so operators can see whether sweeps are running and what they did.
type Result struct {
	RunID      string        `json:"run_id"`
	StartedAt  time.Time     `json:"started_at"`
	Duration   time.Duration `json:"duration_ns"`
	Open       int           `json:"open"`
	Closed     int           `json:"closed"`
	Conflicts  int           `json:"conflicts"`
	NoAction   int           `json:"no_action"`
	Skipped    int           `json:"skipped"`
	Errors     int           `json:"errors"`
}

// Sweeper runs the decision engine over today's open sessions and applies the
// outcomes. One instance is shared by the cron job and the manual-trigger
// endpoint; Sweep is safe to call concurrently but sweeps are serialized.
type Sweeper struct {
	attendanceRepo attendance.AttendanceRepository
	overtimeRepo   overtime.OvertimeRepository
	engine         *Engine
	clk            clock.Clock
	notifier       notification.Notifier

	mu      sync.Mutex
	last    *Result
	sweepMu sync.Mutex
}

func NewSweeper(
	attendanceRepo attendance.AttendanceRepository,
	overtimeRepo overtime.OvertimeRepository,
	engine *Engine,
	clk clock.Clock,
	notifier notification.Notifier,
) *Sweeper {
	return &Sweeper{
		attendanceRepo: attendanceRepo,
		overtimeRepo:   overtimeRepo,
		engine:         engine,
		clk:            clk,
		notifier:       notifier,
	}
}

// Sweep runs one reconciliation pass. The current time is read once and
// reused for every record so all decisions in the pass are mutually
// consistent. Only the initial store query error propagates; per-record
// failures are logged, counted, and do not abort the pass.
func (s *Sweeper) Sweep(ctx context.Context) (Result, error) {
	s.sweepMu.Lock()
	defer s.sweepMu.Unlock()

	now := s.clk.Now()
	res := Result{
		RunID:     uuid.NewString(),
		StartedAt: now,
	}

	sessions, err := s.attendanceRepo.FindOpenForDate(ctx, clock.DateOf(now))
	if err != nil {
		return res, fmt.Errorf("list open sessions: %w", err)
	}
	res.Open = len(sessions)

	for _, session := range sessions {
		if ctx.Err() != nil {
			// Shutdown mid-sweep: already-processed records stay committed,
			// the rest are picked up on the next tick.
			break
		}
		s.process(ctx, session, now, &res)
	}

	res.Duration = time.Since(now)
	s.mu.Lock()
	s.last = &res
	s.mu.Unlock()

	slog.Info("Checkout sweep completed",
		"run_id", res.RunID,
		"open", res.Open,
		"closed", res.Closed,
		"conflicts", res.Conflicts,
		"no_action", res.NoAction,
		"skipped", res.Skipped,
		"errors", res.Errors,
	)
	return res, nil
}

func (s *Sweeper) process(ctx context.Context, session attendance.Session, now time.Time, res *Result) {
	approvedOT, err := s.overtimeRepo.FindApproved(ctx, session.EmployeeID, session.Date)
	if err != nil {
		res.Errors++
		slog.Error("Failed to load overtime request",
			"session_id", session.ID,
			"employee_id", session.EmployeeID,
			"error", err,
		)
		return
	}

	decision := s.engine.Decide(session, now, approvedOT)
	switch decision.Outcome {
	case NoAction:
		res.NoAction++
		slog.Debug("Session left open",
			"session_id", session.ID,
			"employee_id", session.EmployeeID,
			"reason", decision.Reason,
		)

	case Skipped:
		res.Skipped++
		slog.Warn("Session skipped",
			"session_id", session.ID,
			"employee_id", session.EmployeeID,
			"reason", decision.Reason,
		)

	case AutoClose:
		s.applyClose(ctx, session, decision, res)
	}
}

func (s *Sweeper) applyClose(ctx context.Context, session attendance.Session, decision Decision, res *Result) {
	closeResult, err := s.attendanceRepo.ConditionalClose(ctx, session.ID, decision.CheckOut, decision.Status, decision.TotalHours)
	if err != nil {
		res.Errors++
		slog.Error("Failed to close session",
			"session_id", session.ID,
			"employee_id", session.EmployeeID,
			"error", err,
		)
		return
	}

	switch closeResult {
	case attendance.CloseApplied:
		res.Closed++
		slog.Info("Session auto-closed",
			"session_id", session.ID,
			"employee_id", session.EmployeeID,
			"check_out", decision.CheckOut,
			"status", decision.Status,
			"total_hours", decision.TotalHours,
		)
		s.notify(ctx, session, decision)

	case attendance.CloseConflict:
		// A manual checkout committed between our read and write. The record
		// already reflects the employee's own action; nothing to do.
		res.Conflicts++
		slog.Debug("Session closed by another writer",
			"session_id", session.ID,
			"employee_id", session.EmployeeID,
		)

	case attendance.CloseNotFound:
		res.Errors++
		slog.Warn("Session vanished before close",
			"session_id", session.ID,
			"employee_id", session.EmployeeID,
		)
	}
}

// notify runs only after a successful close. Failures are log-only: the state
// change has committed and must not be rolled back or retried here.
func (s *Sweeper) notify(ctx context.Context, session attendance.Session, decision Decision) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyAutoCheckout(ctx, session.EmployeeID, decision.CheckOut, decision.Status); err != nil {
		slog.Error("Auto-checkout notification failed",
			"session_id", session.ID,
			"employee_id", session.EmployeeID,
			"error", err,
		)
	}
}

// LastResult returns the most recent sweep summary, if any sweep has run.
func (s *Sweeper) LastResult() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return Result{}, false
	}
	return *s.last, true
}

// StaleSessions lists open sessions dated before today. Their recovery
// semantics are ambiguous (was the employee never checked out, or is the
// record corrupt?), so they are surfaced for administrative resolution and
// never force-closed.
func (s *Sweeper) StaleSessions(ctx context.Context) ([]attendance.Session, error) {
	today := clock.DateOf(s.clk.Now())
	stale, err := s.attendanceRepo.FindStaleOpen(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("list stale open sessions: %w", err)
	}
	return stale, nil
}

// ReportStale logs stale open sessions at WARN so their presence is visible
// even when nobody is watching the ops API.
func (s *Sweeper) ReportStale(ctx context.Context) error {
	stale, err := s.StaleSessions(ctx)
	if err != nil {
		return err
	}
	for _, session := range stale {
		slog.Warn("Stale open attendance session",
			"session_id", session.ID,
			"employee_id", session.EmployeeID,
			"date", session.Date.Format("2006-01-02"),
			"check_in", session.CheckIn,
		)
	}
	if len(stale) > 0 {
		slog.Warn("Stale open sessions need manual resolution", "count", len(stale))
	}
	return nil
}
