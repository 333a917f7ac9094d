package cron

import (
	"context"
	"time"

	"github.com/mikko13/tigercookies-checkout/internal/service/checkout"
)

// CheckoutJobs wires the reconciliation sweeper into the scheduler.
type CheckoutJobs struct {
	sweeper             *checkout.Sweeper
	sweepInterval       time.Duration
	staleReportInterval time.Duration
}

func NewCheckoutJobs(sweeper *checkout.Sweeper, sweepInterval, staleReportInterval time.Duration) *CheckoutJobs {
	return &CheckoutJobs{
		sweeper:             sweeper,
		sweepInterval:       sweepInterval,
		staleReportInterval: staleReportInterval,
	}
}

// RegisterJobs registers the checkout jobs. One sweep job runs the whole
// decision engine at a single interval; shift-cutoff and overtime closures
// deliberately share a cadence so the same data is never reconciled by two
// overlapping schedules.
func (j *CheckoutJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_checkout_sweep", j.sweepInterval, j.RunSweep)
	scheduler.AddJob("stale_session_report", j.staleReportInterval, j.ReportStaleSessions)
}

// RunSweep executes one reconciliation pass over today's open sessions.
func (j *CheckoutJobs) RunSweep(ctx context.Context) error {
	_, err := j.sweeper.Sweep(ctx)
	return err
}

// ReportStaleSessions surfaces open sessions from prior dates as anomalies.
func (j *CheckoutJobs) ReportStaleSessions(ctx context.Context) error {
	return j.sweeper.ReportStale(ctx)
}
