package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mikko13/tigercookies-checkout/internal/config"
	appHTTP "github.com/mikko13/tigercookies-checkout/internal/handler/http"
	"github.com/mikko13/tigercookies-checkout/internal/pkg/clock"
	"github.com/mikko13/tigercookies-checkout/internal/pkg/cron"
	"github.com/mikko13/tigercookies-checkout/internal/pkg/database"
	"github.com/mikko13/tigercookies-checkout/internal/pkg/email"
	"github.com/mikko13/tigercookies-checkout/internal/repository/postgresql"
	"github.com/mikko13/tigercookies-checkout/internal/service/checkout"
	notificationService "github.com/mikko13/tigercookies-checkout/internal/service/notification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	setupLogger(cfg.App.LogLevel)

	loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		slog.Warn("Unknown timezone, falling back to Asia/Manila", "timezone", cfg.Scheduler.Timezone)
		loc = clock.Manila()
	}

	policy, err := checkout.ParseShiftPolicy(cfg.Shifts.Cutoffs)
	if err != nil {
		slog.Error("Invalid shift cutoff configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		slog.Error("Failed to initialize email service", "error", err)
		os.Exit(1)
	}
	notifier := notificationService.NewEmailNotifier(employeeRepo, emailService)

	engine := checkout.NewEngine(policy, cfg.Scheduler.OvertimeGrace, loc)
	clk := clock.NewSystemClock(loc)
	sweeper := checkout.NewSweeper(attendanceRepo, overtimeRepo, engine, clk, notifier)

	scheduler := cron.NewScheduler()
	checkoutJobs := cron.NewCheckoutJobs(sweeper, cfg.Scheduler.SweepInterval, cfg.Scheduler.StaleReportInterval)
	checkoutJobs.RegisterJobs(scheduler)
	scheduler.Start()

	checkoutHandler := appHTTP.NewCheckoutHandler(sweeper)
	router := appHTTP.NewRouter(checkoutHandler, cfg.App.Env)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Ops API listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Ops API server error", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	slog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Ops API shutdown error", "error", err)
	}

	// Finishes the in-flight tick before returning.
	scheduler.Stop()

	slog.Info("Shutdown complete")
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
}
