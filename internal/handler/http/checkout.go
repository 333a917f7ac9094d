package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mikko13/tigercookies-checkout/internal/domain/attendance"
	"github.com/mikko13/tigercookies-checkout/internal/handler/http/response"
	"github.com/mikko13/tigercookies-checkout/internal/service/checkout"
)

// CheckoutService is the slice of the sweeper the ops API needs.
type CheckoutService interface {
	Sweep(ctx context.Context) (checkout.Result, error)
	LastResult() (checkout.Result, bool)
	StaleSessions(ctx context.Context) ([]attendance.Session, error)
}

type CheckoutHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
	Anomalies(w http.ResponseWriter, r *http.Request)
	TriggerSweep(w http.ResponseWriter, r *http.Request)
}

type checkoutHandlerImpl struct {
	checkoutService CheckoutService
}

func NewCheckoutHandler(checkoutService CheckoutService) CheckoutHandler {
	return &checkoutHandlerImpl{
		checkoutService: checkoutService,
	}
}

// Status implements CheckoutHandler. It reports the most recent sweep so a
// missing or stalled scheduler is observable, not silent.
func (h *checkoutHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	result, ok := h.checkoutService.LastResult()
	if !ok {
		response.NotFound(w, "No sweep has completed yet")
		return
	}
	response.Success(w, result)
}

// Anomalies implements CheckoutHandler. Stale open sessions are reported for
// manual resolution, never auto-closed.
func (h *checkoutHandlerImpl) Anomalies(w http.ResponseWriter, r *http.Request) {
	stale, err := h.checkoutService.StaleSessions(r.Context())
	if err != nil {
		slog.Error("Failed to list stale sessions", "error", err)
		response.InternalServerError(w, "Failed to list stale sessions")
		return
	}

	sessions := make([]attendance.SessionResponse, 0, len(stale))
	for _, session := range stale {
		sessions = append(sessions, session.ToResponse())
	}
	response.Success(w, map[string]interface{}{
		"count":    len(sessions),
		"sessions": sessions,
	})
}

// TriggerSweep implements CheckoutHandler. It runs the exact same sweep the
// scheduler runs, synchronously, and returns its summary.
func (h *checkoutHandlerImpl) TriggerSweep(w http.ResponseWriter, r *http.Request) {
	result, err := h.checkoutService.Sweep(r.Context())
	if err != nil {
		slog.Error("Manual sweep failed", "error", err)
		response.InternalServerError(w, "Sweep failed")
		return
	}
	response.SuccessWithMessage(w, "Sweep completed", result)
}
