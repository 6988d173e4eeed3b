package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Kunalsharma76/github-copilot-exercise/internal/response"
)

type ActivityCounter interface {
	Count(ctx context.Context) (int, error)
}

type HealthHandler struct {
	counter ActivityCounter
}

func NewHealthHandler(counter ActivityCounter) *HealthHandler {
	return &HealthHandler{counter: counter}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	count, err := h.counter.Count(r.Context())
	if err != nil {
		slog.Warn("health check failed", "error", err)
		respondError(w, http.StatusServiceUnavailable, "unavailable")
		return
	}

	respondJSON(w, http.StatusOK, response.HealthResponse{
		Status:     "ok",
		Activities: count,
	})
}
