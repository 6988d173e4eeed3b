package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/Kunalsharma76/github-copilot-exercise/internal/dto"

	"github.com/go-chi/chi/v5"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("failed to encode JSON response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondWithError(w, status, &dto.ErrorResponse{Detail: detail})
}

func respondWithError(w http.ResponseWriter, status int, errResp *dto.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		slog.Warn("failed to encode error response", "error", err)
	}
}

// activityName returns the decoded {activity_name} path segment. chi matches
// on r.URL.RawPath when it is set, so only then is the param still escaped.
func activityName(r *http.Request) string {
	param := chi.URLParam(r, "activity_name")
	if r.URL.RawPath == "" {
		return param
	}
	name, err := url.PathUnescape(param)
	if err != nil {
		return param
	}
	return name
}
