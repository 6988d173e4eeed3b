package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Kunalsharma76/github-copilot-exercise/internal/domain"
	"github.com/Kunalsharma76/github-copilot-exercise/internal/mapper"
	"github.com/Kunalsharma76/github-copilot-exercise/internal/my_errors"
	"github.com/Kunalsharma76/github-copilot-exercise/internal/request"
	"github.com/Kunalsharma76/github-copilot-exercise/internal/response"

	"github.com/go-playground/validator/v10"
)

type ActivityService interface {
	ListActivities(ctx context.Context) (domain.Directory, error)
	GetActivity(ctx context.Context, name string) (*domain.Activity, error)
	Signup(ctx context.Context, name, email string) (string, error)
	Unregister(ctx context.Context, name, email string) (string, error)
}

type ActivityHandler struct {
	service   ActivityService
	validator *validator.Validate
}

func NewActivityHandler(service ActivityService, validator *validator.Validate) *ActivityHandler {
	return &ActivityHandler{
		service:   service,
		validator: validator,
	}
}

// ListActivities godoc
// @Summary List all activities
// @Description Get every activity keyed by name with its schedule, capacity and participants
// @Tags Activities
// @Produce json
// @Success 200 {object} response.ActivitiesResponse "Activities retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities [get]
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, mapper.MapDomainDirectoryToDTO(activities))
}

// GetActivity godoc
// @Summary Get activity by name
// @Tags Activities
// @Produce json
// @Param activity_name path string true "Activity name"
// @Success 200 {object} dto.ActivityDTO "Activity retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Router /activities/{activity_name} [get]
func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.service.GetActivity(r.Context(), activityName(r))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapper.MapDomainActivityToDTO(activity))
}

// Signup godoc
// @Summary Sign up for an activity
// @Description Add a participant email to the activity. Capacity is not enforced.
// @Tags Activities
// @Produce json
// @Param activity_name path string true "Activity name"
// @Param email query string true "Participant email"
// @Success 200 {object} response.MessageResponse "Signed up"
// @Failure 400 {object} dto.ErrorResponse "Student is already signed up"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Failure 422 {object} dto.ErrorResponse "Missing email"
// @Router /activities/{activity_name}/signup [post]
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	req, ok := h.participantRequest(w, r)
	if !ok {
		return
	}

	msg, err := h.service.Signup(r.Context(), req.ActivityName, req.Email)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.MessageResponse{Message: msg})
}

// Unregister godoc
// @Summary Unregister from an activity
// @Tags Activities
// @Produce json
// @Param activity_name path string true "Activity name"
// @Param email query string true "Participant email"
// @Success 200 {object} response.MessageResponse "Unregistered"
// @Failure 400 {object} dto.ErrorResponse "Student is not signed up for this activity"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Failure 422 {object} dto.ErrorResponse "Missing email"
// @Router /activities/{activity_name}/unregister [delete]
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	req, ok := h.participantRequest(w, r)
	if !ok {
		return
	}

	msg, err := h.service.Unregister(r.Context(), req.ActivityName, req.Email)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.MessageResponse{Message: msg})
}

func (h *ActivityHandler) participantRequest(w http.ResponseWriter, r *http.Request) (*request.ParticipantRequest, bool) {
	req := &request.ParticipantRequest{
		ActivityName: activityName(r),
		Email:        r.URL.Query().Get("email"),
	}

	if err := h.validator.Struct(req); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation error: "+err.Error())
		return nil, false
	}

	return req, true
}

func (h *ActivityHandler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, my_errors.ErrActivityNotFound):
		respondError(w, http.StatusNotFound, my_errors.ErrActivityNotFound.Error())
	case errors.Is(err, my_errors.ErrAlreadySignedUp):
		respondError(w, http.StatusBadRequest, my_errors.ErrAlreadySignedUp.Error())
	case errors.Is(err, my_errors.ErrNotSignedUp):
		respondError(w, http.StatusBadRequest, my_errors.ErrNotSignedUp.Error())
	case errors.Is(err, my_errors.ErrEmptyField):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.Error("activity request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
