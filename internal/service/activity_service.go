package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Kunalsharma76/github-copilot-exercise/internal/domain"
	"github.com/Kunalsharma76/github-copilot-exercise/internal/metrics"
	"github.com/Kunalsharma76/github-copilot-exercise/internal/my_errors"
)

type ActivityService struct {
	activityRepo ActivityRepository
}

func NewActivityService(activityRepo ActivityRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
	}
}

func (s *ActivityService) ListActivities(ctx context.Context) (domain.Directory, error) {
	activities, err := s.activityRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

func (s *ActivityService) GetActivity(ctx context.Context, name string) (*domain.Activity, error) {
	activity, err := s.activityRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity %q: %w", name, err)
	}
	return activity, nil
}

// Signup registers email for the named activity and returns the confirmation
// message. max_participants is advisory and is not checked here.
func (s *ActivityService) Signup(ctx context.Context, name, email string) (string, error) {
	if email == "" {
		metrics.SignupsTotal.WithLabelValues(metrics.ResultInvalid).Inc()
		return "", fmt.Errorf("email: %w", my_errors.ErrEmptyField)
	}

	if err := s.activityRepo.AddParticipant(ctx, name, email); err != nil {
		metrics.SignupsTotal.WithLabelValues(resultOf(err)).Inc()
		return "", fmt.Errorf("failed to sign up %s: %w", email, err)
	}

	metrics.SignupsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	slog.Info("participant signed up", "activity", name, "email", email)

	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

func (s *ActivityService) Unregister(ctx context.Context, name, email string) (string, error) {
	if email == "" {
		metrics.UnregistrationsTotal.WithLabelValues(metrics.ResultInvalid).Inc()
		return "", fmt.Errorf("email: %w", my_errors.ErrEmptyField)
	}

	if err := s.activityRepo.RemoveParticipant(ctx, name, email); err != nil {
		metrics.UnregistrationsTotal.WithLabelValues(resultOf(err)).Inc()
		return "", fmt.Errorf("failed to unregister %s: %w", email, err)
	}

	metrics.UnregistrationsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	slog.Info("participant unregistered", "activity", name, "email", email)

	return fmt.Sprintf("Unregistered %s from %s", email, name), nil
}

func resultOf(err error) string {
	switch {
	case errors.Is(err, my_errors.ErrActivityNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, my_errors.ErrAlreadySignedUp), errors.Is(err, my_errors.ErrNotSignedUp):
		return metrics.ResultConflict
	default:
		return metrics.ResultError
	}
}
