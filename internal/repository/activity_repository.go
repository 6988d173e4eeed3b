package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/Kunalsharma76/github-copilot-exercise/internal/domain"
	"github.com/Kunalsharma76/github-copilot-exercise/internal/my_errors"
)

type ActivityRepository struct {
	mu         sync.RWMutex
	activities domain.Directory
}

func NewActivityRepository(seed domain.Directory) *ActivityRepository {
	return &ActivityRepository{activities: seed.Clone()}
}

func (r *ActivityRepository) GetAll(ctx context.Context) (domain.Directory, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get activities: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.activities.Clone(), nil
}

func (r *ActivityRepository) GetByName(ctx context.Context, name string) (*domain.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, my_errors.ErrActivityNotFound
	}

	c := activity.Clone()
	return &c, nil
}

// AddParticipant appends email to the activity's participants. The membership
// check and the append happen under one lock.
func (r *ActivityRepository) AddParticipant(ctx context.Context, name, email string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return my_errors.ErrActivityNotFound
	}
	if activity.HasParticipant(email) {
		return my_errors.ErrAlreadySignedUp
	}

	activity.Participants = append(activity.Participants, email)
	r.activities[name] = activity

	return nil
}

func (r *ActivityRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return my_errors.ErrActivityNotFound
	}

	for i, p := range activity.Participants {
		if p == email {
			participants := make([]string, 0, len(activity.Participants)-1)
			participants = append(participants, activity.Participants[:i]...)
			participants = append(participants, activity.Participants[i+1:]...)
			activity.Participants = participants
			r.activities[name] = activity
			return nil
		}
	}

	return my_errors.ErrNotSignedUp
}

func (r *ActivityRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.activities), nil
}
