package service

import (
	"context"

	"github.com/Kunalsharma76/github-copilot-exercise/internal/domain"
)

type ActivityRepository interface {
	GetAll(ctx context.Context) (domain.Directory, error)
	GetByName(ctx context.Context, name string) (*domain.Activity, error)
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
}
