package repository

import (
	"context"

	"user-registry/internal/domain"
)

// UserRepository persists the whole user collection as one ordered sequence.
// Every mutation is a Load, an in-memory change and a Save of the full list.
type UserRepository interface {
	Init(ctx context.Context) error
	Load(ctx context.Context) ([]domain.User, error)
	Save(ctx context.Context, users []domain.User) error
}
