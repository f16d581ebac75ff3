package user

import (
	"context"

	"github.com/altoshop/catalog-service/internal/model"
)

type Repository interface {
	// Create persists the user and their profile in one transaction.
	Create(ctx context.Context, u *model.User, p *model.UserProfile) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	UpdateProfile(ctx context.Context, p *model.UserProfile) error
	SetActive(ctx context.Context, id string, active bool) error
}
