package user

import (
	"context"

	"github.com/altoshop/catalog-service/internal/model"
	"github.com/altoshop/catalog-service/internal/user/dto"
)

type UseCase interface {
	Register(ctx context.Context, input *dto.RegisterInput) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	UpdateProfile(ctx context.Context, input *dto.UpdateProfileInput) (*model.User, error)
	Deactivate(ctx context.Context, id string) error
}
