package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/altoshop/catalog-service/internal/apperr"
	"github.com/altoshop/catalog-service/internal/model"
	"github.com/altoshop/catalog-service/internal/user"
	"github.com/altoshop/catalog-service/internal/user/dto"
)

type userUseCase struct {
	repo   user.Repository
	logger *zap.Logger
}

func NewUserUseCase(repo user.Repository, log *zap.Logger) user.UseCase {
	return &userUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *userUseCase) Register(ctx context.Context, input *dto.RegisterInput) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &model.User{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	p := &model.UserProfile{
		ID:     uuid.New().String(),
		UserID: u.ID,
	}

	if err := uc.repo.Create(ctx, u, p); err != nil {
		return nil, err
	}

	u.Profile = p
	return u, nil
}

func (uc *userUseCase) GetUser(ctx context.Context, id string) (*model.User, error) {
	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.ErrNotFound
	}
	return u, nil
}

func (uc *userUseCase) UpdateProfile(ctx context.Context, input *dto.UpdateProfileInput) (*model.User, error) {
	u, err := uc.repo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.ErrNotFound
	}

	p := u.Profile
	if p == nil {
		p = &model.UserProfile{
			ID:     uuid.New().String(),
			UserID: u.ID,
		}
	}
	p.AvatarURL = input.AvatarURL
	p.Bio = input.Bio

	if err := uc.repo.UpdateProfile(ctx, p); err != nil {
		return nil, err
	}

	u.Profile = p
	return u, nil
}

func (uc *userUseCase) Deactivate(ctx context.Context, id string) error {
	return uc.repo.SetActive(ctx, id, false)
}
