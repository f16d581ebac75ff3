package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/altoshop/catalog-service/internal/apperr"
	"github.com/altoshop/catalog-service/internal/cache"
	"github.com/altoshop/catalog-service/internal/category"
	"github.com/altoshop/catalog-service/internal/category/dto"
	"github.com/altoshop/catalog-service/internal/model"
)

// CategoriesCacheKey holds the denormalized active-category list for the
// storefront navigation. Invalidated on every category or product mutation;
// the TTL is a fallback in case an invalidation is missed.
const CategoriesCacheKey = "products:categories:v1"

type categoryUseCase struct {
	repo   category.Repository
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

func NewCategoryUseCase(repo category.Repository, c cache.Cache, ttl time.Duration, log *zap.Logger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		cache:  c,
		ttl:    ttl,
		logger: log,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := time.Now()
	c := &model.Category{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		IsActive:    isActive,
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	InvalidateCategories(ctx, uc.cache, uc.logger)

	return c, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrNotFound
	}
	return c, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	c, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrNotFound
	}

	c.Name = input.Name
	c.Slug = input.Slug
	c.Description = input.Description
	c.ImageURL = input.ImageURL
	c.IsActive = input.IsActive
	c.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	InvalidateCategories(ctx, uc.cache, uc.logger)

	return c, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	InvalidateCategories(ctx, uc.cache, uc.logger)

	return nil
}

func (uc *categoryUseCase) ListActiveCategories(ctx context.Context) ([]model.CategorySummary, error) {
	cached, err := uc.cache.Get(ctx, CategoriesCacheKey)
	if err == nil {
		var summaries []model.CategorySummary
		if uerr := json.Unmarshal(cached, &summaries); uerr == nil {
			return summaries, nil
		} else {
			uc.logger.Warn("discarding unreadable cached category list", zap.Error(uerr))
		}
	} else if !errors.Is(err, cache.ErrMiss) {
		uc.logger.Warn("category list cache read failed", zap.Error(err))
	}

	summaries, err := uc.repo.ListActiveSummaries(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(summaries); err == nil {
		if err := uc.cache.Set(ctx, CategoriesCacheKey, data, uc.ttl); err != nil {
			uc.logger.Warn("category list cache write failed", zap.Error(err))
		}
	}

	return summaries, nil
}

// InvalidateCategories evicts the navigation cache. It is shared with the
// product usecase because product writes change active-product counts. Must
// be called only after the triggering write has committed.
func InvalidateCategories(ctx context.Context, c cache.Cache, log *zap.Logger) {
	if err := c.Delete(ctx, CategoriesCacheKey); err != nil {
		log.Error("failed to invalidate category list cache", zap.Error(err))
	}
}
