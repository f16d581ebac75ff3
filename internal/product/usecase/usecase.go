package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/altoshop/catalog-service/internal/apperr"
	"github.com/altoshop/catalog-service/internal/cache"
	"github.com/altoshop/catalog-service/internal/category"
	categoryusecase "github.com/altoshop/catalog-service/internal/category/usecase"
	"github.com/altoshop/catalog-service/internal/model"
	"github.com/altoshop/catalog-service/internal/product"
	"github.com/altoshop/catalog-service/internal/product/dto"
	"github.com/altoshop/catalog-service/internal/schema"
)

type productUseCase struct {
	repo     product.Repository
	catRepo  category.Repository
	schemaUC schema.UseCase
	cache    cache.Cache
	logger   *zap.Logger
}

func NewProductUseCase(
	repo product.Repository,
	catRepo category.Repository,
	schemaUC schema.UseCase,
	c cache.Cache,
	log *zap.Logger,
) product.UseCase {
	return &productUseCase{
		repo:     repo,
		catRepo:  catRepo,
		schemaUC: schemaUC,
		cache:    c,
		logger:   log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	cat, err := uc.catRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, &apperr.ValidationError{Field: "category_id", Reason: "unknown category"}
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := time.Now()
	p := &model.Product{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CategoryID:       input.CategoryID,
		Name:             input.Name,
		Slug:             input.Slug,
		ShortDescription: input.ShortDescription,
		FullDescription:  input.FullDescription,
		IsActive:         isActive,
	}

	if err := uc.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	// Product counts feed the cached navigation list.
	categoryusecase.InvalidateCategories(ctx, uc.cache, uc.logger)

	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.ErrNotFound
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	return uc.repo.FindProducts(ctx, f)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.repo.FindProductByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.ErrNotFound
	}

	if input.CategoryID != p.CategoryID {
		cat, err := uc.catRepo.FindByID(ctx, input.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, &apperr.ValidationError{Field: "category_id", Reason: "unknown category"}
		}
	}

	p.CategoryID = input.CategoryID
	p.Name = input.Name
	p.Slug = input.Slug
	p.ShortDescription = input.ShortDescription
	p.FullDescription = input.FullDescription
	p.IsActive = input.IsActive
	p.UpdatedAt = time.Now()

	if err := uc.repo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}

	categoryusecase.InvalidateCategories(ctx, uc.cache, uc.logger)

	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	if err := uc.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	categoryusecase.InvalidateCategories(ctx, uc.cache, uc.logger)

	return nil
}

func (uc *productUseCase) PriceRange(ctx context.Context, productID string) (*model.PriceRange, error) {
	if _, err := uc.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	ranges, err := uc.repo.PriceRanges(ctx, []string{productID})
	if err != nil {
		return nil, err
	}
	if pr, ok := ranges[productID]; ok {
		return &pr, nil
	}
	// No active variants.
	return nil, nil
}

func (uc *productUseCase) TotalStockQuantity(ctx context.Context, productID string) (int, error) {
	if _, err := uc.GetProduct(ctx, productID); err != nil {
		return 0, err
	}

	totals, err := uc.repo.TotalStockQuantities(ctx, []string{productID})
	if err != nil {
		return 0, err
	}
	return totals[productID], nil
}
