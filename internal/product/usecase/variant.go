package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/altoshop/catalog-service/internal/apperr"
	"github.com/altoshop/catalog-service/internal/model"
	"github.com/altoshop/catalog-service/internal/product/dto"
	schemausecase "github.com/altoshop/catalog-service/internal/schema/usecase"
)

func (uc *productUseCase) AddVariant(ctx context.Context, input *dto.CreateVariantInput) (*model.ProductVariant, error) {
	p, err := uc.repo.FindProductByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.ErrNotFound
	}

	if input.Price.IsNegative() {
		return nil, &apperr.ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if input.StockQuantity < 0 {
		return nil, &apperr.ValidationError{Field: "stock_quantity", Reason: "must not be negative"}
	}

	attrs := input.Attributes
	if attrs == nil {
		attrs = schemausecase.DefaultAttributes()
	}
	if err := uc.schemaUC.ValidateAttributes(ctx, attrs); err != nil {
		return nil, err
	}

	// Negative means "assign the next position within the product".
	sortOrder := -1
	if input.SortOrder != nil {
		if *input.SortOrder < 0 {
			return nil, &apperr.ValidationError{Field: "sort_order", Reason: "must not be negative"}
		}
		sortOrder = *input.SortOrder
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := time.Now()
	v := &model.ProductVariant{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ProductID:     input.ProductID,
		SKU:           input.SKU,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		Attributes:    attrs,
		SortOrder:     sortOrder,
		IsActive:      isActive,
	}

	if err := uc.repo.CreateVariant(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (uc *productUseCase) UpdateVariant(ctx context.Context, input *dto.UpdateVariantInput) (*model.ProductVariant, error) {
	v, err := uc.repo.FindVariantByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperr.ErrNotFound
	}

	if input.Price.IsNegative() {
		return nil, &apperr.ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if input.StockQuantity < 0 {
		return nil, &apperr.ValidationError{Field: "stock_quantity", Reason: "must not be negative"}
	}

	attrs := input.Attributes
	if attrs == nil {
		attrs = v.Attributes
	}
	if err := uc.schemaUC.ValidateAttributes(ctx, attrs); err != nil {
		return nil, err
	}

	v.SKU = input.SKU
	v.Price = input.Price
	v.StockQuantity = input.StockQuantity
	v.Attributes = attrs
	v.IsActive = input.IsActive
	v.UpdatedAt = time.Now()

	if err := uc.repo.UpdateVariant(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (uc *productUseCase) DeleteVariant(ctx context.Context, id string) error {
	return uc.repo.DeleteVariant(ctx, id)
}

func (uc *productUseCase) ListVariants(ctx context.Context, productID string) ([]model.ProductVariant, error) {
	return uc.repo.FindVariantsByProduct(ctx, productID)
}

func (uc *productUseCase) AddImage(ctx context.Context, input *dto.CreateImageInput) (*model.ProductImage, error) {
	p, err := uc.repo.FindProductByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.ErrNotFound
	}

	sortOrder := -1
	if input.SortOrder != nil {
		if *input.SortOrder < 0 {
			return nil, &apperr.ValidationError{Field: "sort_order", Reason: "must not be negative"}
		}
		sortOrder = *input.SortOrder
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := time.Now()
	img := &model.ProductImage{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ProductID: input.ProductID,
		ImageURL:  input.ImageURL,
		AltText:   input.AltText,
		SortOrder: sortOrder,
		IsActive:  isActive,
	}

	if err := uc.repo.CreateImage(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (uc *productUseCase) UpdateImage(ctx context.Context, input *dto.UpdateImageInput) (*model.ProductImage, error) {
	img, err := uc.repo.FindImageByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, apperr.ErrNotFound
	}

	img.ImageURL = input.ImageURL
	img.AltText = input.AltText
	img.IsActive = input.IsActive
	img.UpdatedAt = time.Now()

	if err := uc.repo.UpdateImage(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (uc *productUseCase) DeleteImage(ctx context.Context, id string) error {
	return uc.repo.DeleteImage(ctx, id)
}

func (uc *productUseCase) ListImages(ctx context.Context, productID string) ([]model.ProductImage, error) {
	return uc.repo.FindImagesByProduct(ctx, productID)
}
