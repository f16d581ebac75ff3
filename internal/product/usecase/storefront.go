package usecase

import (
	"context"

	"github.com/altoshop/catalog-service/internal/apperr"
	"github.com/altoshop/catalog-service/internal/model"
	"github.com/altoshop/catalog-service/internal/product/dto"
)

const (
	defaultStorefrontPageSize = 9
	storefrontImageLimit      = 3
)

func (uc *productUseCase) StorefrontList(ctx context.Context, page, pageSize int, categorySlug string) ([]dto.StorefrontProduct, int, error) {
	if pageSize <= 0 {
		pageSize = defaultStorefrontPageSize
	}
	if page < 1 {
		page = 1
	}

	active := true
	filters := &dto.ProductFilters{
		IsActive: &active,
		Page:     page,
		PageSize: pageSize,
	}
	if categorySlug != "" {
		cat, err := uc.catRepo.FindBySlug(ctx, categorySlug)
		if err != nil {
			return nil, 0, err
		}
		if cat == nil || !cat.IsActive {
			return nil, 0, apperr.ErrNotFound
		}
		filters.CategoryID = cat.ID
	}

	products, count, err := uc.repo.FindProducts(ctx, filters)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}

	ranges, err := uc.repo.PriceRanges(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	images, err := uc.repo.ActiveImages(ctx, ids, storefrontImageLimit)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]dto.StorefrontProduct, len(products))
	for i, p := range products {
		entry := dto.StorefrontProduct{
			ID:     p.ID,
			Name:   p.Name,
			Slug:   p.Slug,
			Images: images[p.ID],
		}
		if entry.Images == nil {
			entry.Images = []model.ProductImage{}
		}
		if pr, ok := ranges[p.ID]; ok {
			entry.PriceRange = &pr
		}
		entries[i] = entry
	}

	return entries, count, nil
}

func (uc *productUseCase) StorefrontDetail(ctx context.Context, slug string) (*dto.StorefrontProductDetail, error) {
	p, err := uc.repo.FindProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.IsActive {
		return nil, apperr.ErrNotFound
	}

	variants, err := uc.repo.FindVariantsByProduct(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	activeVariants := make([]model.ProductVariant, 0, len(variants))
	for _, v := range variants {
		if v.IsActive {
			activeVariants = append(activeVariants, v)
		}
	}

	images, err := uc.repo.FindImagesByProduct(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	activeImages := make([]model.ProductImage, 0, len(images))
	for _, img := range images {
		if img.IsActive {
			activeImages = append(activeImages, img)
		}
	}

	detail := &dto.StorefrontProductDetail{
		Product:  *p,
		Variants: activeVariants,
		Images:   activeImages,
	}

	ranges, err := uc.repo.PriceRanges(ctx, []string{p.ID})
	if err != nil {
		return nil, err
	}
	if pr, ok := ranges[p.ID]; ok {
		detail.PriceRange = &pr
	}

	totals, err := uc.repo.TotalStockQuantities(ctx, []string{p.ID})
	if err != nil {
		return nil, err
	}
	detail.TotalStock = totals[p.ID]

	return detail, nil
}
