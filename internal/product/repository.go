package product

import (
	"context"

	"github.com/altoshop/catalog-service/internal/model"
	"github.com/altoshop/catalog-service/internal/product/dto"
)

type Repository interface {
	CreateProduct(ctx context.Context, p *model.Product) error
	UpdateProduct(ctx context.Context, p *model.Product) error
	DeleteProduct(ctx context.Context, id string) error
	FindProductByID(ctx context.Context, id string) (*model.Product, error)
	FindProductBySlug(ctx context.Context, slug string) (*model.Product, error)
	FindProducts(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error)

	// CreateVariant inserts a variant. A negative SortOrder requests ordinal
	// assignment: the next position within the product, computed and written
	// in one transaction and retried on a position conflict.
	CreateVariant(ctx context.Context, v *model.ProductVariant) error
	UpdateVariant(ctx context.Context, v *model.ProductVariant) error
	DeleteVariant(ctx context.Context, id string) error
	FindVariantByID(ctx context.Context, id string) (*model.ProductVariant, error)
	FindVariantsByProduct(ctx context.Context, productID string) ([]model.ProductVariant, error)

	// CreateImage follows the same ordinal-assignment contract as
	// CreateVariant.
	CreateImage(ctx context.Context, img *model.ProductImage) error
	UpdateImage(ctx context.Context, img *model.ProductImage) error
	DeleteImage(ctx context.Context, id string) error
	FindImageByID(ctx context.Context, id string) (*model.ProductImage, error)
	FindImagesByProduct(ctx context.Context, productID string) ([]model.ProductImage, error)

	// Set-based read-side aggregations, keyed by parent id. Per-category
	// active-product counts live on the category repository, which folds them
	// into its navigation query.
	PriceRanges(ctx context.Context, productIDs []string) (map[string]model.PriceRange, error)
	TotalStockQuantities(ctx context.Context, productIDs []string) (map[string]int, error)
	ActiveImages(ctx context.Context, productIDs []string, limit int) (map[string][]model.ProductImage, error)
}
