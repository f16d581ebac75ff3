package product

import (
	"context"

	"github.com/altoshop/catalog-service/internal/model"
	"github.com/altoshop/catalog-service/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	AddVariant(ctx context.Context, input *dto.CreateVariantInput) (*model.ProductVariant, error)
	UpdateVariant(ctx context.Context, input *dto.UpdateVariantInput) (*model.ProductVariant, error)
	DeleteVariant(ctx context.Context, id string) error
	ListVariants(ctx context.Context, productID string) ([]model.ProductVariant, error)

	AddImage(ctx context.Context, input *dto.CreateImageInput) (*model.ProductImage, error)
	UpdateImage(ctx context.Context, input *dto.UpdateImageInput) (*model.ProductImage, error)
	DeleteImage(ctx context.Context, id string) error
	ListImages(ctx context.Context, productID string) ([]model.ProductImage, error)

	PriceRange(ctx context.Context, productID string) (*model.PriceRange, error)
	TotalStockQuantity(ctx context.Context, productID string) (int, error)

	// StorefrontList returns active products with price ranges and the first
	// few active images, computed with grouped queries rather than per row.
	// A non-empty categorySlug narrows the listing to that category.
	StorefrontList(ctx context.Context, page, pageSize int, categorySlug string) ([]dto.StorefrontProduct, int, error)
	StorefrontDetail(ctx context.Context, slug string) (*dto.StorefrontProductDetail, error)
}
