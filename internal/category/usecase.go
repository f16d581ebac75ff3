package category

import (
	"context"

	"github.com/altoshop/catalog-service/internal/category/dto"
	"github.com/altoshop/catalog-service/internal/model"
)

type UseCase interface {
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	// ListActiveCategories serves the storefront navigation from cache,
	// falling back to the database when the entry is absent.
	ListActiveCategories(ctx context.Context) ([]model.CategorySummary, error)
}
