package category

import (
	"context"

	"github.com/altoshop/catalog-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, c *model.Category) error
	Update(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.Category, error)
	FindBySlug(ctx context.Context, slug string) (*model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)

	// ListActiveSummaries returns active categories with their active-product
	// counts in one grouped query.
	ListActiveSummaries(ctx context.Context) ([]model.CategorySummary, error)
}
