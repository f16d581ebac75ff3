package schema

import (
	"context"

	"github.com/altoshop/catalog-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, s *model.AttributesSchema) error
	Update(ctx context.Context, s *model.AttributesSchema) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.AttributesSchema, error)
	FindAll(ctx context.Context) ([]model.AttributesSchema, error)

	// ListSchemas returns only the schema documents, ordered by name. Used to
	// build the composite schema.
	ListSchemas(ctx context.Context) ([]model.JSONObject, error)
}
