package schema

import (
	"context"

	"github.com/altoshop/catalog-service/internal/model"
	"github.com/altoshop/catalog-service/internal/schema/dto"
)

type UseCase interface {
	CreateSchema(ctx context.Context, input *dto.CreateSchemaInput) (*model.AttributesSchema, error)
	GetSchema(ctx context.Context, id string) (*model.AttributesSchema, error)
	ListSchemas(ctx context.Context) ([]model.AttributesSchema, error)
	UpdateSchema(ctx context.Context, input *dto.UpdateSchemaInput) (*model.AttributesSchema, error)
	DeleteSchema(ctx context.Context, id string) error

	// CompositeSchema returns the cached discriminated union of all registered
	// schemas, recomputing it from the registry on a cache miss.
	CompositeSchema(ctx context.Context) (model.JSONObject, error)

	// ValidateAttributes checks a variant attributes object against the
	// composite schema. It succeeds only when exactly one branch matches.
	ValidateAttributes(ctx context.Context, attrs model.JSONObject) error
}
