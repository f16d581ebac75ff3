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
	"github.com/altoshop/catalog-service/internal/model"
	"github.com/altoshop/catalog-service/internal/schema"
	"github.com/altoshop/catalog-service/internal/schema/dto"
)

type schemaUseCase struct {
	repo   schema.Repository
	cache  cache.Cache
	logger *zap.Logger
}

func NewSchemaUseCase(repo schema.Repository, c cache.Cache, log *zap.Logger) schema.UseCase {
	return &schemaUseCase{
		repo:   repo,
		cache:  c,
		logger: log,
	}
}

// CreateSchema registers a new attributes schema. The schema body only has to
// be a JSON object; its internal structure is a data-entry concern and is
// deliberately not validated here.
func (uc *schemaUseCase) CreateSchema(ctx context.Context, input *dto.CreateSchemaInput) (*model.AttributesSchema, error) {
	now := time.Now()
	s := &model.AttributesSchema{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:   input.Name,
		Schema: input.Schema,
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	// Runs after the insert is committed, so readers never keep a composite
	// that permanently misses this schema.
	uc.invalidateComposite(ctx)

	return s, nil
}

func (uc *schemaUseCase) GetSchema(ctx context.Context, id string) (*model.AttributesSchema, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apperr.ErrNotFound
	}
	return s, nil
}

func (uc *schemaUseCase) ListSchemas(ctx context.Context) ([]model.AttributesSchema, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *schemaUseCase) UpdateSchema(ctx context.Context, input *dto.UpdateSchemaInput) (*model.AttributesSchema, error) {
	s, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apperr.ErrNotFound
	}

	s.Name = input.Name
	s.Schema = input.Schema
	s.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}

	uc.invalidateComposite(ctx)

	return s, nil
}

func (uc *schemaUseCase) DeleteSchema(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateComposite(ctx)

	return nil
}

func (uc *schemaUseCase) CompositeSchema(ctx context.Context) (model.JSONObject, error) {
	cached, err := uc.cache.Get(ctx, CompositeSchemaCacheKey)
	if err == nil {
		var composite model.JSONObject
		if uerr := json.Unmarshal(cached, &composite); uerr == nil {
			return composite, nil
		} else {
			uc.logger.Warn("discarding unreadable cached composite schema", zap.Error(uerr))
		}
	} else if !errors.Is(err, cache.ErrMiss) {
		// Cache outage is a soft failure, fall through to the registry.
		uc.logger.Warn("composite schema cache read failed", zap.Error(err))
	}

	schemas, err := uc.repo.ListSchemas(ctx)
	if err != nil {
		return nil, err
	}
	composite := Compose(schemas)

	if data, err := json.Marshal(composite); err == nil {
		if err := uc.cache.Set(ctx, CompositeSchemaCacheKey, data, 0); err != nil {
			uc.logger.Warn("composite schema cache write failed", zap.Error(err))
		}
	}

	return composite, nil
}

func (uc *schemaUseCase) ValidateAttributes(ctx context.Context, attrs model.JSONObject) error {
	if attrs == nil {
		attrs = DefaultAttributes()
	}

	composite, err := uc.CompositeSchema(ctx)
	if err != nil {
		return err
	}

	matches, err := matchingBranches(composite, attrs)
	if err != nil {
		return err
	}

	switch {
	case matches == 0:
		return &apperr.ValidationError{
			Field:  "attributes",
			Reason: "does not match any registered attributes schema",
		}
	case matches > 1:
		// More than one branch accepting the same object means two registered
		// schemas share a discriminant. That is stored-data corruption, not a
		// caller mistake.
		uc.logger.Error("attributes matched multiple schema branches",
			zap.Int("matches", matches))
		return &apperr.IntegrityError{Reason: "attributes match multiple schema branches"}
	}
	return nil
}

func (uc *schemaUseCase) invalidateComposite(ctx context.Context) {
	if err := uc.cache.Delete(ctx, CompositeSchemaCacheKey); err != nil {
		uc.logger.Error("failed to invalidate composite schema cache", zap.Error(err))
	}
}
