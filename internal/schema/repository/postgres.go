package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/altoshop/catalog-service/internal/apperr"
	"github.com/altoshop/catalog-service/internal/model"
)

var constraintFields = map[string]string{
	"unique_attributes_schema_name_ci": "name",
}

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, s *model.AttributesSchema) error {
	query := `
        INSERT INTO attributes_schemas (id, name, schema, created_at, updated_at)
        VALUES (:id, :name, :schema, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return apperr.FromPG(err, constraintFields)
}

func (r *PGRepository) Update(ctx context.Context, s *model.AttributesSchema) error {
	query := `
        UPDATE attributes_schemas
        SET name = :name, schema = :schema, updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return apperr.FromPG(err, constraintFields)
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM attributes_schemas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.AttributesSchema, error) {
	var s model.AttributesSchema
	query := `SELECT * FROM attributes_schemas WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &s, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.AttributesSchema, error) {
	var schemas []model.AttributesSchema
	query := `SELECT * FROM attributes_schemas ORDER BY name`
	err := r.DB.SelectContext(ctx, &schemas, query)
	return schemas, err
}

func (r *PGRepository) ListSchemas(ctx context.Context) ([]model.JSONObject, error) {
	var schemas []model.JSONObject
	query := `SELECT schema FROM attributes_schemas ORDER BY name`
	err := r.DB.SelectContext(ctx, &schemas, query)
	return schemas, err
}
