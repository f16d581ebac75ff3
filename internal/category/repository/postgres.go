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
	"unique_category_name_ci": "name",
	"unique_category_slug":    "slug",
}

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categories (id, name, slug, description, image_url, is_active, created_at, updated_at)
        VALUES (:id, :name, :slug, :description, :image_url, :is_active, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return apperr.FromPG(err, constraintFields)
}

func (r *PGRepository) Update(ctx context.Context, c *model.Category) error {
	query := `
        UPDATE categories
        SET name = :name,
            slug = :slug,
            description = :description,
            image_url = :image_url,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return apperr.FromPG(err, constraintFields)
}

// Delete removes a category. The products foreign key is RESTRICT, so a
// category that still owns products comes back as ErrProtected.
func (r *PGRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return apperr.FromPG(err, constraintFields)
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

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	var c model.Category
	query := `SELECT * FROM categories WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &c, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGRepository) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var c model.Category
	query := `SELECT * FROM categories WHERE slug = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &c, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	query := `SELECT * FROM categories ORDER BY name`
	err := r.DB.SelectContext(ctx, &categories, query)
	return categories, err
}

func (r *PGRepository) ListActiveSummaries(ctx context.Context) ([]model.CategorySummary, error) {
	var summaries []model.CategorySummary
	query := `
        SELECT c.id, c.name, c.slug,
               COUNT(p.id) FILTER (WHERE p.is_active) AS active_products_count
        FROM categories c
        LEFT JOIN products p ON p.category_id = c.id
        WHERE c.is_active
        GROUP BY c.id, c.name, c.slug
        ORDER BY c.name
    `
	err := r.DB.SelectContext(ctx, &summaries, query)
	return summaries, err
}
