package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/altoshop/catalog-service/internal/apperr"
	"github.com/altoshop/catalog-service/internal/model"
	"github.com/altoshop/catalog-service/internal/product/dto"
)

var productConstraintFields = map[string]string{
	"unique_product_name_per_category_ci": "name",
	"unique_product_slug":                 "slug",
}

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) CreateProduct(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, category_id, name, slug, short_description, full_description,
            is_active, created_at, updated_at
        )
        VALUES (
            :id, :category_id, :name, :slug, :short_description, :full_description,
            :is_active, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return apperr.FromPG(err, productConstraintFields)
}

func (r *PGRepository) UpdateProduct(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET category_id = :category_id,
            name = :name,
            slug = :slug,
            short_description = :short_description,
            full_description = :full_description,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return apperr.FromPG(err, productConstraintFields)
}

// DeleteProduct removes a product; variants and images go with it via the
// cascading foreign keys.
func (r *PGRepository) DeleteProduct(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
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

func (r *PGRepository) FindProductByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	query := `SELECT * FROM products WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) FindProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var p model.Product
	query := `SELECT * FROM products WHERE slug = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &p, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) FindProducts(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.CategoryID != "" {
		conditions = append(conditions, "category_id = :category_id")
		args["category_id"] = f.CategoryID
	}
	if f.IsActive != nil {
		conditions = append(conditions, "is_active = :is_active")
		args["is_active"] = *f.IsActive
	}
	if f.Search != "" {
		conditions = append(conditions, "(name ILIKE :search OR slug ILIKE :search)")
		args["search"] = "%" + f.Search + "%"
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	countQuery := "SELECT count(*) FROM products" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return nil, 0, err
		}
	}

	query := "SELECT * FROM products" + whereClause + " ORDER BY name"
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	var products []model.Product
	if err := nstmt.SelectContext(ctx, &products, args); err != nil {
		return nil, 0, err
	}

	return products, count, nil
}
