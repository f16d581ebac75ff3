package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/altoshop/catalog-service/internal/apperr"
	"github.com/altoshop/catalog-service/internal/model"
)

var variantConstraintFields = map[string]string{
	"unique_variant_sku":                    "sku",
	"unique_attributes_per_product":         "attributes",
	"unique_variant_sort_order_per_product": "sort_order",
}

const variantSortOrderConstraint = "unique_variant_sort_order_per_product"

// maxOrderRetries bounds the retry loop for ordinal assignment. Two writers
// racing on the same product collide on the (product_id, sort_order)
// constraint; the loser recomputes and tries again.
const maxOrderRetries = 3

const insertVariantQuery = `
    INSERT INTO product_variants (
        id, product_id, sku, price, stock_quantity, attributes, sort_order,
        is_active, created_at, updated_at
    )
    VALUES (
        :id, :product_id, :sku, :price, :stock_quantity, :attributes, :sort_order,
        :is_active, :created_at, :updated_at
    )
`

func (r *PGRepository) CreateVariant(ctx context.Context, v *model.ProductVariant) error {
	if v.SortOrder >= 0 {
		_, err := r.DB.NamedExecContext(ctx, insertVariantQuery, v)
		return apperr.FromPG(err, variantConstraintFields)
	}

	for attempt := 0; attempt < maxOrderRetries; attempt++ {
		err := r.insertVariantWithNextOrder(ctx, v)
		if apperr.IsUniqueViolation(err, variantSortOrderConstraint) {
			continue
		}
		return apperr.FromPG(err, variantConstraintFields)
	}
	return fmt.Errorf("failed to assign variant sort order after %d attempts", maxOrderRetries)
}

// insertVariantWithNextOrder reads the current maximum position for the
// product and inserts with max+1 (0 when no siblings exist) inside a single
// transaction. The unique constraint on (product_id, sort_order) turns a
// concurrent duplicate into a retryable error instead of a silent collision.
func (r *PGRepository) insertVariantWithNextOrder(ctx context.Context, v *model.ProductVariant) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var next int
	err = tx.GetContext(ctx, &next,
		`SELECT COALESCE(MAX(sort_order) + 1, 0) FROM product_variants WHERE product_id = $1`,
		v.ProductID)
	if err != nil {
		return err
	}
	v.SortOrder = next

	if _, err := tx.NamedExecContext(ctx, insertVariantQuery, v); err != nil {
		v.SortOrder = -1
		return err
	}
	return tx.Commit()
}

func (r *PGRepository) UpdateVariant(ctx context.Context, v *model.ProductVariant) error {
	query := `
        UPDATE product_variants
        SET sku = :sku,
            price = :price,
            stock_quantity = :stock_quantity,
            attributes = :attributes,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, v)
	return apperr.FromPG(err, variantConstraintFields)
}

func (r *PGRepository) DeleteVariant(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM product_variants WHERE id = $1`, id)
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

func (r *PGRepository) FindVariantByID(ctx context.Context, id string) (*model.ProductVariant, error) {
	var v model.ProductVariant
	query := `SELECT * FROM product_variants WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &v, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *PGRepository) FindVariantsByProduct(ctx context.Context, productID string) ([]model.ProductVariant, error) {
	var variants []model.ProductVariant
	query := `
        SELECT * FROM product_variants
        WHERE product_id = $1
        ORDER BY sort_order, sku
    `
	err := r.DB.SelectContext(ctx, &variants, query, productID)
	return variants, err
}
