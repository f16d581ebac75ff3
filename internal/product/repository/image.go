package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/altoshop/catalog-service/internal/apperr"
	"github.com/altoshop/catalog-service/internal/model"
)

var imageConstraintFields = map[string]string{
	"unique_image_sort_order_per_product": "sort_order",
}

const imageSortOrderConstraint = "unique_image_sort_order_per_product"

const insertImageQuery = `
    INSERT INTO product_images (
        id, product_id, image_url, alt_text, sort_order, is_active, created_at, updated_at
    )
    VALUES (
        :id, :product_id, :image_url, :alt_text, :sort_order, :is_active, :created_at, :updated_at
    )
`

func (r *PGRepository) CreateImage(ctx context.Context, img *model.ProductImage) error {
	if img.SortOrder >= 0 {
		_, err := r.DB.NamedExecContext(ctx, insertImageQuery, img)
		return apperr.FromPG(err, imageConstraintFields)
	}

	for attempt := 0; attempt < maxOrderRetries; attempt++ {
		err := r.insertImageWithNextOrder(ctx, img)
		if apperr.IsUniqueViolation(err, imageSortOrderConstraint) {
			continue
		}
		return apperr.FromPG(err, imageConstraintFields)
	}
	return fmt.Errorf("failed to assign image sort order after %d attempts", maxOrderRetries)
}

func (r *PGRepository) insertImageWithNextOrder(ctx context.Context, img *model.ProductImage) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var next int
	err = tx.GetContext(ctx, &next,
		`SELECT COALESCE(MAX(sort_order) + 1, 0) FROM product_images WHERE product_id = $1`,
		img.ProductID)
	if err != nil {
		return err
	}
	img.SortOrder = next

	if _, err := tx.NamedExecContext(ctx, insertImageQuery, img); err != nil {
		img.SortOrder = -1
		return err
	}
	return tx.Commit()
}

func (r *PGRepository) UpdateImage(ctx context.Context, img *model.ProductImage) error {
	query := `
        UPDATE product_images
        SET image_url = :image_url,
            alt_text = :alt_text,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, img)
	return apperr.FromPG(err, imageConstraintFields)
}

func (r *PGRepository) DeleteImage(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM product_images WHERE id = $1`, id)
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

func (r *PGRepository) FindImageByID(ctx context.Context, id string) (*model.ProductImage, error) {
	var img model.ProductImage
	query := `SELECT * FROM product_images WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &img, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &img, nil
}

func (r *PGRepository) FindImagesByProduct(ctx context.Context, productID string) ([]model.ProductImage, error) {
	var images []model.ProductImage
	query := `
        SELECT * FROM product_images
        WHERE product_id = $1
        ORDER BY sort_order, id
    `
	err := r.DB.SelectContext(ctx, &images, query, productID)
	return images, err
}
