package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/altoshop/catalog-service/internal/model"
)

// PriceRanges returns min/max active-variant prices grouped by product.
// Products without active variants simply have no entry in the result.
func (r *PGRepository) PriceRanges(ctx context.Context, productIDs []string) (map[string]model.PriceRange, error) {
	ranges := make(map[string]model.PriceRange, len(productIDs))
	if len(productIDs) == 0 {
		return ranges, nil
	}

	query, args, err := sqlx.In(`
        SELECT product_id, MIN(price) AS min_price, MAX(price) AS max_price
        FROM product_variants
        WHERE is_active AND product_id IN (?)
        GROUP BY product_id
    `, productIDs)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		ProductID string           `db:"product_id"`
		MinPrice  *decimal.Decimal `db:"min_price"`
		MaxPrice  *decimal.Decimal `db:"max_price"`
	}
	if err := r.DB.SelectContext(ctx, &rows, r.DB.Rebind(query), args...); err != nil {
		return nil, err
	}

	for _, row := range rows {
		ranges[row.ProductID] = model.PriceRange{Min: row.MinPrice, Max: row.MaxPrice}
	}
	return ranges, nil
}

// TotalStockQuantities sums active-variant stock grouped by product.
func (r *PGRepository) TotalStockQuantities(ctx context.Context, productIDs []string) (map[string]int, error) {
	totals := make(map[string]int, len(productIDs))
	if len(productIDs) == 0 {
		return totals, nil
	}

	query, args, err := sqlx.In(`
        SELECT product_id, COALESCE(SUM(stock_quantity), 0) AS total
        FROM product_variants
        WHERE is_active AND product_id IN (?)
        GROUP BY product_id
    `, productIDs)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		ProductID string `db:"product_id"`
		Total     int    `db:"total"`
	}
	if err := r.DB.SelectContext(ctx, &rows, r.DB.Rebind(query), args...); err != nil {
		return nil, err
	}

	for _, row := range rows {
		totals[row.ProductID] = row.Total
	}
	return totals, nil
}

// ActiveImages returns the first limit active images per product, ordered by
// (sort_order, id). A window function keeps it one query for any number of
// products instead of a LIMIT per parent.
func (r *PGRepository) ActiveImages(ctx context.Context, productIDs []string, limit int) (map[string][]model.ProductImage, error) {
	images := make(map[string][]model.ProductImage, len(productIDs))
	if len(productIDs) == 0 || limit <= 0 {
		return images, nil
	}

	query, args, err := sqlx.In(`
        SELECT id, product_id, image_url, alt_text, sort_order, is_active, created_at, updated_at
        FROM (
            SELECT pi.*,
                   ROW_NUMBER() OVER (
                       PARTITION BY product_id
                       ORDER BY sort_order, id
                   ) AS rn
            FROM product_images pi
            WHERE is_active AND product_id IN (?)
        ) ranked
        WHERE rn <= ?
        ORDER BY product_id, sort_order, id
    `, productIDs, limit)
	if err != nil {
		return nil, err
	}

	var rows []model.ProductImage
	if err := r.DB.SelectContext(ctx, &rows, r.DB.Rebind(query), args...); err != nil {
		return nil, err
	}

	for _, img := range rows {
		images[img.ProductID] = append(images[img.ProductID], img)
	}
	return images, nil
}
