package dto

import "github.com/altoshop/catalog-service/internal/model"

// StorefrontProduct is a product-list entry with its derived read-side data.
type StorefrontProduct struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Slug       string               `json:"slug"`
	PriceRange *model.PriceRange    `json:"price_range,omitempty"`
	Images     []model.ProductImage `json:"images"`
}

// StorefrontProductDetail is the full product page payload.
type StorefrontProductDetail struct {
	Product    model.Product          `json:"product"`
	Variants   []model.ProductVariant `json:"variants"`
	Images     []model.ProductImage   `json:"images"`
	PriceRange *model.PriceRange      `json:"price_range,omitempty"`
	TotalStock int                    `json:"total_stock_quantity"`
}
