package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	CategoryID       string `db:"category_id" json:"category_id"`
	Name             string `db:"name" json:"name"`
	Slug             string `db:"slug" json:"slug"`
	ShortDescription string `db:"short_description" json:"short_description"`
	FullDescription  string `db:"full_description" json:"full_description"`
	IsActive         bool   `db:"is_active" json:"is_active"`

	// Joined data, populated by list/detail queries.
	Variants []ProductVariant `db:"-" json:"variants,omitempty"`
	Images   []ProductImage   `db:"-" json:"images,omitempty"`
}

type ProductVariant struct {
	BaseModel
	ProductID     string          `db:"product_id" json:"product_id"`
	SKU           string          `db:"sku" json:"sku"`
	Price         decimal.Decimal `db:"price" json:"price"`
	StockQuantity int             `db:"stock_quantity" json:"stock_quantity"`
	Attributes    JSONObject      `db:"attributes" json:"attributes"`
	SortOrder     int             `db:"sort_order" json:"sort_order"`
	IsActive      bool            `db:"is_active" json:"is_active"`
}

type ProductImage struct {
	BaseModel
	ProductID string `db:"product_id" json:"product_id"`
	ImageURL  string `db:"image_url" json:"image_url"`
	AltText   string `db:"alt_text" json:"alt_text"`
	SortOrder int    `db:"sort_order" json:"sort_order"`
	IsActive  bool   `db:"is_active" json:"is_active"`
}

// PriceRange is the min/max price across a product's active variants. Nil
// bounds mean the product has no active variants.
type PriceRange struct {
	Min *decimal.Decimal `db:"min_price" json:"min,omitempty"`
	Max *decimal.Decimal `db:"max_price" json:"max,omitempty"`
}
