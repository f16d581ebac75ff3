package dto

import (
	"github.com/shopspring/decimal"

	"github.com/altoshop/catalog-service/internal/model"
)

type CreateProductInput struct {
	CategoryID       string `json:"category_id" binding:"required"`
	Name             string `json:"name" binding:"required"`
	Slug             string `json:"slug" binding:"required"`
	ShortDescription string `json:"short_description"`
	FullDescription  string `json:"full_description"`
	IsActive         *bool  `json:"is_active"`
}

type UpdateProductInput struct {
	ID               string `json:"-"`
	CategoryID       string `json:"category_id" binding:"required"`
	Name             string `json:"name" binding:"required"`
	Slug             string `json:"slug" binding:"required"`
	ShortDescription string `json:"short_description"`
	FullDescription  string `json:"full_description"`
	IsActive         bool   `json:"is_active"`
}

type ProductFilters struct {
	CategoryID string `form:"category_id"`
	IsActive   *bool  `form:"is_active"`
	Search     string `form:"search"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

type CreateVariantInput struct {
	ProductID     string           `json:"-"`
	SKU           string           `json:"sku" binding:"required"`
	Price         decimal.Decimal  `json:"price"`
	StockQuantity int              `json:"stock_quantity"`
	Attributes    model.JSONObject `json:"attributes"`
	SortOrder     *int             `json:"sort_order"`
	IsActive      *bool            `json:"is_active"`
}

type UpdateVariantInput struct {
	ID            string           `json:"-"`
	SKU           string           `json:"sku" binding:"required"`
	Price         decimal.Decimal  `json:"price"`
	StockQuantity int              `json:"stock_quantity"`
	Attributes    model.JSONObject `json:"attributes"`
	IsActive      bool             `json:"is_active"`
}

type CreateImageInput struct {
	ProductID string `json:"-"`
	ImageURL  string `json:"image_url" binding:"required"`
	AltText   string `json:"alt_text"`
	SortOrder *int   `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

// UpdateImageInput edits an image's content and visibility. The position is
// fixed at creation time and not editable.
type UpdateImageInput struct {
	ID       string `json:"-"`
	ImageURL string `json:"image_url" binding:"required"`
	AltText  string `json:"alt_text"`
	IsActive bool   `json:"is_active"`
}
