package model

type Category struct {
	BaseModel
	Name        string `db:"name" json:"name"`
	Slug        string `db:"slug" json:"slug"`
	Description string `db:"description" json:"description"`
	ImageURL    string `db:"image_url" json:"image_url"`
	IsActive    bool   `db:"is_active" json:"is_active"`
}

// CategorySummary is the denormalized storefront navigation entry: an active
// category together with its active-product count.
type CategorySummary struct {
	ID                  string `db:"id" json:"id"`
	Name                string `db:"name" json:"name"`
	Slug                string `db:"slug" json:"slug"`
	ActiveProductsCount int    `db:"active_products_count" json:"active_products_count"`
}
