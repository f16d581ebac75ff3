package database

import "github.com/jmoiron/sqlx"

// schemaStatements holds the DDL executed at startup. Constraint names are
// load-bearing: the repositories map unique/foreign-key violations back to
// domain errors by constraint name.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		slug VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		CONSTRAINT unique_category_slug UNIQUE (slug)
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS unique_category_name_ci
		ON categories (LOWER(name))`,
	`CREATE INDEX IF NOT EXISTS idx_categories_active_name
		ON categories (is_active, name)`,

	`CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY,
		category_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		slug VARCHAR(255) NOT NULL,
		short_description TEXT NOT NULL DEFAULT '',
		full_description TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		CONSTRAINT unique_product_slug UNIQUE (slug),
		CONSTRAINT fk_product_category FOREIGN KEY (category_id)
			REFERENCES categories (id) ON DELETE RESTRICT
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS unique_product_name_per_category_ci
		ON products (category_id, LOWER(name))`,
	`CREATE INDEX IF NOT EXISTS idx_products_active_name
		ON products (is_active, name)`,

	`CREATE TABLE IF NOT EXISTS attributes_schemas (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		schema JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS unique_attributes_schema_name_ci
		ON attributes_schemas (LOWER(name))`,

	`CREATE TABLE IF NOT EXISTS product_variants (
		id UUID PRIMARY KEY,
		product_id UUID NOT NULL,
		sku VARCHAR(100) NOT NULL,
		price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		stock_quantity INTEGER NOT NULL DEFAULT 0 CHECK (stock_quantity >= 0),
		attributes JSONB NOT NULL DEFAULT '{"type": "none"}',
		sort_order INTEGER NOT NULL CHECK (sort_order >= 0),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		CONSTRAINT unique_variant_sku UNIQUE (sku),
		CONSTRAINT unique_attributes_per_product UNIQUE (product_id, attributes),
		CONSTRAINT unique_variant_sort_order_per_product UNIQUE (product_id, sort_order),
		CONSTRAINT fk_variant_product FOREIGN KEY (product_id)
			REFERENCES products (id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_variants_active_sku
		ON product_variants (is_active, sku)`,
	`CREATE INDEX IF NOT EXISTS idx_variants_attributes
		ON product_variants USING GIN (attributes)`,

	`CREATE TABLE IF NOT EXISTS product_images (
		id UUID PRIMARY KEY,
		product_id UUID NOT NULL,
		image_url TEXT NOT NULL,
		alt_text VARCHAR(255) NOT NULL DEFAULT '',
		sort_order INTEGER NOT NULL CHECK (sort_order >= 0),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		CONSTRAINT unique_image_sort_order_per_product UNIQUE (product_id, sort_order),
		CONSTRAINT fk_image_product FOREIGN KEY (product_id)
			REFERENCES products (id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_images_active_product
		ON product_images (is_active, product_id)`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		CONSTRAINT unique_user_email UNIQUE (email)
	)`,
	`CREATE TABLE IF NOT EXISTS user_profiles (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		avatar_url TEXT NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		CONSTRAINT unique_profile_user UNIQUE (user_id),
		CONSTRAINT fk_profile_user FOREIGN KEY (user_id)
			REFERENCES users (id) ON DELETE CASCADE
	)`,
}

// InitSchema creates all tables and indexes if they do not exist yet.
func InitSchema(db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
