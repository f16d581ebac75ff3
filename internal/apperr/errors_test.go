package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPGUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "unique_category_slug"}

	err := FromPG(pgErr, map[string]string{"unique_category_slug": "slug"})
	var uniqErr *UniquenessError
	require.ErrorAs(t, err, &uniqErr)
	assert.Equal(t, "slug", uniqErr.Field)
}

func TestFromPGUnknownConstraintFallsBackToName(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "some_new_constraint"}

	err := FromPG(pgErr, nil)
	var uniqErr *UniquenessError
	require.ErrorAs(t, err, &uniqErr)
	assert.Equal(t, "some_new_constraint", uniqErr.Field)
}

func TestFromPGForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "fk_product_category"}

	assert.ErrorIs(t, FromPG(pgErr, nil), ErrProtected)
}

func TestFromPGPassesThroughOtherErrors(t *testing.T) {
	plain := errors.New("connection reset")
	assert.Same(t, plain, FromPG(plain, nil))

	pgErr := &pgconn.PgError{Code: "40001"}
	assert.Equal(t, error(pgErr), FromPG(pgErr, nil))
}

func TestFromPGUnwrapsWrappedErrors(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "unique_variant_sku"}
	wrapped := fmt.Errorf("insert variant: %w", pgErr)

	err := FromPG(wrapped, map[string]string{"unique_variant_sku": "sku"})
	var uniqErr *UniquenessError
	require.ErrorAs(t, err, &uniqErr)
	assert.Equal(t, "sku", uniqErr.Field)
}

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "unique_variant_sort_order_per_product"}

	assert.True(t, IsUniqueViolation(pgErr, "unique_variant_sort_order_per_product"))
	assert.False(t, IsUniqueViolation(pgErr, "unique_variant_sku"))
	assert.False(t, IsUniqueViolation(errors.New("boom"), "unique_variant_sku"))
}
