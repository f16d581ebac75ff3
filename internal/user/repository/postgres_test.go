package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altoshop/catalog-service/internal/apperr"
)

func TestConstraintFieldMapping(t *testing.T) {
	cases := map[string]string{
		"unique_user_email":   "email",
		"unique_profile_user": "user_id",
	}

	for constraint, field := range cases {
		err := apperr.FromPG(&pgconn.PgError{Code: "23505", ConstraintName: constraint}, constraintFields)

		var uniqErr *apperr.UniquenessError
		require.ErrorAs(t, err, &uniqErr, constraint)
		assert.Equal(t, field, uniqErr.Field)
	}
}
