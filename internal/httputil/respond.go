package httputil

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/altoshop/catalog-service/internal/apperr"
)

// RespondError writes a JSON error response for a domain error. Uniqueness
// and protection conflicts map to 409, validation failures to 400, integrity
// failures and unknown errors to 500.
func RespondError(c *gin.Context, log *zap.Logger, err error) {
	var (
		uniqErr      *apperr.UniquenessError
		validErr     *apperr.ValidationError
		integrityErr *apperr.IntegrityError
	)

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, apperr.ErrProtected):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &uniqErr):
		c.JSON(http.StatusConflict, gin.H{"error": uniqErr.Error(), "field": uniqErr.Field})
	case errors.As(err, &validErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error(), "field": validErr.Field})
	case errors.As(err, &integrityErr):
		log.Error("data integrity error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": integrityErr.Error()})
	default:
		log.Error("internal error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
