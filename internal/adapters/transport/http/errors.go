package http

import (
	"errors"
	"net/http"

	customErrors "github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/errors"
	"github.com/gin-gonic/gin"
)

// writeError maps the domain error taxonomy onto HTTP statuses. Internals
// never leak: anything unrecognized gets a generic 500 body.
func writeError(c *gin.Context, err error) {
	var verr *customErrors.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"errors": verr.Fields,
		})
		return
	}

	switch {
	case customErrors.IsInvalidArgument(err),
		customErrors.IsAlreadyExists(err),
		customErrors.IsAlreadyVerified(err),
		customErrors.IsTokenMismatch(err),
		customErrors.IsTokenExpired(err),
		customErrors.IsNoResetRequest(err),
		customErrors.IsInvalidEmail(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case customErrors.IsInvalidCredentials(err), customErrors.IsInvalidToken(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case customErrors.IsEmailNotVerified(err), customErrors.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case customErrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
