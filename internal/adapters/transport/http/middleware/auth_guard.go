package middleware

import (
	"net/http"
	"strings"

	authsvc "github.com/Miraines/ContactNest/contacts-service/internal/app/auth/service"
	customErrors "github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/errors"
	"github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/model"
	"github.com/gin-gonic/gin"
)

const (
	AccessCookie  = "access_token"
	RefreshCookie = "refresh_token"
)

// BearerOrCookie extracts a token, preferring the Authorization header over
// the named cookie.
func BearerOrCookie(c *gin.Context, cookie string) string {
	if h := c.GetHeader("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	if v, err := c.Cookie(cookie); err == nil {
		return v
	}
	return ""
}

// AccessGuard validates the access token and attaches the principal to the
// request context. It deliberately does not load the account row; role
// checks do that only where a role annotation demands it.
func AccessGuard(svc authsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := BearerOrCookie(c, AccessCookie)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		principal, err := svc.Authenticate(c.Request.Context(), raw)
		if err != nil {
			if customErrors.IsInternal(err) {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		SetPrincipal(c, principal)
		c.Next()
	}
}

// RoleGuard rejects principals whose account role is not in the required
// set. An empty set passes everyone through.
func RoleGuard(svc authsvc.Service, roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(roles) == 0 {
			c.Next()
			return
		}

		principal, ok := Principal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		user, err := svc.CurrentUser(c.Request.Context(), principal.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "account does not have permission"})
	}
}
