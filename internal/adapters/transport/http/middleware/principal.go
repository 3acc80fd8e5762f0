package middleware

import (
	"github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/model"
	"github.com/gin-gonic/gin"
)

// principalKey is private to this package: handlers go through SetPrincipal
// and Principal instead of poking at an untyped context value.
const principalKey = "auth.principal"

func SetPrincipal(c *gin.Context, p model.Principal) {
	c.Set(principalKey, p)
}

func Principal(c *gin.Context) (model.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return model.Principal{}, false
	}
	p, ok := v.(model.Principal)
	return p, ok
}
