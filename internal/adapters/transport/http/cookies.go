package http

import (
	"net/http"

	"github.com/Miraines/ContactNest/contacts-service/internal/adapters/transport/http/middleware"
	"github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/model"
	"github.com/Miraines/ContactNest/contacts-service/internal/infra/config"
	"github.com/gin-gonic/gin"
)

// Session cookies are http-only and SameSite=None so a browser frontend on
// a different origin can carry them; Secure is tied to the environment.

func setSessionCookies(c *gin.Context, cfg *config.Config, pair model.TokenPair) {
	secure := !cfg.IsDev()
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.AccessCookie, pair.AccessToken,
		int(pair.AccessTTL.Seconds()), "/", cfg.CookieDomain, secure, true)
	c.SetCookie(middleware.RefreshCookie, pair.RefreshToken,
		int(pair.RefreshTTL.Seconds()), "/", cfg.CookieDomain, secure, true)
}

func setAccessCookie(c *gin.Context, cfg *config.Config, pair model.TokenPair) {
	secure := !cfg.IsDev()
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.AccessCookie, pair.AccessToken,
		int(pair.AccessTTL.Seconds()), "/", cfg.CookieDomain, secure, true)
}

func clearSessionCookies(c *gin.Context, cfg *config.Config) {
	secure := !cfg.IsDev()
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.AccessCookie, "", -1, "/", cfg.CookieDomain, secure, true)
	c.SetCookie(middleware.RefreshCookie, "", -1, "/", cfg.CookieDomain, secure, true)
}
