package http

import (
	"crypto/sha256"
	"fmt"
	"net/http"
	"time"

	"github.com/Miraines/ContactNest/contacts-service/internal/adapters/transport/http/dto"
	"github.com/Miraines/ContactNest/contacts-service/internal/adapters/transport/http/middleware"
	authsvc "github.com/Miraines/ContactNest/contacts-service/internal/app/auth/service"
	"github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/model"
	"github.com/Miraines/ContactNest/contacts-service/internal/infra/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	svc authsvc.Service
	cfg *config.Config
	log *zap.Logger
}

func NewAuthHandler(svc authsvc.Service, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, cfg: cfg, log: log}
}

type userResponse struct {
	Email      string     `json:"email"`
	Username   string     `json:"username"`
	Role       model.Role `json:"role"`
	IsVerified bool       `json:"isVerified"`
	VerifiedAt *time.Time `json:"verifiedTime,omitempty"`
}

func newUserResponse(u model.User) userResponse {
	return userResponse{
		Email:      u.Email,
		Username:   u.Username,
		Role:       u.Role,
		IsVerified: u.IsVerified,
		VerifiedAt: u.VerifiedAt,
	}
}

// emailDigest keeps the address itself out of the logs.
func emailDigest(email string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(email)))
}

func (h *AuthHandler) Register(c *gin.Context) {
	var body dto.RegisterDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.log.Info("/auth/register", zap.String("user", emailDigest(body.Email)))

	user, err := h.svc.Register(c.Request.Context(), body)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "success register user",
		"data":    newUserResponse(user),
	})
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var body dto.VerifyEmailDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.svc.VerifyEmail(c.Request.Context(), body)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success verifying email",
		"data":    newUserResponse(user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body dto.LoginDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.log.Info("/auth/login", zap.String("user", emailDigest(body.Email)))

	user, pair, err := h.svc.Login(c.Request.Context(), body)
	if err != nil {
		writeError(c, err)
		return
	}

	setSessionCookies(c, h.cfg, pair)
	c.JSON(http.StatusOK, gin.H{
		"message": "login success",
		"data": gin.H{
			"email":        user.Email,
			"username":     user.Username,
			"accessToken":  pair.AccessToken,
			"refreshToken": pair.RefreshToken,
			"expiresIn":    int(pair.AccessTTL.Seconds()),
		},
	})
}

func (h *AuthHandler) CurrentUser(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.svc.CurrentUser(c.Request.Context(), principal.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success getting current user",
		"data":    newUserResponse(user),
	})
}

func (h *AuthHandler) UpdateCurrentUser(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body dto.UpdateCurrentUserDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.svc.UpdateCurrentUser(c.Request.Context(), principal.UserID, body)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success update current user",
		"data":    newUserResponse(user),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	// Logout always succeeds from the client's perspective; a failed
	// server-side invalidation is logged, not surfaced.
	raw := middleware.BearerOrCookie(c, middleware.AccessCookie)
	if err := h.svc.Logout(c.Request.Context(), raw); err != nil {
		h.log.Error("logout invalidation failed", zap.Error(err))
	}

	clearSessionCookies(c, h.cfg)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	raw := middleware.BearerOrCookie(c, middleware.RefreshCookie)
	if raw == "" {
		var body dto.RefreshDTO
		if err := c.ShouldBindJSON(&body); err == nil {
			raw = body.RefreshToken
		}
	}
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh token is missing"})
		return
	}

	pair, err := h.svc.Refresh(c.Request.Context(), raw)
	if err != nil {
		writeError(c, err)
		return
	}

	setAccessCookie(c, h.cfg, pair)
	c.JSON(http.StatusOK, gin.H{
		"message": "success regenerate access token",
		"data": gin.H{
			"accessToken": pair.AccessToken,
			"expiresIn":   int(pair.AccessTTL.Seconds()),
		},
	})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var body dto.ForgotPasswordDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.log.Info("/auth/forgot-password", zap.String("user", emailDigest(body.Email)))

	if err := h.svc.ForgotPassword(c.Request.Context(), body); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success sent email for reset password",
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var body dto.ResetPasswordDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.svc.ResetPassword(c.Request.Context(), body)
	if err != nil {
		writeError(c, err)
		return
	}

	// Existing sessions must authenticate again with the new password.
	clearSessionCookies(c, h.cfg)
	c.JSON(http.StatusOK, gin.H{
		"message": "success reset password",
		"data": gin.H{
			"email":    user.Email,
			"username": user.Username,
		},
	})
}
