package http

import (
	"net/http"
	"time"

	"github.com/Miraines/ContactNest/contacts-service/internal/adapters/transport/http/middleware"
	authsvc "github.com/Miraines/ContactNest/contacts-service/internal/app/auth/service"
	contactsvc "github.com/Miraines/ContactNest/contacts-service/internal/app/contacts/service"
	"github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/model"
	"github.com/Miraines/ContactNest/contacts-service/internal/infra/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter wires middleware and all routes. The /auth surface is public
// except the current-user pair; everything under /contacts and /categories
// sits behind the access guard.
func NewRouter(
	auth authsvc.Service,
	contacts contactsvc.Service,
	cfg *config.Config,
	logger *zap.Logger,
	registry *prometheus.Registry,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.NewRateLimitPerIP(50, 100, 10_000, time.Hour))
	router.Use(middleware.NewMetrics(registry).Handler())

	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept",
			"Authorization",
			"X-Requested-With",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := NewAuthHandler(auth, cfg, logger)
	contactHandler := NewContactHandler(contacts)
	accessGuard := middleware.AccessGuard(auth)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/verify-email", authHandler.VerifyEmail)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/current", accessGuard, authHandler.CurrentUser)
		authGroup.PATCH("/current", accessGuard, authHandler.UpdateCurrentUser)
		authGroup.DELETE("/logout", authHandler.Logout)
		authGroup.POST("/refresh-token", authHandler.RefreshToken)
		authGroup.POST("/forgot-password", authHandler.ForgotPassword)
		authGroup.POST("/reset-password", authHandler.ResetPassword)
	}

	contactGroup := router.Group("/contacts", accessGuard)
	{
		contactGroup.POST("", contactHandler.Create)
		contactGroup.GET("", contactHandler.List)
		contactGroup.GET("/:contactId", contactHandler.Get)
		contactGroup.PUT("/:contactId", contactHandler.Update)
		contactGroup.DELETE("/:contactId", contactHandler.Delete)

		contactGroup.POST("/:contactId/addresses", contactHandler.CreateAddress)
		contactGroup.GET("/:contactId/addresses", contactHandler.ListAddresses)
		contactGroup.GET("/:contactId/addresses/:addressId", contactHandler.GetAddress)
		contactGroup.PUT("/:contactId/addresses/:addressId", contactHandler.UpdateAddress)
		contactGroup.DELETE("/:contactId/addresses/:addressId", contactHandler.DeleteAddress)
	}

	router.GET("/categories",
		accessGuard,
		middleware.RoleGuard(auth, model.RoleAdmin),
		contactHandler.ListCategories,
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
	})
	router.GET("/metrics", gin.WrapH(
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	))

	return router
}
