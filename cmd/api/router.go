package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vitrine-backend/internal/shared/middleware"
	"vitrine-backend/pkg/container"
)

// multipart bodies above this are spooled to disk by gin
const maxMultipartMemory = 8 << 20

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = maxMultipartMemory

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.ClientIPMiddleware(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.AllowedOrigins...),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)

		admin := v1.Group("")
		admin.Use(
			middleware.AuthMiddleware(c.JWTManager, c.AuthService),
			middleware.AdminMiddleware(),
		)
		{
			setupSectionRoutes(admin, c)
			setupDashboardRoutes(admin, c)
			setupMediaRoutes(admin, c)
		}
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)

		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(c.JWTManager, c.AuthService))
		protected.POST("/logout", c.AuthHandler.Logout)
		protected.GET("/me", c.AuthHandler.Me)
	}
}

// ========================================
// SECTION ROUTES (six content collections)
// ========================================
func setupSectionRoutes(rg *gin.RouterGroup, c *container.Container) {
	rg.GET("/sections", c.ContentHandler.ListSections)

	sections := rg.Group("/sections/:category")
	{
		sections.GET("/items", c.ContentHandler.ListItems)
		sections.POST("/items", c.ContentHandler.CreateItem)
		sections.GET("/items/:id", c.ContentHandler.GetItem)
		sections.PATCH("/items/:id", c.ContentHandler.UpdateItem)
		sections.PUT("/items/:id", c.ContentHandler.UpdateItem)
		sections.DELETE("/items/:id", c.ContentHandler.DeleteItem)
		sections.POST("/items/:id/toggle-visibility", c.ContentHandler.ToggleVisibility)
		sections.GET("/export", c.ContentHandler.ExportItems)
	}
}

// ========================================
// DASHBOARD ROUTES
// ========================================
func setupDashboardRoutes(rg *gin.RouterGroup, c *container.Container) {
	rg.GET("/dashboard", c.DashboardHandler.GetOverview)
	rg.GET("/profile", c.ProfileHandler.GetProfile)
	rg.GET("/employees", c.EmployeeHandler.ListActive)
}

// ========================================
// MEDIA ROUTES
// ========================================
func setupMediaRoutes(rg *gin.RouterGroup, c *container.Container) {
	media := rg.Group("/media")
	{
		media.POST("/images", c.MediaHandler.UploadImage)
		media.DELETE("/images/:id", c.MediaHandler.DeleteImage)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := "ok"

		collections := gin.H{}
		for _, snap := range appCtx.Collections.Snapshots() {
			collections[string(snap.Category)] = snap.Len()
		}

		// Redis: "fallback" means the in-process cache is serving
		redisStatus := "fallback"
		if appCtx.Redis != nil {
			redisStatus = "ok"
			if err := appCtx.Redis.Ping(ctx); err != nil {
				redisStatus = "error: " + err.Error()
				status = "degraded"
			}
		}

		storageStatus := "disabled"
		if appCtx.Storage != nil {
			storageStatus = "ok"
			if err := appCtx.Storage.Ping(ctx); err != nil {
				storageStatus = "error: " + err.Error()
				status = "degraded"
			}
		}

		databaseStatus := "unused"
		if appCtx.DB != nil {
			databaseStatus = "ok"
			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				databaseStatus = "error: " + err.Error()
				status = "degraded"
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":      status,
			"timestamp":   time.Now().Format(time.RFC3339),
			"version":     appCtx.Config.App.Version,
			"collections": collections,
			"services": gin.H{
				"redis":    redisStatus,
				"storage":  storageStatus,
				"database": databaseStatus,
			},
		})
	}
}
