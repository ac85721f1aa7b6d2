package routes

import (
	"net/http"

	"recruitpro_backend/internal/handlers"
	"recruitpro_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers all HTTP routes.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.LeadHandler.RegisterRoutes(api)
		appHandlers.ClientHandler.RegisterRoutes(api)
	}

	// Admin routes require a valid admin token.
	adminAPI := ginRouter.Group("/api")
	adminAPI.Use(middleware.AuthMiddleware())
	adminAPI.Use(middleware.RoleMiddleware("admin"))
	{
		appHandlers.AdminHandler.RegisterRoutes(adminAPI)
	}

	ginRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
