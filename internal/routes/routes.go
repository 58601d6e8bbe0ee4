package routes

import (
	"net/http"

	"castlink_backend/internal/auth"
	"castlink_backend/internal/handlers"
	"castlink_backend/internal/middleware"
	"castlink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты приложения.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenManager,
	authService services.AuthService,
) {
	userAuth := middleware.UserAuthMiddleware(tokens, authService)
	productionAuth := middleware.ProductionAuthMiddleware(tokens, authService)
	adminAuth := middleware.AdminAuthMiddleware(tokens)

	api := ginRouter.Group("/api")
	{
		appHandlers.UserHandler.RegisterRoutes(api, userAuth)
		appHandlers.ProductionHandler.RegisterRoutes(api, productionAuth)
		appHandlers.AdminHandler.RegisterRoutes(api, adminAuth)
		appHandlers.HomeHandler.RegisterRoutes(api)
	}

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	ginRouter.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})
}
