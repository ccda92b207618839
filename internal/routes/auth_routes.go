package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fleet_inventory/internal/auth"
	"github.com/fleet_inventory/internal/handlers"
)

// SetupAuthRoutes registers the authentication routes under /api/v1/auth.
func SetupAuthRoutes(router *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	apiV1 := router.Group("/v1")
	{
		publicAuthGroup := apiV1.Group("/auth")
		{
			publicAuthGroup.POST("/login", authHandler.Login)
		}

		protectedAuthGroup := apiV1.Group("/auth")
		protectedAuthGroup.Use(auth.JWTMiddleware())
		{
			protectedAuthGroup.POST("/logout", authHandler.Logout)
			protectedAuthGroup.GET("/profile", authHandler.Profile)
		}
	}
}
