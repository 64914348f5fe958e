package storefront_routes

import (
	"github.com/Voltline-Commerce/voltline-backend/controllers/storefront/auth_controller"
	"github.com/Voltline-Commerce/voltline-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", auth_controller.SignUp)
		auth.POST("/signin", auth_controller.SignIn)
		auth.POST("/signout", auth_controller.SignOut)

		auth.GET("/me", middleware.AuthMiddleware(), auth_controller.GetMe)
	}
}

// SetupGoogleAuthRoutes registers the OAuth routes. Only called when Google
// credentials are configured.
func SetupGoogleAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.GET("/google", auth_controller.GoogleLogin)
		auth.GET("/google/callback", auth_controller.GoogleCallback)
	}
}
