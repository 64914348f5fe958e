// @title Voltline Store API
// @version 1.0
// @description Voltline Storefront Backend API Documentation
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Voltline-Commerce/voltline-backend/config"
	"github.com/Voltline-Commerce/voltline-backend/middleware"
	"github.com/Voltline-Commerce/voltline-backend/routes/admin_routes"
	"github.com/Voltline-Commerce/voltline-backend/routes/storefront_routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()

	// Redis connection
	config.ConnectRedis()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	// ✅ Google OAuth is optional; email/password auth works without it
	googleEnabled := config.InitGoogleOAuth()

	corsCfg := cors.Config{
		AllowOrigins:     []string{config.GetFrontendURL(), "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Public storefront (no rate limiter)
	storefront_routes.SetupAuthRoutes(api)
	storefront_routes.SetupStorefrontRoutes(api)
	storefront_routes.SetupCartRoutes(api)
	storefront_routes.SetupOrderRoutes(api)

	if googleEnabled {
		storefront_routes.SetupGoogleAuthRoutes(api)
		log.Println("✅ Google OAuth routes registered")
	}

	// Admin routes (at /api/v1/admin prefix)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware())
	adminGroup.Use(middleware.AdminAuthMiddleware())
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))

	admin_routes.SetupAnalyticsRoutes(adminGroup)
	admin_routes.SetupOrderRoutes(adminGroup)
	log.Println("✅ Admin routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	router.Run(":" + port)
}
