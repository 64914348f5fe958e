package storefront_routes

import (
	"github.com/Voltline-Commerce/voltline-backend/controllers/storefront/category_controller"
	"github.com/Voltline-Commerce/voltline-backend/controllers/storefront/filter_controller"
	"github.com/Voltline-Commerce/voltline-backend/controllers/storefront/product_controller"
	"github.com/Voltline-Commerce/voltline-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", product_controller.GetStorefrontProducts) // List with filters

		// Optional auth so product views land in the action log for signed-in shoppers
		products.GET("/:slug", middleware.OptionalAuthMiddleware(), product_controller.GetStorefrontProductBySlug)
	}

	// Category and brand routes
	store.GET("/categories", category_controller.GetCategories)
	store.GET("/brands", category_controller.GetBrands)

	store.GET("/filters/metadata", filter_controller.GetFilterMetadata)
}
