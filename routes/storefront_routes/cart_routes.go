package storefront_routes

import (
	"github.com/Voltline-Commerce/voltline-backend/controllers/storefront/cart_controller"
	"github.com/Voltline-Commerce/voltline-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupCartRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")

	// GET tolerates anonymous shoppers (returns an empty cart),
	// mutations require a signed-in user.
	cart.GET("", middleware.OptionalAuthMiddleware(), cart_controller.GetCart)

	cart.Use(middleware.AuthMiddleware())
	{
		cart.POST("/items", cart_controller.AddCartItem)
		cart.PATCH("/items/:id", cart_controller.UpdateCartItem)
		cart.DELETE("/items/:id", cart_controller.RemoveCartItem)
	}
}
