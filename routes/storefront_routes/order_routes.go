package storefront_routes

import (
	"github.com/Voltline-Commerce/voltline-backend/controllers/storefront/order_controller"
	"github.com/Voltline-Commerce/voltline-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.POST("", order_controller.CreateOrder)
		orders.GET("", order_controller.GetOrders)
		orders.GET("/:id", order_controller.GetOrderDetails)
	}
}
