package admin_routes

import (
	"github.com/Voltline-Commerce/voltline-backend/controllers/admin/order_controller"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")

	orders.PATCH("/:id/status", order_controller.UpdateOrderStatus)
}
