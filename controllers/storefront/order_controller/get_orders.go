package order_controller

import (
	"log"
	"net/http"

	"github.com/Voltline-Commerce/voltline-backend/config"
	"github.com/Voltline-Commerce/voltline-backend/middleware"
	"github.com/Voltline-Commerce/voltline-backend/models"
	"github.com/gin-gonic/gin"
)

// GetOrders godoc
// @Summary Get the current user's order history
// @Description Returns the user's orders newest first with item counts.
// @Tags Storefront - Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.OrderHistoryResponse}
// @Failure 401 {object} models.ApiResponse "Please sign in"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /orders [get]
func GetOrders(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Please sign in to view your orders"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders := make([]models.OrderHistoryResponse, 0)
	if err := config.StoreGorm.WithContext(ctx).Raw(`
		SELECT o.id, o.order_number, o.status, o.total_amount,
		       COUNT(oi.id) AS item_count, o.created_at
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE o.user_id = ?
		GROUP BY o.id, o.order_number, o.status, o.total_amount, o.created_at
		ORDER BY o.created_at DESC
	`, userID).Scan(&orders).Error; err != nil {
		log.Printf("[store.orders] ERROR fetch failed user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders fetched successfully", orders))
}
