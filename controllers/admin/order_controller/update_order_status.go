package order_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Voltline-Commerce/voltline-backend/config"
	"github.com/Voltline-Commerce/voltline-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// isValidOrderStatus reports whether status is a known lifecycle state.
func isValidOrderStatus(status string) bool {
	switch status {
	case models.OrderStatusPending, models.OrderStatusCompleted, models.OrderStatusCancelled:
		return true
	}
	return false
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Moves an order to a new lifecycle status (pending | completed | cancelled). Analytics aggregate completed orders, so this is how fulfilled checkouts enter the dashboard numbers.
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID (UUID)"
// @Param payload body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid order ID or status"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	req.Status = strings.TrimSpace(strings.ToLower(req.Status))
	if !isValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Status must be pending, completed or cancelled"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.StoreGorm.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", req.Status)
	if result.Error != nil {
		log.Printf("[admin.order-status] ERROR update failed order=%s err=%v", orderID, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	log.Printf("[admin.order-status] success order=%s status=%s", orderID, req.Status)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order updated successfully", gin.H{
		"order_id": orderID,
		"status":   req.Status,
	}))
}
