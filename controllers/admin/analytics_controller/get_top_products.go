package analytics_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Voltline-Commerce/voltline-backend/config"
	"github.com/Voltline-Commerce/voltline-backend/models"
	"github.com/gin-gonic/gin"
)

// GetTopProducts godoc
// @Summary Get top products
// @Description Returns the best-selling products by completed-order revenue, with each product's share of total revenue.
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of products to return (default 5, max 20)"
// @Success 200 {object} models.ApiResponse{data=[]models.TopProduct}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/top-products [get]
func GetTopProducts(c *gin.Context) {
	log.Printf("[admin.top-products] start")

	limit := 5
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > 20 {
		limit = 20
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var totalRevenue float64
	if err := config.StoreGorm.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(oi.subtotal), 0)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status = 'completed'
	`).Scan(&totalRevenue).Error; err != nil {
		log.Printf("[admin.top-products] ERROR total revenue err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch top products"))
		return
	}

	var products []models.TopProduct
	if err := config.StoreGorm.WithContext(ctx).Raw(`
		SELECT oi.product_id,
		       oi.product_name,
		       COUNT(DISTINCT oi.order_id) AS order_count,
		       COALESCE(SUM(oi.quantity), 0) AS sales_count,
		       COALESCE(SUM(oi.subtotal), 0) AS revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status = 'completed'
		GROUP BY oi.product_id, oi.product_name
		ORDER BY revenue DESC
		LIMIT ?
	`, limit).Scan(&products).Error; err != nil {
		log.Printf("[admin.top-products] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch top products"))
		return
	}

	for i := range products {
		if totalRevenue > 0 {
			products[i].RevenuePercent = products[i].Revenue / totalRevenue * 100
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Top products fetched successfully", products))
}
