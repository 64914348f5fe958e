package order_controller

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Voltline-Commerce/voltline-backend/config"
	"github.com/Voltline-Commerce/voltline-backend/middleware"
	"github.com/Voltline-Commerce/voltline-backend/models"
	"github.com/Voltline-Commerce/voltline-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// detectDevice determines device type from User-Agent string
func detectDevice(userAgent string) string {
	ua := strings.ToLower(userAgent)

	if strings.Contains(ua, "mobile") ||
		strings.Contains(ua, "android") ||
		strings.Contains(ua, "iphone") ||
		strings.Contains(ua, "ipod") {
		return "mobile"
	}

	if strings.Contains(ua, "ipad") ||
		strings.Contains(ua, "tablet") ||
		strings.Contains(ua, "kindle") {
		return "tablet"
	}

	return "desktop"
}

// Namespaces the per-year advisory lock keys below away from any other
// advisory lock users of the same database.
const orderNumberLockSpace = 7401

func formatOrderNumber(year int, seq int64) string {
	return fmt.Sprintf("ORD-%d-%06d", year, seq)
}

// nextOrderNumber allocates a yearly sequential order number like
// ORD-2026-000042. COUNT(*)+1 alone is not safe under READ COMMITTED
// (two concurrent checkouts would read the same count), so allocation
// is serialized with a transaction-scoped advisory lock keyed by year;
// the lock releases on commit or rollback.
func nextOrderNumber(tx *gorm.DB, now time.Time) (string, error) {
	if err := tx.Exec("SELECT pg_advisory_xact_lock(?, ?)", orderNumberLockSpace, now.Year()).Error; err != nil {
		return "", err
	}

	var count int64
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	if err := tx.Model(&models.Order{}).
		Where("created_at >= ?", yearStart).
		Count(&count).Error; err != nil {
		return "", err
	}
	return formatOrderNumber(now.Year(), count+1), nil
}

// CreateOrder godoc
// @Summary Create order from cart (checkout)
// @Description Snapshots the current cart into an order with frozen names and prices, clears the cart lines and logs the event.
// @Tags Storefront - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body models.CreateOrderRequest false "Optional customer notes"
// @Success 201 {object} models.ApiResponse{data=object{order_id=string,order_number=string,total_amount=number}}
// @Failure 400 {object} models.ApiResponse "Cart is empty"
// @Failure 401 {object} models.ApiResponse "Please sign in"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /orders [post]
func CreateOrder(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Please sign in to check out"))
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	deviceType := detectDevice(c.Request.UserAgent())
	now := time.Now().UTC()

	var order models.Order
	err := config.StoreGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lines []models.CartLine
		if err := tx.Preload("Product").
			Where("user_id = ?", userID).
			Order("created_at ASC").
			Find(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return gorm.ErrRecordNotFound
		}

		orderNumber, err := nextOrderNumber(tx, now)
		if err != nil {
			return err
		}

		subtotal := models.CartTotalPrice(lines)
		order = models.Order{
			UserID:        userID,
			OrderNumber:   orderNumber,
			Subtotal:      subtotal,
			TotalAmount:   subtotal,
			Status:        models.OrderStatusPending,
			DeviceType:    deviceType,
			CustomerNotes: req.CustomerNotes,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Freeze name and price at order time
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			if line.Product == nil {
				continue
			}
			items = append(items, models.OrderItem{
				OrderID:     order.ID,
				UserID:      userID,
				ProductID:   line.ProductID,
				ProductName: line.Product.Name,
				Price:       line.Product.Price,
				Quantity:    line.Quantity,
				Subtotal:    line.Product.Price * float64(line.Quantity),
			})
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		// Checkout empties the cart
		return tx.Where("user_id = ?", userID).Delete(&models.CartLine{}).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart is empty"))
			return
		}
		log.Printf("[store.order-create] ERROR checkout failed user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create order"))
		return
	}

	services.LogAction(userID, models.ActionPlacedOrder, nil, &order.ID, map[string]any{
		"order_number": order.OrderNumber,
		"total_amount": order.TotalAmount,
		"device_type":  deviceType,
	})

	log.Printf("[store.order-create] success user=%s order=%s", userID, order.OrderNumber)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order created successfully", gin.H{
		"order_id":     order.ID.String(),
		"order_number": order.OrderNumber,
		"total_amount": order.TotalAmount,
	}))
}
