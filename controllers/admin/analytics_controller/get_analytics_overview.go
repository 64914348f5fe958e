package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Voltline-Commerce/voltline-backend/config"
	"github.com/Voltline-Commerce/voltline-backend/models"
	"github.com/gin-gonic/gin"
)

func growthPercent(current, previous float64) float64 {
	if previous > 0 {
		return (current - previous) / previous * 100
	}
	if current > 0 {
		return 100.0
	}
	return 0.0
}

// GetAnalyticsOverview godoc
// @Summary Get analytics overview
// @Description Returns overview stats: revenue, orders and active customers with month-over-month comparisons, plus total stock units.
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.AnalyticsOverview}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/overview [get]
func GetAnalyticsOverview(c *gin.Context) {
	log.Printf("[admin.analytics-overview] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := monthStart.AddDate(0, -1, 0)

	// ================================
	// Revenue (current vs last month)
	// ================================
	var currentMonthRevenue float64
	if err := config.StoreGorm.WithContext(ctx).
		Model(&models.Order{}).
		Where("status = ? AND created_at >= ?", models.OrderStatusCompleted, monthStart).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&currentMonthRevenue).Error; err != nil {
		log.Printf("[admin.analytics-overview] ERROR current month revenue err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	var lastMonthRevenue float64
	if err := config.StoreGorm.WithContext(ctx).
		Model(&models.Order{}).
		Where("status = ? AND created_at >= ? AND created_at < ?", models.OrderStatusCompleted, lastMonthStart, monthStart).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&lastMonthRevenue).Error; err != nil {
		log.Printf("[admin.analytics-overview] ERROR last month revenue err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	// ================================
	// Orders (current vs last month)
	// ================================
	var currentMonthOrders int64
	if err := config.StoreGorm.WithContext(ctx).
		Model(&models.Order{}).
		Where("status = ? AND created_at >= ?", models.OrderStatusCompleted, monthStart).
		Count(&currentMonthOrders).Error; err != nil {
		log.Printf("[admin.analytics-overview] ERROR current month orders err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	var lastMonthOrders int64
	if err := config.StoreGorm.WithContext(ctx).
		Model(&models.Order{}).
		Where("status = ? AND created_at >= ? AND created_at < ?", models.OrderStatusCompleted, lastMonthStart, monthStart).
		Count(&lastMonthOrders).Error; err != nil {
		log.Printf("[admin.analytics-overview] ERROR last month orders err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	// ================================
	// Stock units across the catalog
	// ================================
	var totalStockUnits int64
	if err := config.StoreGorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("available = TRUE").
		Select("COALESCE(SUM(stock_quantity), 0)").
		Scan(&totalStockUnits).Error; err != nil {
		log.Printf("[admin.analytics-overview] ERROR stock units err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	// ================================
	// Active customers (order in last 90 days, vs previous window)
	// ================================
	ninetyDaysAgo := now.AddDate(0, 0, -90)
	oneEightyDaysAgo := now.AddDate(0, 0, -180)

	var activeCustomers int64
	if err := config.StoreGorm.WithContext(ctx).
		Model(&models.Order{}).
		Where("created_at >= ?", ninetyDaysAgo).
		Distinct("user_id").
		Count(&activeCustomers).Error; err != nil {
		log.Printf("[admin.analytics-overview] ERROR active customers err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	var previousActiveCustomers int64
	if err := config.StoreGorm.WithContext(ctx).
		Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ?", oneEightyDaysAgo, ninetyDaysAgo).
		Distinct("user_id").
		Count(&previousActiveCustomers).Error; err != nil {
		log.Printf("[admin.analytics-overview] ERROR previous active customers err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	overview := models.AnalyticsOverview{
		TotalRevenue:                 currentMonthRevenue,
		RevenueGrowthPercent:         growthPercent(currentMonthRevenue, lastMonthRevenue),
		TotalOrders:                  int(currentMonthOrders),
		OrdersGrowthPercent:          growthPercent(float64(currentMonthOrders), float64(lastMonthOrders)),
		TotalStockUnits:              int(totalStockUnits),
		ActiveCustomers:              int(activeCustomers),
		ActiveCustomersGrowthPercent: growthPercent(float64(activeCustomers), float64(previousActiveCustomers)),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Analytics overview fetched successfully", overview))
}
