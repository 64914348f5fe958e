package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Voltline-Commerce/voltline-backend/config"
	"github.com/Voltline-Commerce/voltline-backend/models"
	"github.com/gin-gonic/gin"
)

// GetMonthlyRevenue godoc
// @Summary Get monthly revenue
// @Description Returns completed-order revenue for each of the last 12 months. Months without orders are zero-filled.
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.MonthlyRevenueData}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/monthly-revenue [get]
func GetMonthlyRevenue(c *gin.Context) {
	log.Printf("[admin.monthly-revenue] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	now := time.Now()
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -11, 0)

	var rows []struct {
		Month   time.Time `gorm:"column:month"`
		Revenue float64   `gorm:"column:revenue"`
	}

	if err := config.StoreGorm.WithContext(ctx).Raw(`
		SELECT date_trunc('month', created_at) AS month,
		       COALESCE(SUM(total_amount), 0) AS revenue
		FROM orders
		WHERE status = 'completed' AND created_at >= ?
		GROUP BY date_trunc('month', created_at)
		ORDER BY month
	`, windowStart).Scan(&rows).Error; err != nil {
		log.Printf("[admin.monthly-revenue] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch monthly revenue"))
		return
	}

	revenueByMonth := make(map[string]float64, len(rows))
	for _, row := range rows {
		revenueByMonth[row.Month.Format("2006-01")] = row.Revenue
	}

	// Walk the full window so months without orders still appear.
	result := make([]models.MonthlyRevenueData, 0, 12)
	for i := 0; i < 12; i++ {
		month := windowStart.AddDate(0, i, 0)
		result = append(result, models.MonthlyRevenueData{
			Month:       month.Format("Jan"),
			MonthNumber: int(month.Month()),
			Revenue:     revenueByMonth[month.Format("2006-01")],
		})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Monthly revenue fetched successfully", result))
}
