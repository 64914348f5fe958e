package category_controller

import (
	"log"
	"net/http"

	"github.com/Voltline-Commerce/voltline-backend/config"
	"github.com/Voltline-Commerce/voltline-backend/models"
	"github.com/gin-gonic/gin"
)

// GetBrands godoc
// @Summary Get all brands
// @Description Returns every brand as a flat list for filter display.
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Brand}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/brands [get]
func GetBrands(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	brands := make([]models.Brand, 0)
	if err := config.StoreGorm.WithContext(ctx).
		Order("name").
		Find(&brands).Error; err != nil {
		log.Printf("[store.brands] ERROR fetch failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch brands"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Brands fetched successfully", brands))
}
