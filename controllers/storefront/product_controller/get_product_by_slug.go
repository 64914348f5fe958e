package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Voltline-Commerce/voltline-backend/config"
	"github.com/Voltline-Commerce/voltline-backend/middleware"
	"github.com/Voltline-Commerce/voltline-backend/models"
	"github.com/Voltline-Commerce/voltline-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetStorefrontProductBySlug godoc
// @Summary Get a single product by slug
// @Description Retrieve one available product with category, brand, images and features. Logs a best-effort view event for signed-in users.
// @Tags Storefront - Products
// @Produce json
// @Param slug path string true "Product URL slug"
// @Success 200 {object} models.ApiResponse{data=models.ProductDetailResponse}
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products/{slug} [get]
func GetStorefrontProductBySlug(c *gin.Context) {
	slug := c.Param("slug")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	err := config.StoreGorm.
		WithContext(ctx).
		Preload("Category").
		Preload("Brand").
		Where("slug = ? AND available = TRUE", slug).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[store.product] ERROR fetch failed slug=%s err=%v", slug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	// View tracking is best-effort and only for known users
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		services.LogAction(userID, models.ActionViewedProduct, &product.ID, nil, map[string]any{
			"slug": product.Slug,
		})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Product fetched successfully",
		product.ToDetailResponse(),
	))
}
