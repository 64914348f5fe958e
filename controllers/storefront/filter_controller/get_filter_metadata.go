package filter_controller

import (
	"log"
	"net/http"

	"github.com/Voltline-Commerce/voltline-backend/cache"
	"github.com/Voltline-Commerce/voltline-backend/config"
	"github.com/Voltline-Commerce/voltline-backend/models"
	"github.com/gin-gonic/gin"
)

// GetFilterMetadata godoc
// @Summary Get filter sidebar metadata
// @Description Returns categories and brands with product counts, the catalog price range and availability counts, in one payload. Served from a short in-process cache.
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	if meta, ok := cache.GetFilterMetadata(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", meta))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	meta := models.FilterMetadata{
		Categories: make([]models.FilterOption, 0),
		Brands:     make([]models.FilterOption, 0),
	}

	// Categories with counts of available products
	var categoryRows []models.CategoryWithCount
	if err := config.StoreGorm.WithContext(ctx).Raw(`
		SELECT c.id AS id, c.name AS name, COUNT(p.id) AS products
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id AND p.available = TRUE
		GROUP BY c.id, c.name
		ORDER BY c.name
	`).Scan(&categoryRows).Error; err != nil {
		log.Printf("[store.filters] ERROR category counts err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}
	for _, row := range categoryRows {
		meta.Categories = append(meta.Categories, row.ToFilterOption())
	}

	// Brands with counts
	var brandRows []models.BrandWithCount
	if err := config.StoreGorm.WithContext(ctx).Raw(`
		SELECT b.id AS id, b.name AS name, COUNT(p.id) AS products
		FROM brands b
		LEFT JOIN products p ON p.brand_id = b.id AND p.available = TRUE
		GROUP BY b.id, b.name
		ORDER BY b.name
	`).Scan(&brandRows).Error; err != nil {
		log.Printf("[store.filters] ERROR brand counts err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}
	for _, row := range brandRows {
		meta.Brands = append(meta.Brands, row.ToFilterOption())
	}

	// Price range over available products
	var priceRange models.PriceRange
	if err := config.StoreGorm.WithContext(ctx).Raw(`
		SELECT COALESCE(MIN(price), 0) AS min, COALESCE(MAX(price), 0) AS max
		FROM products
		WHERE available = TRUE
	`).Scan(&priceRange).Error; err != nil {
		log.Printf("[store.filters] ERROR price range err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}
	meta.PriceRange = priceRange

	// Availability counts
	var availability models.AvailabilityCount
	if err := config.StoreGorm.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE stock_quantity > 0) AS in_stock,
			COUNT(*) FILTER (WHERE stock_quantity = 0) AS out_of_stock
		FROM products
		WHERE available = TRUE
	`).Scan(&availability).Error; err != nil {
		log.Printf("[store.filters] ERROR availability counts err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}
	meta.Availability = availability

	cache.SetFilterMetadata(meta)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", meta))
}
