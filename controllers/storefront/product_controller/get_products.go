package product_controller

import (
	"log"
	"net/http"

	"github.com/Voltline-Commerce/voltline-backend/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products with filters
// @Description Retrieve available products with optional search, category, brand, price range and sorting. All filters are conjunctive; sort is stable for equal keys.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search query (name or description, contains, case-insensitive)"
// @Param category query string false "Category ID (empty = all)"
// @Param brand query string false "Brand ID (empty = all)"
// @Param minPrice query number false "Minimum price (inclusive)" default(0)
// @Param maxPrice query number false "Maximum price (inclusive)" default(50000)
// @Param sortBy query string false "Sort key (newest | price-low | price-high | name)" default(newest)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	page, limit := parsePagination(c)

	criteria := models.ParseFilterCriteria(
		c.Query("q"),
		c.Query("category"),
		c.Query("brand"),
		c.Query("minPrice"),
		c.Query("maxPrice"),
		c.DefaultQuery("sortBy", models.SortNewest),
	)

	products, err := fetchFilteredProducts(criteria)
	if err != nil {
		log.Printf("[store.products] ERROR fetch failed criteria=%+v err=%v", criteria, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	sortProducts(products, criteria.SortBy)

	totalCount := len(products)
	totalPages := (totalCount + limit - 1) / limit

	pageProducts := pageSlice(products, page, limit)
	responses := make([]models.StorefrontProductResponse, 0, len(pageProducts))
	for i := range pageProducts {
		responses = append(responses, pageProducts[i].ToStorefrontResponse())
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		responses,
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      totalCount,
			TotalPages: totalPages,
		},
	))
}
