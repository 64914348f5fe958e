package cart_controller

import (
	"log"
	"net/http"

	"github.com/Voltline-Commerce/voltline-backend/middleware"
	"github.com/Voltline-Commerce/voltline-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCart godoc
// @Summary Get the current user's cart
// @Description Returns all cart lines joined with their products plus derived totals. Anonymous users get an empty cart, not an error.
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /cart [get]
func GetCart(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		// No session: an empty cart is a valid answer, distinct from a
		// failed fetch.
		c.JSON(http.StatusOK, models.SuccessResponse(
			c,
			"Cart fetched successfully",
			models.NewCartResponse(nil),
		))
		return
	}

	lines, err := fetchCartLines(userID)
	if err != nil {
		log.Printf("[store.cart] ERROR fetch failed user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Cart fetched successfully",
		models.NewCartResponse(lines),
	))
}
