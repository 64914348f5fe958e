package cart_controller

import (
	"log"
	"net/http"

	"github.com/Voltline-Commerce/voltline-backend/config"
	"github.com/Voltline-Commerce/voltline-backend/middleware"
	"github.com/Voltline-Commerce/voltline-backend/models"
	"github.com/Voltline-Commerce/voltline-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UpdateCartItem godoc
// @Summary Update a cart line's quantity
// @Description Replaces the quantity of one line, then returns the freshly reloaded cart. The line must belong to the current user.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart line ID"
// @Param quantity body models.UpdateCartQuantityRequest true "New quantity (>= 1)"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Please sign in"
// @Failure 404 {object} models.ApiResponse "Cart line not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /cart/items/{id} [patch]
func UpdateCartItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Please sign in to update your cart"))
		return
	}

	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid cart line ID"))
		return
	}

	var req models.UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Quantity must be at least 1"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Scoped to the user: a foreign line id behaves like a missing one
	result := config.StoreGorm.WithContext(ctx).
		Model(&models.CartLine{}).
		Where("id = ? AND user_id = ?", lineID, userID).
		Update("quantity", req.Quantity)
	if result.Error != nil {
		log.Printf("[store.cart-update] ERROR update failed line=%s user=%s err=%v", lineID, userID, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart line not found"))
		return
	}

	services.LogAction(userID, models.ActionUpdatedCart, nil, nil, map[string]any{
		"line_id":  lineID.String(),
		"quantity": req.Quantity,
	})

	lines, err := fetchCartLines(userID)
	if err != nil {
		log.Printf("[store.cart-update] ERROR refetch failed user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Cart updated",
		models.NewCartResponse(lines),
	))
}
