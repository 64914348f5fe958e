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

// RemoveCartItem godoc
// @Summary Remove a cart line
// @Description Deletes one line from the current user's cart, then returns the freshly reloaded cart.
// @Tags Storefront - Cart
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart line ID"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse "Invalid cart line ID"
// @Failure 401 {object} models.ApiResponse "Please sign in"
// @Failure 404 {object} models.ApiResponse "Cart line not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /cart/items/{id} [delete]
func RemoveCartItem(c *gin.Context) {
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

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.StoreGorm.WithContext(ctx).
		Where("id = ? AND user_id = ?", lineID, userID).
		Delete(&models.CartLine{})
	if result.Error != nil {
		log.Printf("[store.cart-remove] ERROR delete failed line=%s user=%s err=%v", lineID, userID, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart line not found"))
		return
	}

	services.LogAction(userID, models.ActionRemovedCart, nil, nil, map[string]any{
		"line_id": lineID.String(),
	})

	lines, err := fetchCartLines(userID)
	if err != nil {
		log.Printf("[store.cart-remove] ERROR refetch failed user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Item removed from cart",
		models.NewCartResponse(lines),
	))
}
