package cart_controller

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

// AddCartItem godoc
// @Summary Add a product to the cart
// @Description Upserts a cart line keyed on (user, product): adding the same product again increments the existing quantity instead of creating a duplicate line. Returns the freshly reloaded cart.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body models.AddToCartRequest true "Product and quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request or product not purchasable"
// @Failure 401 {object} models.ApiResponse "Please sign in"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /cart/items [post]
func AddCartItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Please sign in to add items to your cart"))
		return
	}

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Zero stock blocks the add regardless of the availability flag
	var product models.Product
	if err := config.StoreGorm.WithContext(ctx).
		Where("id = ?", req.ProductID).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[store.cart-add] ERROR product lookup failed product=%s err=%v", req.ProductID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add item"))
		return
	}
	if !product.Purchasable() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, unpurchasableMessage(&product)))
		return
	}

	line := models.CartLine{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}
	err := config.StoreGorm.WithContext(ctx).
		Clauses(cartUpsertClause()).
		Create(&line).Error
	if err != nil {
		log.Printf("[store.cart-add] ERROR upsert failed user=%s product=%s err=%v", userID, req.ProductID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add item"))
		return
	}

	services.LogAction(userID, models.ActionAddedToCart, &req.ProductID, nil, map[string]any{
		"quantity": req.Quantity,
	})

	// Full re-read after the mutation; no partial update of prior state
	lines, err := fetchCartLines(userID)
	if err != nil {
		log.Printf("[store.cart-add] ERROR refetch failed user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Item added to cart",
		models.NewCartResponse(lines),
	))
}
