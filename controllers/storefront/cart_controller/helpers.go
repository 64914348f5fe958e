package cart_controller

import (
	"time"

	"github.com/Voltline-Commerce/voltline-backend/config"
	"github.com/Voltline-Commerce/voltline-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartUpsertClause is the conflict rule behind add-to-cart: on the
// (user_id, product_id) key, increment the existing line's quantity by
// the incoming one instead of inserting a duplicate.
func cartUpsertClause() clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_lines.quantity + excluded.quantity"),
			"updated_at": time.Now().UTC(),
		}),
	}
}

// unpurchasableMessage explains why a product cannot be added. Zero
// stock is reported as such; a product that has stock but is withdrawn
// from sale gets the neutral availability message.
func unpurchasableMessage(p *models.Product) string {
	if p.StockQuantity == 0 {
		return "Product is out of stock"
	}
	return "Product is not available for purchase"
}

// fetchCartLines reloads the user's entire cart with each product (and
// its category/brand) joined. Every mutation handler calls this after
// the write instead of patching state in place, so the returned cart is
// never stale relative to the last completed mutation.
func fetchCartLines(userID uuid.UUID) ([]models.CartLine, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	lines := make([]models.CartLine, 0)
	err := config.StoreGorm.
		WithContext(ctx).
		Preload("Product").
		Preload("Product.Category").
		Preload("Product.Brand").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}

	return lines, nil
}
