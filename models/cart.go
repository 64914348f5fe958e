package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartLine pairs a user and a product with a positive quantity. The
// composite unique index backs the add-to-cart upsert: adding the same
// product again increments the existing line instead of duplicating it.
type CartLine struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	Quantity  int       `json:"quantity" gorm:"not null;check:quantity > 0"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID;references:ID"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (cl *CartLine) BeforeCreate(tx *gorm.DB) error {
	if cl.ID == uuid.Nil {
		cl.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (CartLine) TableName() string {
	return "cart_lines"
}

// ═══════════════════════════════════════════════════════════
// Derived totals
// ═══════════════════════════════════════════════════════════

// CartTotalPrice sums product price × quantity over all lines. Lines
// whose product failed to load contribute nothing.
func CartTotalPrice(lines []CartLine) float64 {
	var total float64
	for _, line := range lines {
		if line.Product != nil {
			total += line.Product.Price * float64(line.Quantity)
		}
	}
	return total
}

// CartTotalItems sums quantities over all lines.
func CartTotalItems(lines []CartLine) int {
	var total int
	for _, line := range lines {
		total += line.Quantity
	}
	return total
}

// ═══════════════════════════════════════════════════════════
// Request/Response Models
// ═══════════════════════════════════════════════════════════

// AddToCartRequest adds a product to the current user's cart.
type AddToCartRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"omitempty,min=1"`
}

// UpdateCartQuantityRequest replaces a line's quantity.
type UpdateCartQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartLineResponse is one line joined with its product card data.
type CartLineResponse struct {
	ID       uuid.UUID                 `json:"id"`
	Quantity int                       `json:"quantity"`
	Subtotal float64                   `json:"subtotal"`
	Product  StorefrontProductResponse `json:"product"`
	AddedAt  time.Time                 `json:"added_at"`
}

// CartResponse is the full cart with derived aggregates, rebuilt from a
// fresh read after every mutation.
type CartResponse struct {
	Lines      []CartLineResponse `json:"lines"`
	TotalPrice float64            `json:"total_price"`
	TotalItems int                `json:"total_items"`
}

// NewCartResponse converts fetched lines into the response payload.
func NewCartResponse(lines []CartLine) CartResponse {
	resp := CartResponse{
		Lines:      make([]CartLineResponse, 0, len(lines)),
		TotalPrice: CartTotalPrice(lines),
		TotalItems: CartTotalItems(lines),
	}
	for _, line := range lines {
		lr := CartLineResponse{
			ID:       line.ID,
			Quantity: line.Quantity,
			AddedAt:  line.CreatedAt,
		}
		if line.Product != nil {
			lr.Subtotal = line.Product.Price * float64(line.Quantity)
			lr.Product = line.Product.ToStorefrontResponse()
		}
		resp.Lines = append(resp.Lines, lr)
	}
	return resp
}
