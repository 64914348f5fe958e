package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order lifecycle. Checkout creates orders as pending; analytics only
// count completed ones.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order represents a checkout of the user's cart at a point in time.
type Order struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	OrderNumber   string    `json:"order_number" gorm:"uniqueIndex;not null"`
	Subtotal      float64   `json:"subtotal" gorm:"type:numeric(12,2);not null"`
	TotalAmount   float64   `json:"total_amount" gorm:"type:numeric(12,2);not null"`
	Status        string    `json:"status" gorm:"not null;default:'pending';index"`
	DeviceType    string    `json:"device_type" gorm:"type:varchar(20)"`
	CustomerNotes *string   `json:"customer_notes,omitempty" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is one product line frozen at order time (name and price are
// snapshots, not references into the live catalog).
type OrderItem struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `json:"product_id" gorm:"type:uuid;not null"`
	ProductName string    `json:"product_name" gorm:"not null"`
	Price       float64   `json:"price" gorm:"type:numeric(12,2);not null"`
	Quantity    int       `json:"quantity" gorm:"not null;check:quantity > 0"`
	Subtotal    float64   `json:"subtotal" gorm:"type:numeric(12,2);not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (OrderItem) TableName() string {
	return "order_items"
}

// ═══════════════════════════════════════════════════════════
// Request/Response Models
// ═══════════════════════════════════════════════════════════

// CreateOrderRequest for checkout; the order is built from the cart.
type CreateOrderRequest struct {
	CustomerNotes *string `json:"customer_notes,omitempty"`
}

// UpdateOrderStatusRequest moves an order to a new lifecycle status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderHistoryResponse for list view
type OrderHistoryResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// OrderWithItems combines order and its items
type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items" gorm:"-"`
}
