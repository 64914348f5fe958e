package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Well-known action names written to the action log.
const (
	ActionSignIn        = "signed_in"
	ActionSignUp        = "signed_up"
	ActionAddedToCart   = "added_to_cart"
	ActionUpdatedCart   = "updated_cart_quantity"
	ActionRemovedCart   = "removed_from_cart"
	ActionPlacedOrder   = "placed_order"
	ActionViewedProduct = "viewed_product"
)

// ActionLog is a best-effort storefront event record. Writes are
// fire-and-forget; a failed insert never fails the request that caused it.
type ActionLog struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index:idx_action_user_date,sort:desc"`
	Action    string         `json:"action" gorm:"not null;index"`
	ProductID *uuid.UUID     `json:"product_id,omitempty" gorm:"type:uuid;index"`
	OrderID   *uuid.UUID     `json:"order_id,omitempty" gorm:"type:uuid;index"`
	Details   datatypes.JSON `json:"details,omitempty" gorm:"type:jsonb"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime;index:idx_action_user_date,sort:desc"`
}

// BeforeCreate hook - auto-generate UUID v7
func (al *ActionLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (ActionLog) TableName() string {
	return "action_logs"
}
