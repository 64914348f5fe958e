package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a flat filter dimension; the storefront has no hierarchy.
type Category struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// CategoryWithCount extends Category with its product count for filter lists.
type CategoryWithCount struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Products int       `json:"products"`
}

// ToFilterOption converts the row into a filter sidebar option.
func (c CategoryWithCount) ToFilterOption() FilterOption {
	return FilterOption{ID: c.ID.String(), Label: c.Name, Count: c.Products}
}
