package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Brand is a flat filter dimension, same shape as Category.
type Brand struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Brand) TableName() string {
	return "brands"
}

// BrandWithCount extends Brand with its product count for filter lists.
type BrandWithCount struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Products int       `json:"products"`
}

// ToFilterOption converts the row into a filter sidebar option.
func (b BrandWithCount) ToFilterOption() FilterOption {
	return FilterOption{ID: b.ID.String(), Label: b.Name, Count: b.Products}
}
