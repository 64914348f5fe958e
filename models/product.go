package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LowStockThreshold is the quantity under which a product card shows a low-stock badge.
const LowStockThreshold = 5

// Stock badge values surfaced to the storefront.
const (
	BadgeOutOfStock = "out_of_stock"
	BadgeLowStock   = "low_stock"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// ImageRef is one product image; Order controls gallery position.
type ImageRef struct {
	URL   string `json:"url" binding:"required"`
	Order *int   `json:"order,omitempty"`
}

// Create custom types for slices (so we can add methods)
type (
	ImageList   []ImageRef
	FeatureList []string
)

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID            uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string      `json:"name" gorm:"not null;index"`
	Slug          string      `json:"slug" gorm:"uniqueIndex;not null"`
	Description   string      `json:"description" gorm:"not null"`
	Price         float64     `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	ComparePrice  *float64    `json:"compare_price,omitempty" gorm:"type:numeric(12,2)"`
	StockQuantity int         `json:"stock_quantity" gorm:"not null;default:0;check:stock_quantity >= 0"`
	Available     bool        `json:"available" gorm:"not null;default:true;index"`
	Images        ImageList   `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	Features      FeatureList `json:"features" gorm:"type:jsonb;not null;default:'[]'"`
	CategoryID    *uuid.UUID  `json:"category_id,omitempty" gorm:"type:uuid;index"`
	Category      *Category   `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	BrandID       *uuid.UUID  `json:"brand_id,omitempty" gorm:"type:uuid;index"`
	Brand         *Brand      `json:"brand,omitempty" gorm:"foreignKey:BrandID;references:ID"`
	CreatedAt     time.Time   `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// Purchasable reports whether the product can be added to a cart.
// Zero stock always wins over the availability flag.
func (p *Product) Purchasable() bool {
	return p.Available && p.StockQuantity > 0
}

// DiscountPercent returns the rounded discount label percentage.
// Only meaningful when compare_price is set and greater than price.
func (p *Product) DiscountPercent() (int, bool) {
	if p.ComparePrice == nil || *p.ComparePrice <= p.Price {
		return 0, false
	}
	pct := math.Round((*p.ComparePrice - p.Price) / *p.ComparePrice * 100)
	return int(pct), true
}

// StockBadge returns the badge shown on product cards, or "" for none.
func (p *Product) StockBadge() string {
	switch {
	case p.StockQuantity == 0:
		return BadgeOutOfStock
	case p.StockQuantity < LowStockThreshold:
		return BadgeLowStock
	default:
		return ""
	}
}

// PrimaryImage returns the URL of the first image by gallery order.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	best := p.Images[0]
	for _, img := range p.Images[1:] {
		if img.Order != nil && (best.Order == nil || *img.Order < *best.Order) {
			best = img
		}
	}
	return best.URL
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// StorefrontProductResponse is the thin card payload for listing pages.
type StorefrontProductResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Price           float64  `json:"price"`
	ComparePrice    *float64 `json:"compare_price,omitempty"`
	DiscountPercent *int     `json:"discount_percent,omitempty"`
	StockBadge      string   `json:"stock_badge,omitempty"`
	Purchasable     bool     `json:"purchasable"`
	Image           string   `json:"image,omitempty"`
	CategoryName    string   `json:"category_name,omitempty"`
	BrandName       string   `json:"brand_name,omitempty"`
}

// ProductDetailResponse is the full payload for a product page.
type ProductDetailResponse struct {
	StorefrontProductResponse
	Description   string     `json:"description"`
	StockQuantity int        `json:"stock_quantity"`
	Images        []ImageRef `json:"images"`
	Features      []string   `json:"features"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ToStorefrontResponse builds the card payload with derived display fields.
func (p *Product) ToStorefrontResponse() StorefrontProductResponse {
	resp := StorefrontProductResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Slug:         p.Slug,
		Price:        p.Price,
		ComparePrice: p.ComparePrice,
		StockBadge:   p.StockBadge(),
		Purchasable:  p.Purchasable(),
		Image:        p.PrimaryImage(),
	}
	if pct, ok := p.DiscountPercent(); ok {
		resp.DiscountPercent = &pct
	}
	if p.Category != nil {
		resp.CategoryName = p.Category.Name
	}
	if p.Brand != nil {
		resp.BrandName = p.Brand.Name
	}
	return resp
}

// ToDetailResponse builds the product page payload.
func (p *Product) ToDetailResponse() ProductDetailResponse {
	return ProductDetailResponse{
		StorefrontProductResponse: p.ToStorefrontResponse(),
		Description:               p.Description,
		StockQuantity:             p.StockQuantity,
		Images:                    p.Images,
		Features:                  p.Features,
		CreatedAt:                 p.CreatedAt,
	}
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom slice types)
// ═══════════════════════════════════════════════════════════

// ImageList methods
func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = make(ImageList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ImageList")
	}
	return json.Unmarshal(bytes, l)
}

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]ImageRef{})
	}
	return json.Marshal(l)
}

// FeatureList methods
func (f *FeatureList) Scan(value interface{}) error {
	if value == nil {
		*f = make(FeatureList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan FeatureList")
	}
	return json.Unmarshal(bytes, f)
}

func (f FeatureList) Value() (driver.Value, error) {
	if f == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(f)
}
