package models

import "strconv"

// Default price bounds; out-of-range input clamps back to these.
const (
	DefaultMinPrice = 0.0
	DefaultMaxPrice = 50000.0
)

// Sort keys accepted by the storefront listing.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortName      = "name"
)

// FilterCriteria is the composite catalog filter. All predicates are
// conjunctive; an empty category/brand id is a wildcard.
type FilterCriteria struct {
	Search     string  `json:"search"`
	CategoryID string  `json:"category_id"`
	BrandID    string  `json:"brand_id"`
	MinPrice   float64 `json:"min_price"`
	MaxPrice   float64 `json:"max_price"`
	SortBy     string  `json:"sort_by"`
}

// DefaultFilterCriteria returns the criteria the clear action resets to.
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		Search:     "",
		CategoryID: "",
		BrandID:    "",
		MinPrice:   DefaultMinPrice,
		MaxPrice:   DefaultMaxPrice,
		SortBy:     SortNewest,
	}
}

// ParseFilterCriteria builds criteria from raw query values, clamping
// malformed or out-of-range numeric bounds to the defaults instead of
// rejecting the request.
func ParseFilterCriteria(search, categoryID, brandID, minPrice, maxPrice, sortBy string) FilterCriteria {
	f := DefaultFilterCriteria()
	f.Search = search
	f.CategoryID = categoryID
	f.BrandID = brandID

	if minPrice != "" {
		if v, err := strconv.ParseFloat(minPrice, 64); err == nil && v >= 0 {
			f.MinPrice = v
		}
	}
	if maxPrice != "" {
		if v, err := strconv.ParseFloat(maxPrice, 64); err == nil && v >= 0 {
			f.MaxPrice = v
		}
	}
	if f.MinPrice > f.MaxPrice {
		f.MinPrice = DefaultMinPrice
		f.MaxPrice = DefaultMaxPrice
	}

	switch sortBy {
	case SortNewest, SortPriceLow, SortPriceHigh, SortName:
		f.SortBy = sortBy
	}

	return f
}

// IsIdentity reports whether the criteria filter nothing out, i.e. the
// result must equal the full available catalog.
func (f FilterCriteria) IsIdentity() bool {
	return f.Search == "" &&
		f.CategoryID == "" &&
		f.BrandID == "" &&
		f.MinPrice == DefaultMinPrice &&
		f.MaxPrice == DefaultMaxPrice
}

// ═══════════════════════════════════════════════════════════
// Filter Metadata (sidebar data)
// ═══════════════════════════════════════════════════════════

// FilterMetadata is everything the filter sidebar needs in one payload.
type FilterMetadata struct {
	Categories   []FilterOption    `json:"categories"`
	Brands       []FilterOption    `json:"brands"`
	PriceRange   PriceRange        `json:"price_range"`
	Availability AvailabilityCount `json:"availability"`
}

// FilterOption represents a single filter option
type FilterOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// PriceRange represents min and max price across the catalog
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AvailabilityCount represents in/out of stock product counts
type AvailabilityCount struct {
	InStock    int `json:"in_stock"`
	OutOfStock int `json:"out_of_stock"`
}
