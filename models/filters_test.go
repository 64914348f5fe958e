package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseFilterCriteria(t *testing.T) {
	t.Run("empty input yields defaults", func(t *testing.T) {
		f := ParseFilterCriteria("", "", "", "", "", "")
		assert.Equal(t, DefaultFilterCriteria(), f)
	})

	t.Run("all fields carried through", func(t *testing.T) {
		f := ParseFilterCriteria("router", "cat-1", "brand-1", "100", "5000", SortPriceLow)

		assert.Equal(t, "router", f.Search)
		assert.Equal(t, "cat-1", f.CategoryID)
		assert.Equal(t, "brand-1", f.BrandID)
		assert.Equal(t, 100.0, f.MinPrice)
		assert.Equal(t, 5000.0, f.MaxPrice)
		assert.Equal(t, SortPriceLow, f.SortBy)
	})

	t.Run("malformed numbers fall back to defaults", func(t *testing.T) {
		f := ParseFilterCriteria("", "", "", "abc", "xyz", "")
		assert.Equal(t, DefaultMinPrice, f.MinPrice)
		assert.Equal(t, DefaultMaxPrice, f.MaxPrice)
	})

	t.Run("negative bounds are rejected", func(t *testing.T) {
		f := ParseFilterCriteria("", "", "", "-50", "-1", "")
		assert.Equal(t, DefaultMinPrice, f.MinPrice)
		assert.Equal(t, DefaultMaxPrice, f.MaxPrice)
	})

	t.Run("inverted range resets both bounds", func(t *testing.T) {
		f := ParseFilterCriteria("", "", "", "5000", "100", "")
		assert.Equal(t, DefaultMinPrice, f.MinPrice)
		assert.Equal(t, DefaultMaxPrice, f.MaxPrice)
	})

	t.Run("unknown sort key falls back to newest", func(t *testing.T) {
		f := ParseFilterCriteria("", "", "", "", "", "cheapest-first")
		assert.Equal(t, SortNewest, f.SortBy)
	})

	t.Run("all sort keys accepted", func(t *testing.T) {
		for _, key := range []string{SortNewest, SortPriceLow, SortPriceHigh, SortName} {
			f := ParseFilterCriteria("", "", "", "", "", key)
			assert.Equal(t, key, f.SortBy)
		}
	})
}

func TestWithCountToFilterOption(t *testing.T) {
	id := uuid.Must(uuid.NewV7())

	t.Run("category row", func(t *testing.T) {
		opt := CategoryWithCount{ID: id, Name: "Networking", Products: 3}.ToFilterOption()
		assert.Equal(t, FilterOption{ID: id.String(), Label: "Networking", Count: 3}, opt)
	})

	t.Run("brand row", func(t *testing.T) {
		opt := BrandWithCount{ID: id, Name: "NetGrid", Products: 2}.ToFilterOption()
		assert.Equal(t, FilterOption{ID: id.String(), Label: "NetGrid", Count: 2}, opt)
	})
}

func TestFilterCriteriaIsIdentity(t *testing.T) {
	t.Run("defaults are identity", func(t *testing.T) {
		assert.True(t, DefaultFilterCriteria().IsIdentity())
	})

	t.Run("sort alone keeps identity", func(t *testing.T) {
		f := DefaultFilterCriteria()
		f.SortBy = SortPriceHigh
		assert.True(t, f.IsIdentity())
	})

	t.Run("any active predicate breaks identity", func(t *testing.T) {
		withSearch := DefaultFilterCriteria()
		withSearch.Search = "router"
		assert.False(t, withSearch.IsIdentity())

		withCategory := DefaultFilterCriteria()
		withCategory.CategoryID = "cat-1"
		assert.False(t, withCategory.IsIdentity())

		withPrice := DefaultFilterCriteria()
		withPrice.MaxPrice = 5000
		assert.False(t, withPrice.IsIdentity())
	})
}
