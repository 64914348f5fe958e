package product_controller

import (
	"testing"

	"github.com/Voltline-Commerce/voltline-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFilterConditions(t *testing.T) {
	t.Run("identity criteria only exclude unavailable products", func(t *testing.T) {
		conditions, args := buildFilterConditions(models.DefaultFilterCriteria())

		assert.Equal(t, []string{"available = TRUE"}, conditions)
		assert.Empty(t, args)
	})

	t.Run("search matches name or description", func(t *testing.T) {
		f := models.DefaultFilterCriteria()
		f.Search = "router"

		conditions, args := buildFilterConditions(f)

		require.Len(t, conditions, 2)
		assert.Equal(t, "(name ILIKE ? OR description ILIKE ?)", conditions[1])
		assert.Equal(t, []interface{}{"%router%", "%router%"}, args)
	})

	t.Run("category and brand are exact matches", func(t *testing.T) {
		f := models.DefaultFilterCriteria()
		f.CategoryID = "cat-1"
		f.BrandID = "brand-1"

		conditions, args := buildFilterConditions(f)

		assert.Contains(t, conditions, "category_id = ?")
		assert.Contains(t, conditions, "brand_id = ?")
		assert.Equal(t, []interface{}{"cat-1", "brand-1"}, args)
	})

	t.Run("price predicate only when bounds moved", func(t *testing.T) {
		f := models.DefaultFilterCriteria()
		f.MaxPrice = 5000

		conditions, args := buildFilterConditions(f)

		require.Len(t, conditions, 2)
		assert.Equal(t, "price >= ? AND price <= ?", conditions[1])
		assert.Equal(t, []interface{}{models.DefaultMinPrice, 5000.0}, args)
	})

	t.Run("all predicates compose conjunctively", func(t *testing.T) {
		f := models.FilterCriteria{
			Search:     "router",
			CategoryID: "cat-1",
			BrandID:    "brand-1",
			MinPrice:   100,
			MaxPrice:   5000,
			SortBy:     models.SortNewest,
		}

		conditions, args := buildFilterConditions(f)

		assert.Len(t, conditions, 5)
		assert.Len(t, args, 6)
	})
}

func TestSortProducts(t *testing.T) {
	byName := func(names ...string) []models.Product {
		products := make([]models.Product, 0, len(names))
		for _, n := range names {
			products = append(products, models.Product{Name: n})
		}
		return products
	}

	t.Run("price ascending", func(t *testing.T) {
		products := []models.Product{{Price: 300}, {Price: 100}, {Price: 200}}
		sortProducts(products, models.SortPriceLow)

		assert.Equal(t, 100.0, products[0].Price)
		assert.Equal(t, 200.0, products[1].Price)
		assert.Equal(t, 300.0, products[2].Price)
	})

	t.Run("price descending", func(t *testing.T) {
		products := []models.Product{{Price: 100}, {Price: 300}, {Price: 200}}
		sortProducts(products, models.SortPriceHigh)

		assert.Equal(t, 300.0, products[0].Price)
		assert.Equal(t, 100.0, products[2].Price)
	})

	t.Run("name is case-insensitive", func(t *testing.T) {
		products := byName("zeta", "Alpha", "beta")
		sortProducts(products, models.SortName)

		assert.Equal(t, "Alpha", products[0].Name)
		assert.Equal(t, "beta", products[1].Name)
		assert.Equal(t, "zeta", products[2].Name)
	})

	t.Run("equal keys keep fetch order", func(t *testing.T) {
		products := []models.Product{
			{Name: "newest", Price: 100},
			{Name: "middle", Price: 100},
			{Name: "oldest", Price: 100},
		}
		sortProducts(products, models.SortPriceLow)

		assert.Equal(t, "newest", products[0].Name)
		assert.Equal(t, "middle", products[1].Name)
		assert.Equal(t, "oldest", products[2].Name)
	})

	t.Run("newest leaves fetch order untouched", func(t *testing.T) {
		products := byName("c", "a", "b")
		sortProducts(products, models.SortNewest)

		assert.Equal(t, "c", products[0].Name)
		assert.Equal(t, "a", products[1].Name)
		assert.Equal(t, "b", products[2].Name)
	})
}

func TestPageSlice(t *testing.T) {
	products := make([]models.Product, 25)

	t.Run("first page", func(t *testing.T) {
		assert.Len(t, pageSlice(products, 1, 12), 12)
	})

	t.Run("last partial page", func(t *testing.T) {
		assert.Len(t, pageSlice(products, 3, 12), 1)
	})

	t.Run("page past the end is empty, not nil", func(t *testing.T) {
		page := pageSlice(products, 4, 12)
		require.NotNil(t, page)
		assert.Empty(t, page)
	})
}
