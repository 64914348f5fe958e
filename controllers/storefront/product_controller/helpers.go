package product_controller

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Voltline-Commerce/voltline-backend/config"
	"github.com/Voltline-Commerce/voltline-backend/models"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// buildFilterConditions turns the criteria into conjunctive SQL
// predicates. Unavailable products are always excluded; every other
// predicate is active only when its criterion is set.
func buildFilterConditions(f models.FilterCriteria) (conditions []string, args []interface{}) {
	conditions = []string{"available = TRUE"}

	if f.Search != "" {
		conditions = append(conditions, "(name ILIKE ? OR description ILIKE ?)")
		args = append(args, "%"+f.Search+"%", "%"+f.Search+"%")
	}

	if f.CategoryID != "" {
		conditions = append(conditions, "category_id = ?")
		args = append(args, f.CategoryID)
	}

	if f.BrandID != "" {
		conditions = append(conditions, "brand_id = ?")
		args = append(args, f.BrandID)
	}

	// Inclusive price bounds. The defaults cover the whole catalog, so
	// the predicate is skipped when the range is untouched.
	if f.MinPrice != models.DefaultMinPrice || f.MaxPrice != models.DefaultMaxPrice {
		conditions = append(conditions, "price >= ? AND price <= ?")
		args = append(args, f.MinPrice, f.MaxPrice)
	}

	return conditions, args
}

// sortProducts orders the fetched set in place. The sort is stable, so
// equal keys keep the underlying fetch order (created_at DESC, id).
func sortProducts(products []models.Product, sortBy string) {
	switch sortBy {
	case models.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case models.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case models.SortName:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	default:
		// newest: the fetch order already is created_at DESC
	}
}

// pageSlice returns one page out of the sorted set.
func pageSlice(products []models.Product, page, limit int) []models.Product {
	start := (page - 1) * limit
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + limit
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

// ─────────────────────────────────────────────────────────────
// Database fetcher
// ─────────────────────────────────────────────────────────────

// fetchFilteredProducts loads every product matching the criteria with
// category and brand joined, in stable base order. Sorting happens after
// the fetch so ties keep this order (see sortProducts).
func fetchFilteredProducts(f models.FilterCriteria) ([]models.Product, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	conditions, args := buildFilterConditions(f)
	whereClause := strings.Join(conditions, " AND ")

	products := make([]models.Product, 0)
	err := config.StoreGorm.
		WithContext(ctx).
		Preload("Category").
		Preload("Brand").
		Where(whereClause, args...).
		Order("created_at DESC, id").
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}
