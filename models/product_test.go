package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountPercent(t *testing.T) {
	t.Run("compare price above price yields rounded percent", func(t *testing.T) {
		compare := 2000.0
		p := Product{Price: 1500, ComparePrice: &compare}

		pct, ok := p.DiscountPercent()
		require.True(t, ok)
		assert.Equal(t, 25, pct)
	})

	t.Run("rounds to nearest integer", func(t *testing.T) {
		compare := 3000.0
		p := Product{Price: 2000, ComparePrice: &compare}

		pct, ok := p.DiscountPercent()
		require.True(t, ok)
		assert.Equal(t, 33, pct) // 33.33 rounds down
	})

	t.Run("no compare price yields no label", func(t *testing.T) {
		p := Product{Price: 1500}

		_, ok := p.DiscountPercent()
		assert.False(t, ok)
	})

	t.Run("compare price equal to price yields no label", func(t *testing.T) {
		compare := 1500.0
		p := Product{Price: 1500, ComparePrice: &compare}

		_, ok := p.DiscountPercent()
		assert.False(t, ok)
	})

	t.Run("compare price below price yields no label", func(t *testing.T) {
		compare := 1000.0
		p := Product{Price: 1500, ComparePrice: &compare}

		_, ok := p.DiscountPercent()
		assert.False(t, ok)
	})
}

func TestStockBadge(t *testing.T) {
	t.Run("zero stock is out of stock", func(t *testing.T) {
		p := Product{StockQuantity: 0}
		assert.Equal(t, BadgeOutOfStock, p.StockBadge())
	})

	t.Run("below threshold is low stock", func(t *testing.T) {
		for qty := 1; qty < LowStockThreshold; qty++ {
			p := Product{StockQuantity: qty}
			assert.Equal(t, BadgeLowStock, p.StockBadge(), "qty=%d", qty)
		}
	})

	t.Run("at threshold and above has no badge", func(t *testing.T) {
		p := Product{StockQuantity: LowStockThreshold}
		assert.Empty(t, p.StockBadge())

		p.StockQuantity = 100
		assert.Empty(t, p.StockBadge())
	})
}

func TestPurchasable(t *testing.T) {
	t.Run("available with stock", func(t *testing.T) {
		p := Product{Available: true, StockQuantity: 10}
		assert.True(t, p.Purchasable())
	})

	t.Run("zero stock wins over availability flag", func(t *testing.T) {
		p := Product{Available: true, StockQuantity: 0}
		assert.False(t, p.Purchasable())
	})

	t.Run("unavailable with stock", func(t *testing.T) {
		p := Product{Available: false, StockQuantity: 10}
		assert.False(t, p.Purchasable())
	})
}

func TestPrimaryImage(t *testing.T) {
	orderOf := func(n int) *int { return &n }

	t.Run("lowest order wins", func(t *testing.T) {
		p := Product{Images: ImageList{
			{URL: "second.jpg", Order: orderOf(2)},
			{URL: "first.jpg", Order: orderOf(1)},
		}}
		assert.Equal(t, "first.jpg", p.PrimaryImage())
	})

	t.Run("falls back to slice order without order values", func(t *testing.T) {
		p := Product{Images: ImageList{{URL: "a.jpg"}, {URL: "b.jpg"}}}
		assert.Equal(t, "a.jpg", p.PrimaryImage())
	})

	t.Run("empty gallery", func(t *testing.T) {
		p := Product{}
		assert.Empty(t, p.PrimaryImage())
	})
}

func TestToStorefrontResponse(t *testing.T) {
	compare := 2000.0
	p := Product{
		Name:          "Wireless Router AC1200",
		Slug:          "wireless-router-ac1200",
		Price:         1500,
		ComparePrice:  &compare,
		StockQuantity: 3,
		Available:     true,
		Category:      &Category{Name: "Networking"},
		Brand:         &Brand{Name: "NetGrid"},
	}

	resp := p.ToStorefrontResponse()

	require.NotNil(t, resp.DiscountPercent)
	assert.Equal(t, 25, *resp.DiscountPercent)
	assert.Equal(t, BadgeLowStock, resp.StockBadge)
	assert.True(t, resp.Purchasable)
	assert.Equal(t, "Networking", resp.CategoryName)
	assert.Equal(t, "NetGrid", resp.BrandName)
}
