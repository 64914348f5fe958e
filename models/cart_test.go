package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartLine(price float64, quantity int) CartLine {
	return CartLine{
		Quantity: quantity,
		Product:  &Product{Price: price, Available: true, StockQuantity: 10},
	}
}

func TestCartTotals(t *testing.T) {
	t.Run("price 100 x2 plus price 50 x1", func(t *testing.T) {
		lines := []CartLine{cartLine(100, 2), cartLine(50, 1)}

		assert.Equal(t, 250.0, CartTotalPrice(lines))
		assert.Equal(t, 3, CartTotalItems(lines))
	})

	t.Run("empty cart totals zero", func(t *testing.T) {
		assert.Equal(t, 0.0, CartTotalPrice(nil))
		assert.Equal(t, 0, CartTotalItems(nil))
	})

	t.Run("line without loaded product contributes no price", func(t *testing.T) {
		lines := []CartLine{cartLine(100, 2), {Quantity: 3}}

		assert.Equal(t, 200.0, CartTotalPrice(lines))
		assert.Equal(t, 5, CartTotalItems(lines))
	})
}

func TestNewCartResponse(t *testing.T) {
	t.Run("empty lines yield empty cart, not nil", func(t *testing.T) {
		resp := NewCartResponse(nil)

		require.NotNil(t, resp.Lines)
		assert.Empty(t, resp.Lines)
		assert.Equal(t, 0.0, resp.TotalPrice)
		assert.Equal(t, 0, resp.TotalItems)
	})

	t.Run("lines carry subtotal and product card", func(t *testing.T) {
		lines := []CartLine{cartLine(1500, 2)}
		resp := NewCartResponse(lines)

		require.Len(t, resp.Lines, 1)
		assert.Equal(t, 3000.0, resp.Lines[0].Subtotal)
		assert.Equal(t, 1500.0, resp.Lines[0].Product.Price)
		assert.Equal(t, 3000.0, resp.TotalPrice)
		assert.Equal(t, 2, resp.TotalItems)
	})
}
