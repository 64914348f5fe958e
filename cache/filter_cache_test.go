package cache

import (
	"testing"

	"github.com/Voltline-Commerce/voltline-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterMetadataCache(t *testing.T) {
	t.Cleanup(Invalidate)

	t.Run("miss when empty", func(t *testing.T) {
		Invalidate()
		_, ok := GetFilterMetadata()
		assert.False(t, ok)
	})

	t.Run("hit after set", func(t *testing.T) {
		SetFilterMetadata(models.FilterMetadata{
			PriceRange: models.PriceRange{Min: 450, Max: 6800},
		})

		got, ok := GetFilterMetadata()
		require.True(t, ok)
		assert.Equal(t, 450.0, got.PriceRange.Min)
		assert.Equal(t, 6800.0, got.PriceRange.Max)
	})

	t.Run("miss after invalidate", func(t *testing.T) {
		SetFilterMetadata(models.FilterMetadata{})
		Invalidate()

		_, ok := GetFilterMetadata()
		assert.False(t, ok)
	})
}
