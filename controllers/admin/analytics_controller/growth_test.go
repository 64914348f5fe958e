package analytics_controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrowthPercent(t *testing.T) {
	t.Run("growth over previous month", func(t *testing.T) {
		assert.Equal(t, 50.0, growthPercent(150, 100))
	})

	t.Run("decline over previous month", func(t *testing.T) {
		assert.Equal(t, -25.0, growthPercent(75, 100))
	})

	t.Run("previous zero with current activity reads as full growth", func(t *testing.T) {
		assert.Equal(t, 100.0, growthPercent(500, 0))
	})

	t.Run("both zero is flat", func(t *testing.T) {
		assert.Equal(t, 0.0, growthPercent(0, 0))
	})
}
