package order_controller

import (
	"testing"

	"github.com/Voltline-Commerce/voltline-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestIsValidOrderStatus(t *testing.T) {
	t.Run("lifecycle statuses accepted", func(t *testing.T) {
		for _, status := range []string{
			models.OrderStatusPending,
			models.OrderStatusCompleted,
			models.OrderStatusCancelled,
		} {
			assert.True(t, isValidOrderStatus(status), status)
		}
	})

	t.Run("anything else rejected", func(t *testing.T) {
		for _, status := range []string{"", "shipped", "COMPLETED", "done"} {
			assert.False(t, isValidOrderStatus(status), status)
		}
	})
}
