package cart_controller

import (
	"testing"

	"github.com/Voltline-Commerce/voltline-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

func TestCartUpsertClause(t *testing.T) {
	oc := cartUpsertClause()

	t.Run("conflict key is the user-product pair", func(t *testing.T) {
		require.Len(t, oc.Columns, 2)
		assert.Equal(t, "user_id", oc.Columns[0].Name)
		assert.Equal(t, "product_id", oc.Columns[1].Name)
	})

	t.Run("conflict adds the incoming quantity to the existing line", func(t *testing.T) {
		var quantityAssignment *clause.Assignment
		for i := range oc.DoUpdates {
			if oc.DoUpdates[i].Column.Name == "quantity" {
				quantityAssignment = &oc.DoUpdates[i]
			}
		}
		require.NotNil(t, quantityAssignment, "conflict must reassign quantity")

		expr, ok := quantityAssignment.Value.(clause.Expr)
		require.True(t, ok, "quantity must be an SQL expression, not a literal overwrite")
		assert.Equal(t, "cart_lines.quantity + excluded.quantity", expr.SQL)
	})

	t.Run("conflict refreshes updated_at", func(t *testing.T) {
		touched := false
		for _, assignment := range oc.DoUpdates {
			if assignment.Column.Name == "updated_at" {
				touched = true
			}
		}
		assert.True(t, touched)
	})
}

func TestUnpurchasableMessage(t *testing.T) {
	t.Run("zero stock", func(t *testing.T) {
		p := models.Product{Available: true, StockQuantity: 0}
		assert.Equal(t, "Product is out of stock", unpurchasableMessage(&p))
	})

	t.Run("withdrawn from sale with stock on hand", func(t *testing.T) {
		p := models.Product{Available: false, StockQuantity: 7}
		assert.Equal(t, "Product is not available for purchase", unpurchasableMessage(&p))
	})
}
