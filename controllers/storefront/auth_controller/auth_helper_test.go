package auth_controller

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUserLookupFailure(t *testing.T) {
	t.Run("missing row reads as unauthenticated", func(t *testing.T) {
		status, message := userLookupFailure(gorm.ErrRecordNotFound)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "User not found", message)
	})

	t.Run("database failure is a server error, not a 401", func(t *testing.T) {
		status, message := userLookupFailure(errors.New("connection refused"))
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "Failed to fetch user", message)
	})
}
