package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-unit-tests")
	userID := uuid.Must(uuid.NewV7())

	token, err := GenerateJWT(userID, "shopper@example.com", "customer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "shopper@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, "voltline-api", claims.Issuer)
}

func TestValidateJWTRejectsTamperedSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "original-secret")
	token, err := GenerateJWT(uuid.Must(uuid.NewV7()), "shopper@example.com", "customer")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "rotated-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := GenerateJWT(uuid.Must(uuid.NewV7()), "shopper@example.com", "customer")
	assert.Error(t, err)
}
