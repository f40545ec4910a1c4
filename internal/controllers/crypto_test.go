package controllers_test

import (
	"testing"
	"time"

	"exchanger/internal/controllers"
	"exchanger/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptoController_Password(t *testing.T) {
	cryptoController := controllers.NewCryptoController("secret", time.Minute)

	hash, err := cryptoController.HashPassword("p@ssw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, "p@ssw0rd", hash)

	assert.True(t, cryptoController.VerifyPassword("p@ssw0rd", hash))
	assert.False(t, cryptoController.VerifyPassword("wrong", hash))
	assert.False(t, cryptoController.VerifyPassword("p@ssw0rd", "not-a-hash"))
}

func TestCryptoController_Token(t *testing.T) {
	cryptoController := controllers.NewCryptoController("secret", time.Minute)

	t.Run("round trip", func(t *testing.T) {
		token, err := cryptoController.IssueToken(42, models.RoleTrader)
		require.NoError(t, err)

		claims, err := cryptoController.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, models.RoleTrader, claims.Role)

		ownerID, err := claims.OwnerID()
		assert.NoError(t, err)
		assert.Equal(t, int64(42), ownerID)
	})

	t.Run("foreign secret", func(t *testing.T) {
		token, err := controllers.NewCryptoController("other", time.Minute).IssueToken(1, models.RoleAdmin)
		require.NoError(t, err)

		_, err = cryptoController.ParseToken(token)
		assert.ErrorIs(t, err, controllers.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := controllers.NewCryptoController("secret", -time.Minute).IssueToken(1, models.RoleUser)
		require.NoError(t, err)

		_, err = cryptoController.ParseToken(token)
		assert.ErrorIs(t, err, controllers.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := cryptoController.ParseToken("not.a.token")
		assert.ErrorIs(t, err, controllers.ErrInvalidToken)
	})
}
