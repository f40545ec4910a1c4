package mongo

import (
	"context"
	"os"
	"testing"

	"exchanger/internal/repository/mongo/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestPairSettings_Enabled(t *testing.T) {
	assert.True(t, (&structs.PairSettings{Status: structs.Enabled.ToString()}).Enabled())
	assert.False(t, (&structs.PairSettings{Status: structs.Disabled.ToString()}).Enabled())
	assert.False(t, (&structs.PairSettings{}).Enabled())
}

func TestDefaultPairs(t *testing.T) {
	markets := map[string]string{}
	for _, p := range DefaultPairs {
		markets[p.Currency+"/"+p.FiatCode] = p.Market
	}

	assert.Equal(t, map[string]string{
		"USDT/RUB": "usdtrub",
		"BTC/RUB":  "btcrub",
	}, markets)
}

// Runs against a real server when MONGO_TEST_URI is set.
func TestSetDefault(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx := context.Background()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)

	repo := NewSettingsRepository(client)

	assert.NoError(t, repo.SetDefault(ctx))
	assert.NoError(t, repo.SetDefault(ctx))

	s, err := repo.Load(ctx, "BTC", "RUB")
	require.NoError(t, err)
	assert.Equal(t, "btcrub", s.Market)

	require.NoError(t, repo.UpdateStatus(ctx, s.ID, structs.Disabled))

	enabled, err := repo.ListEnabled(ctx)
	require.NoError(t, err)
	for _, p := range enabled {
		assert.NotEqual(t, "btcrub", p.Market)
	}

	assert.NoError(t, repo.UpdateStatus(ctx, s.ID, structs.Enabled))
}
