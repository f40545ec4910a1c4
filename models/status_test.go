package models_test

import (
	"errors"
	"testing"
	"time"

	"exchanger/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expectedTransitions = map[models.Status][]models.Status{
	models.StatusPending:             {models.StatusProcessing, models.StatusCanceled, models.StatusCompleted},
	models.StatusProcessing:          {models.StatusCompleted, models.StatusArbitrage, models.StatusWaitingConfirmation},
	models.StatusWaitingConfirmation: {models.StatusCompleted, models.StatusArbitrage},
	models.StatusCompleted:           {models.StatusCanceled, models.StatusProcessing, models.StatusPending, models.StatusArbitrage, models.StatusWaitingConfirmation},
	models.StatusCanceled:            {models.StatusCompleted, models.StatusProcessing, models.StatusPending, models.StatusArbitrage, models.StatusWaitingConfirmation},
	models.StatusArbitrage:           {},
}

func contains(list []models.Status, s models.Status) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}

func newOrder(status models.Status) *models.Order {
	created := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	return &models.Order{
		ID:        "0b7d7c7e-2f7e-4f7e-9a55-7f9d2b1c0a01",
		OwnerID:   7,
		OrderType: models.OrderTypeBuy,
		Currency:  "USDT",
		FiatCode:  "RUB",
		Status:    status,
		Version:   1,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestTransitionTable(t *testing.T) {
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	for _, from := range models.Statuses {
		for _, to := range models.Statuses {
			from, to := from, to
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				o := newOrder(from)
				before := *o

				err := o.Transition(to, now)

				if contains(expectedTransitions[from], to) {
					require.NoError(t, err)
					assert.True(t, models.CanTransition(from, to))
					assert.Equal(t, to, o.Status)
					assert.Equal(t, now, o.UpdatedAt)
					return
				}

				var invalid *models.InvalidTransitionError
				require.True(t, errors.As(err, &invalid))
				assert.Equal(t, from, invalid.From)
				assert.Equal(t, to, invalid.To)
				assert.False(t, models.CanTransition(from, to))
				assert.Equal(t, before, *o)
			})
		}
	}
}

func TestTransition_Scenarios(t *testing.T) {
	now := time.Now().UTC()

	t.Run("pending to processing", func(t *testing.T) {
		o := newOrder(models.StatusPending)
		require.NoError(t, o.Transition(models.StatusProcessing, now))
		assert.Equal(t, models.StatusProcessing, o.Status)
	})

	// Re-entry from completed is current documented behaviour, kept on
	// purpose until product confirms completed should be terminal.
	t.Run("completed to processing is allowed", func(t *testing.T) {
		o := newOrder(models.StatusCompleted)
		require.NoError(t, o.Transition(models.StatusProcessing, now))
		assert.Equal(t, models.StatusProcessing, o.Status)
	})

	t.Run("self transition is rejected without side effects", func(t *testing.T) {
		for _, s := range models.Statuses {
			o := newOrder(s)
			before := *o
			assert.Error(t, o.Transition(s, now))
			assert.Equal(t, before, *o)
		}
	})

	t.Run("nothing leaves arbitrage", func(t *testing.T) {
		assert.Empty(t, models.AllowedTransitions(models.StatusArbitrage))
	})
}

func TestCancel(t *testing.T) {
	now := time.Now().UTC()

	for _, s := range []models.Status{models.StatusCompleted, models.StatusCanceled} {
		o := newOrder(s)
		before := *o

		err := o.Cancel(now)

		var guard *models.CancelNotAllowedError
		require.True(t, errors.As(err, &guard))
		assert.Equal(t, s, guard.Status)

		var invalid *models.InvalidTransitionError
		assert.False(t, errors.As(err, &invalid))
		assert.Equal(t, before, *o)
	}

	for _, s := range []models.Status{models.StatusPending, models.StatusProcessing, models.StatusWaitingConfirmation, models.StatusArbitrage} {
		o := newOrder(s)
		require.NoError(t, o.Cancel(now))
		assert.Equal(t, models.StatusCanceled, o.Status)
		assert.Equal(t, now, o.UpdatedAt)
	}
}

func TestAllowedTransitionsIsCopy(t *testing.T) {
	got := models.AllowedTransitions(models.StatusPending)
	got[0] = models.StatusArbitrage

	assert.True(t, models.CanTransition(models.StatusPending, models.StatusProcessing))
}

func TestExchangeRateLeg(t *testing.T) {
	r := models.ExchangeRate{}
	r.BuyRate.Valid = true
	assert.True(t, r.Leg(models.OrderTypeBuy).Valid)
	assert.False(t, r.Leg(models.OrderTypeSell).Valid)
}
