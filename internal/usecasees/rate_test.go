package usecasees

import (
	"context"
	"errors"
	"net/url"
	"testing"

	ctrlMocks "exchanger/internal/controllers/mocks"
	mongoMocks "exchanger/internal/repository/mongo/mocks"
	mongoStructs "exchanger/internal/repository/mongo/structs"
	pgMocks "exchanger/internal/repository/postgres/mocks"
	"exchanger/models"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGenRate struct {
	clientCtrl   *ctrlMocks.ClientCtrl
	tgmCtrl      *ctrlMocks.TgmCtrl
	rateRepo     *pgMocks.RateRepo
	settingsRepo *mongoMocks.SettingsRepo

	cron   *cron.Cron
	logger *logrus.Logger
}

func newMockGenRate() *mockGenRate {
	return &mockGenRate{
		clientCtrl:   &ctrlMocks.ClientCtrl{},
		tgmCtrl:      &ctrlMocks.TgmCtrl{},
		rateRepo:     &pgMocks.RateRepo{},
		settingsRepo: &mongoMocks.SettingsRepo{},
		cron:         cron.New(),
	}
}

func (mockGen *mockGenRate) initRateUseCase() *rateUseCase {
	mockGen.logger = logrus.New()
	mockGen.logger.SetLevel(logrus.DebugLevel)

	return NewRateUseCase(
		mockGen.clientCtrl,
		mockGen.tgmCtrl,
		mockGen.rateRepo,
		mockGen.settingsRepo,
		mockGen.cron,
		nil,
		"https://garantex.org",
		mockGen.logger,
	)
}

func depthFor(market string) interface{} {
	return mock.MatchedBy(func(input *url.URL) bool {
		return input.Path == "/api/v2/depth" && input.Query().Get("market") == market
	})
}

func (mockGen *mockGenRate) clientMocks() {
	mockGen.clientCtrl.On("Send", mock.Anything, "GET", depthFor("usdtrub"), []byte(nil)).
		Return([]byte(`{"timestamp":1700000000,"asks":[{"price":"92.51","volume":"100.0","amount":"9251.0","factor":"0.01","type":"limit"},{"price":"92.60"}],"bids":[{"price":"92.10"}]}`), nil)

	mockGen.clientCtrl.On("Send", mock.Anything, "GET", depthFor("btcrub"), []byte(nil)).
		Return(nil, errors.New("statusCode 502; resp ;"))

	mockGen.clientCtrl.On("Send", mock.Anything, "GET", depthFor("ethrub"), []byte(nil)).
		Return([]byte(`{"timestamp":1700000000,"asks":[{"price":"250000"}],"bids":[]}`), nil)

	mockGen.clientCtrl.On("Send", mock.Anything, "GET", depthFor("dogerub"), []byte(nil)).
		Return([]byte(`{"timestamp":1700000000,"asks":[],"bids":[]}`), nil)
}

func TestRateUseCase_Fetch(t *testing.T) {
	mockGen := newMockGenRate()
	mockGen.clientMocks()
	u := mockGen.initRateUseCase()

	t.Run("top of book", func(t *testing.T) {
		buy, sell, err := u.Fetch(context.Background(), "usdtrub")
		require.NoError(t, err)
		assert.Equal(t, "92.51", buy.Decimal.String())
		assert.Equal(t, "92.1", sell.Decimal.String())
	})

	t.Run("one sided book", func(t *testing.T) {
		buy, sell, err := u.Fetch(context.Background(), "ethrub")
		require.NoError(t, err)
		assert.True(t, buy.Valid)
		assert.False(t, sell.Valid)
	})

	t.Run("empty book", func(t *testing.T) {
		_, _, err := u.Fetch(context.Background(), "dogerub")
		assert.ErrorIs(t, err, models.ErrRateUnavailable)
	})

	t.Run("transport error", func(t *testing.T) {
		_, _, err := u.Fetch(context.Background(), "btcrub")
		assert.Error(t, err)
	})
}

func TestRateUseCase_Refresh(t *testing.T) {
	mockGen := newMockGenRate()
	mockGen.clientMocks()

	mockGen.settingsRepo.On("ListEnabled", mock.Anything).Return([]mongoStructs.PairSettings{
		{Currency: "USDT", FiatCode: "RUB", Market: "usdtrub", Status: mongoStructs.Enabled.ToString()},
		{Currency: "BTC", FiatCode: "RUB", Market: "btcrub", Status: mongoStructs.Enabled.ToString()},
	}, nil)

	mockGen.rateRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(r *models.ExchangeRate) bool {
		return r.Currency == "USDT" && r.FiatCode == "RUB" && r.Source == GarantexSource && r.BuyRate.Valid && r.SellRate.Valid
	})).Return(nil).Once()

	mockGen.tgmCtrl.On("Send", mock.MatchedBy(func(text string) bool {
		return text == "[ Rates ]\nBTC/RUB: statusCode 502; resp ;"
	})).Return(nil).Once()

	rates, err := mockGen.initRateUseCase().Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, "USDT", rates[0].Currency)

	mockGen.rateRepo.AssertExpectations(t)
	mockGen.tgmCtrl.AssertExpectations(t)
}

func TestRateUseCase_RefreshWithoutSettings(t *testing.T) {
	mockGen := newMockGenRate()
	mockGen.settingsRepo.On("ListEnabled", mock.Anything).Return(nil, errors.New("server selection timeout"))

	_, err := mockGen.initRateUseCase().Refresh(context.Background())
	assert.Error(t, err)
	mockGen.rateRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestRateUseCase_RefreshWithoutBot(t *testing.T) {
	mockGen := newMockGenRate()
	mockGen.clientMocks()
	mockGen.settingsRepo.On("ListEnabled", mock.Anything).Return([]mongoStructs.PairSettings{
		{Currency: "BTC", FiatCode: "RUB", Market: "btcrub"},
	}, nil)

	mockGen.logger = logrus.New()
	u := NewRateUseCase(mockGen.clientCtrl, nil, mockGen.rateRepo, mockGen.settingsRepo, mockGen.cron, nil, "https://garantex.org", mockGen.logger)

	rates, err := u.Refresh(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rates)
}

func TestRateUseCase_Monitoring(t *testing.T) {
	mockGen := newMockGenRate()
	u := mockGen.initRateUseCase()

	assert.NoError(t, u.Monitoring("@every 30s"))
	assert.Len(t, mockGen.cron.Entries(), 1)

	assert.Error(t, u.Monitoring("every now and then"))
}
