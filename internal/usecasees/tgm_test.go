package usecasees

import (
	"strings"
	"testing"
	"time"

	ctrlMocks "exchanger/internal/controllers/mocks"
	mongoStructs "exchanger/internal/repository/mongo/structs"
	"exchanger/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoDriver "go.mongodb.org/mongo-driver/mongo"
)

type mockGenTgm struct {
	order   *mockGenOrder
	rate    *mockGenRate
	tgmCtrl *ctrlMocks.TgmCtrl
}

func newMockGenTgm() *mockGenTgm {
	return &mockGenTgm{
		order:   newMockGenOrder(),
		rate:    newMockGenRate(),
		tgmCtrl: &ctrlMocks.TgmCtrl{},
	}
}

func (mockGen *mockGenTgm) initTgmUseCase() *tgmUseCase {
	return NewTgmUseCase(
		mockGen.rate.initRateUseCase(),
		mockGen.order.initOrderUseCase(),
		mockGen.tgmCtrl,
		logrus.New(),
	)
}

func TestTgmUseCase_Handle(t *testing.T) {
	t.Run("ping", func(t *testing.T) {
		mockGen := newMockGenTgm()
		mockGen.tgmCtrl.On("Send", mock.MatchedBy(func(text string) bool {
			return strings.HasPrefix(text, "PONG [ ")
		})).Return(nil).Once()

		mockGen.initTgmUseCase().Handle("ping", "")
		mockGen.tgmCtrl.AssertExpectations(t)
	})

	t.Run("stat", func(t *testing.T) {
		mockGen := newMockGenTgm()
		mockGen.order.exchangeRepo.On("CountByStatus", mock.Anything, mock.AnythingOfType("time.Time")).
			Return(map[models.Status]int64{models.StatusPending: 2, models.StatusCanceled: 1}, nil)
		mockGen.order.traderRepo.On("CountByStatus", mock.Anything, mock.AnythingOfType("time.Time")).
			Return(map[models.Status]int64{}, nil)
		mockGen.tgmCtrl.On("Send", mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "Book:\texchange\nTotal:\t3\n") &&
				strings.Contains(text, "pending:\t2\n") &&
				strings.Contains(text, "Book:\ttrader\nTotal:\t0\n")
		})).Return(nil).Once()

		mockGen.initTgmUseCase().Handle("stat", "")
		mockGen.tgmCtrl.AssertExpectations(t)
	})

	t.Run("rates", func(t *testing.T) {
		mockGen := newMockGenTgm()
		mockGen.rate.rateRepo.On("List", mock.Anything).Return([]models.ExchangeRate{
			{
				Currency:  "USDT",
				FiatCode:  "RUB",
				BuyRate:   decimal.NewNullDecimal(decimal.RequireFromString("92.51")),
				Source:    GarantexSource,
				UpdatedAt: time.Now(),
			},
		}, nil)
		mockGen.tgmCtrl.On("Send", mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "USDT/RUB\tbuy:\t92.51\tsell:\t-")
		})).Return(nil).Once()

		mockGen.initTgmUseCase().Handle("rates", "")
		mockGen.tgmCtrl.AssertExpectations(t)
	})

	t.Run("disable pair", func(t *testing.T) {
		mockGen := newMockGenTgm()
		id := primitive.NewObjectID()
		mockGen.rate.settingsRepo.On("Load", mock.Anything, "BTC", "RUB").
			Return(&mongoStructs.PairSettings{ID: id, Currency: "BTC", FiatCode: "RUB", Market: "btcrub"}, nil)
		mockGen.rate.settingsRepo.On("UpdateStatus", mock.Anything, id, mongoStructs.Disabled).Return(nil).Once()
		mockGen.tgmCtrl.On("Send", "[ Pairs ]\nBTC/RUB: DISABLED").Return(nil).Once()

		mockGen.initTgmUseCase().Handle("disable", "btc/rub")
		mockGen.rate.settingsRepo.AssertExpectations(t)
		mockGen.tgmCtrl.AssertExpectations(t)
	})

	t.Run("enable pair", func(t *testing.T) {
		mockGen := newMockGenTgm()
		id := primitive.NewObjectID()
		mockGen.rate.settingsRepo.On("Load", mock.Anything, "USDT", "RUB").
			Return(&mongoStructs.PairSettings{ID: id}, nil)
		mockGen.rate.settingsRepo.On("UpdateStatus", mock.Anything, id, mongoStructs.Enabled).Return(nil).Once()
		mockGen.tgmCtrl.On("Send", "[ Pairs ]\nUSDT/RUB: ENABLED").Return(nil).Once()

		mockGen.initTgmUseCase().Handle("enable", "USDT RUB")
		mockGen.rate.settingsRepo.AssertExpectations(t)
		mockGen.tgmCtrl.AssertExpectations(t)
	})

	t.Run("unknown pair", func(t *testing.T) {
		mockGen := newMockGenTgm()
		mockGen.rate.settingsRepo.On("Load", mock.Anything, "ETH", "RUB").
			Return(&mongoStructs.PairSettings{}, mongoDriver.ErrNoDocuments)
		mockGen.tgmCtrl.On("Send", "[ Pairs ]\nETH/RUB: unknown pair").Return(nil).Once()

		mockGen.initTgmUseCase().Handle("disable", "ETH/RUB")
		mockGen.rate.settingsRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		mockGen.tgmCtrl.AssertExpectations(t)
	})

	t.Run("disable without pair", func(t *testing.T) {
		mockGen := newMockGenTgm()
		mockGen.tgmCtrl.On("Send", mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "usage")
		})).Return(nil).Once()

		mockGen.initTgmUseCase().Handle("disable", "")
		mockGen.rate.settingsRepo.AssertNotCalled(t, "Load", mock.Anything, mock.Anything, mock.Anything)
		mockGen.tgmCtrl.AssertExpectations(t)
	})

	t.Run("unknown command is ignored", func(t *testing.T) {
		mockGen := newMockGenTgm()

		mockGen.initTgmUseCase().Handle("sudo", "")
		mockGen.tgmCtrl.AssertNotCalled(t, "Send", mock.Anything)
	})
}

func TestTgmUseCase_CommandProcessor(t *testing.T) {
	mockGen := newMockGenTgm()

	updates := make(chan tgbotapi.Update, 3)
	updates <- tgbotapi.Update{}
	updates <- tgbotapi.Update{Message: &tgbotapi.Message{
		Text:     "/ping",
		Chat:     &tgbotapi.Chat{ID: 13},
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 5}},
	}}
	updates <- tgbotapi.Update{Message: &tgbotapi.Message{
		Text:     "/ping",
		Chat:     &tgbotapi.Chat{ID: 1},
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 5}},
	}}
	close(updates)

	mockGen.tgmCtrl.On("GetUpdates").Return(tgbotapi.UpdatesChannel(updates))
	mockGen.tgmCtrl.On("CheckChatID", int64(13)).Return(false)
	mockGen.tgmCtrl.On("CheckChatID", int64(1)).Return(true)
	mockGen.tgmCtrl.On("Send", mock.AnythingOfType("string")).Return(nil).Once()

	mockGen.initTgmUseCase().CommandProcessor()
	mockGen.tgmCtrl.AssertExpectations(t)
}
