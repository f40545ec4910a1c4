package usecasees

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"runtime/debug"
	"strings"
	"time"

	"exchanger/internal/controllers"
	"exchanger/internal/repository/mongo"
	mongoStructs "exchanger/internal/repository/mongo/structs"
	"exchanger/internal/repository/postgres"
	"exchanger/internal/usecasees/structs"
	"exchanger/models"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	mongoDriver "go.mongodb.org/mongo-driver/mongo"
)

const (
	depthUrlPath   = "/api/v2/depth"
	GarantexSource = "Garantex"

	refreshTimeout = 20 * time.Second
)

type rateUseCase struct {
	clientController controllers.ClientCtrl
	tgmController    controllers.TgmCtrl

	rateRepo     postgres.RateRepo
	settingsRepo mongo.SettingsRepo

	cron    *cron.Cron
	metrics structs.Metrics

	url string

	logger *logrus.Logger
}

func NewRateUseCase(
	client controllers.ClientCtrl,
	tgm controllers.TgmCtrl,
	rateRepo postgres.RateRepo,
	settingsRepo mongo.SettingsRepo,
	cron *cron.Cron,
	metrics structs.Metrics,
	url string,
	logger *logrus.Logger,
) *rateUseCase {
	return &rateUseCase{
		clientController: client,
		tgmController:    tgm,
		rateRepo:         rateRepo,
		settingsRepo:     settingsRepo,
		cron:             cron,
		metrics:          metrics,
		url:              url,
		logger:           logger,
	}
}

// Monitoring schedules Refresh on the cron spec, e.g. "@every 30s".
func (u *rateUseCase) Monitoring(spec string) error {
	_, err := u.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		if _, err := u.Refresh(ctx); err != nil {
			u.logger.
				WithError(err).
				Error(string(debug.Stack()))
		}
	})

	return err
}

// Refresh pulls the depth of every enabled pair and upserts the quotes. A
// failing pair is logged and skipped; only a settings lookup failure aborts.
func (u *rateUseCase) Refresh(ctx context.Context) ([]models.ExchangeRate, error) {
	pairs, err := u.settingsRepo.ListEnabled(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list enabled pairs")
	}

	out := make([]models.ExchangeRate, 0, len(pairs))

	for _, pair := range pairs {
		rate, err := u.refreshPair(ctx, pair)
		if err != nil {
			u.metrics.Inc(structs.MetricRateRefreshFailed)
			u.logger.
				WithError(err).
				WithField("market", pair.Market).
				Error("rate refresh failed")
			u.alert(fmt.Sprintf("[ Rates ]\n%s/%s: %v", pair.Currency, pair.FiatCode, err))

			continue
		}

		u.metrics.Inc(structs.MetricRateRefreshed)
		out = append(out, *rate)
	}

	return out, nil
}

func (u *rateUseCase) refreshPair(ctx context.Context, pair mongoStructs.PairSettings) (*models.ExchangeRate, error) {
	buy, sell, err := u.Fetch(ctx, pair.Market)
	if err != nil {
		return nil, err
	}

	rate := models.ExchangeRate{
		Currency:  strings.ToUpper(pair.Currency),
		FiatCode:  strings.ToUpper(pair.FiatCode),
		BuyRate:   buy,
		SellRate:  sell,
		Source:    GarantexSource,
		UpdatedAt: time.Now().UTC(),
	}

	if err := u.rateRepo.Upsert(ctx, &rate); err != nil {
		return nil, err
	}

	u.logger.
		WithField("market", pair.Market).
		WithField("buy", rate.BuyRate.Decimal.String()).
		WithField("sell", rate.SellRate.Decimal.String()).
		Debug("rate refreshed")

	return &rate, nil
}

// Fetch reads the top of the Garantex book: buyers pay the best ask, sellers
// get the best bid. A one-sided book yields a NULL leg.
func (u *rateUseCase) Fetch(ctx context.Context, market string) (decimal.NullDecimal, decimal.NullDecimal, error) {
	var buy, sell decimal.NullDecimal

	baseURL, err := url.Parse(u.url)
	if err != nil {
		return buy, sell, err
	}

	baseURL.Path = path.Join(baseURL.Path, depthUrlPath)

	q := baseURL.Query()
	q.Set("market", market)

	baseURL.RawQuery = q.Encode()

	body, err := u.clientController.Send(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return buy, sell, err
	}

	var depth structs.Depth
	if err := json.Unmarshal(body, &depth); err != nil {
		return buy, sell, errors.Wrap(err, "decode depth")
	}

	if len(depth.Asks) == 0 && len(depth.Bids) == 0 {
		return buy, sell, models.ErrRateUnavailable
	}

	if len(depth.Asks) > 0 {
		buy = decimal.NewNullDecimal(depth.Asks[0].Price)
	}

	if len(depth.Bids) > 0 {
		sell = decimal.NewNullDecimal(depth.Bids[0].Price)
	}

	return buy, sell, nil
}

// SetPairStatus enables or disables polling of a stored pair.
func (u *rateUseCase) SetPairStatus(ctx context.Context, currency, fiatCode string, status mongoStructs.PairStatus) error {
	currency, fiatCode = strings.ToUpper(currency), strings.ToUpper(fiatCode)

	pair, err := u.settingsRepo.Load(ctx, currency, fiatCode)
	if err != nil {
		if errors.Is(err, mongoDriver.ErrNoDocuments) {
			return &models.NotFoundError{Entity: "pair", ID: currency + "/" + fiatCode}
		}

		return err
	}

	if err := u.settingsRepo.UpdateStatus(ctx, pair.ID, status); err != nil {
		return err
	}

	u.logger.
		WithField("pair", currency+"/"+fiatCode).
		WithField("status", status).
		Info("pair status changed")

	return nil
}

func (u *rateUseCase) List(ctx context.Context) ([]models.ExchangeRate, error) {
	return u.rateRepo.List(ctx)
}

func (u *rateUseCase) alert(text string) {
	if u.tgmController == nil {
		return
	}

	if err := u.tgmController.Send(text); err != nil {
		u.logger.WithField("method", "alert").Debug(err)
	}
}
