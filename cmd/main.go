package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	apihttp "exchanger/internal/api/http"
	"exchanger/internal/controllers"
	"exchanger/internal/repository/mongo"
	"exchanger/internal/repository/postgres"
	"exchanger/internal/usecasees"
	"exchanger/models"

	"github.com/gofiber/fiber/v2"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var app App
	var confFileName string

	flag.StringVar(&confFileName, "config", ".env", "")
	flag.Parse()

	if err := app.loadConfig(confFileName); err != nil {
		panic(err)
	}

	app.initLogger()

	if err := app.initPromTail(); err != nil {
		app.Logger.WithError(err).Warn("loki is unavailable, logging locally only")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.initDB(); err != nil {
		app.Logger.WithError(err).Fatal("postgres")
	}

	if err := app.initMongo(ctx); err != nil {
		app.Logger.WithError(err).Fatal("mongo")
	}

	if err := app.initRedis(ctx); err != nil {
		app.Logger.WithError(err).Fatal("redis")
	}

	if err := app.initTgBot(); err != nil {
		app.Logger.WithError(err).Fatal("telegram")
	}

	app.initHTTPClient()
	app.initMetrics()
	app.initCron()

	exchangeRepo := postgres.NewOrderRepository(app.DB, models.BookExchange)
	traderRepo := postgres.NewOrderRepository(app.DB, models.BookTrader)
	rateRepo := postgres.NewRateRepository(app.DB)
	paymentRepo := postgres.NewPaymentRepository(app.DB)
	userRepo := postgres.NewUserRepository(app.DB)

	settingsRepo := mongo.NewSettingsRepository(app.Mongo)
	if err := settingsRepo.SetDefault(ctx); err != nil {
		app.Logger.WithError(err).Fatal("settings")
	}

	clientController := controllers.NewClientController(
		app.HTTPClient,
		app.Logger,
	)
	cryptoController := controllers.NewCryptoController(
		app.Config.JWTSecret,
		app.Config.TokenTTL,
	)

	var tgmController controllers.TgmCtrl
	if app.TGM != nil {
		tgmController = controllers.NewTgmController(app.TGM, app.Config.TelegramChatID)
	}

	var notifyController controllers.NotifyCtrl
	if app.Redis != nil {
		notifyController = controllers.NewNotifyController(app.Redis, "orders")
	}

	rateUseCase := usecasees.NewRateUseCase(
		clientController,
		tgmController,
		rateRepo,
		settingsRepo,
		app.Cron,
		app.Metrics,
		app.Config.GarantexUrl,
		app.Logger,
	)

	orderUseCase := usecasees.NewOrderUseCase(
		exchangeRepo,
		traderRepo,
		paymentRepo,
		userRepo,
		rateRepo,
		notifyController,
		app.Metrics,
		app.Logger,
	)

	authUseCase := usecasees.NewAuthUseCase(
		cryptoController,
		userRepo,
		app.Logger,
	)

	if err := rateUseCase.Monitoring(app.Config.RatesCron); err != nil {
		app.Logger.WithError(err).Fatal("rates cron")
	}
	app.Cron.Start()

	if tgmController != nil {
		tgmUseCase := usecasees.NewTgmUseCase(
			rateUseCase,
			orderUseCase,
			tgmController,
			app.Logger,
		)

		go tgmUseCase.CommandProcessor()
	}

	f := fiber.New(fiber.Config{
		AppName:      appName,
		Immutable:    true,
		ErrorHandler: apihttp.ErrorHandler,
	})

	middleware := apihttp.NewMiddleware(
		f,
		appName,
		cryptoController,
		app.Config.MerchantAPIKey,
		app.Logger,
	)
	middleware.UseMetrics()

	apihttp.RegisterHTTPEndpoints(
		f,
		apihttp.NewHandler(orderUseCase, rateUseCase, authUseCase, app.Logger),
		middleware,
	)

	go func() {
		if err := f.Listen(app.Config.HTTPAddr); err != nil {
			app.Logger.WithError(err).Error("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	if err := f.ShutdownWithTimeout(shutdownTimeout); err != nil {
		app.Logger.WithError(err).Error("http shutdown")
	}

	app.shutdown()
}

func (a *App) shutdown() {
	a.Logger.Info("shutting down")

	<-a.Cron.Stop().Done()

	if a.TGM != nil {
		a.TGM.StopReceivingUpdates()
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if a.Mongo != nil {
		if err := a.Mongo.Disconnect(ctx); err != nil {
			a.Logger.WithError(err).Error("mongo disconnect")
		}
	}

	if a.Redis != nil {
		_ = a.Redis.Close()
	}

	if a.PromTail != nil {
		a.PromTail.Close()
	}

	_ = a.DB.Close()
}
