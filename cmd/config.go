package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel string
	LokiAddr string

	HTTPAddr    string
	HTTPTimeout time.Duration

	JWTSecret      string
	TokenTTL       time.Duration
	MerchantAPIKey string

	GarantexUrl string
	RatesCron   string

	TelegramApiToken string
	TelegramChatID   int64

	DB    *DB
	Mongo *Mongo
	Redis *Redis
}

type DB struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Mongo struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

var ErrEnvNotFound = errors.New("err env not found")

// loadConfig reads the env file when it exists; the process environment
// always wins.
func (a *App) loadConfig(confFileName string) error {
	var (
		cfg   Config
		db    DB
		mongo Mongo
		rdb   Redis
		err   error
	)

	if err := godotenv.Load(confFileName); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cfg.LogLevel = cfg.get("LOG_LEVEL", "INFO")
	cfg.LokiAddr = cfg.get("LOKI_ADDR", "")
	cfg.HTTPAddr = cfg.get("HTTP_ADDR", ":8080")
	cfg.MerchantAPIKey = cfg.get("MERCHANT_API_KEY", "")
	cfg.GarantexUrl = cfg.get("GARANTEX_URL", "https://garantex.org")
	cfg.RatesCron = cfg.get("RATES_CRON", "@every 30s")
	cfg.TelegramApiToken = cfg.get("TELEGRAM_API_TOKEN", "")

	if cfg.HTTPTimeout, err = time.ParseDuration(cfg.get("HTTP_TIMEOUT", "5s")); err != nil {
		return fmt.Errorf("HTTP_TIMEOUT: %w", err)
	}

	if cfg.TokenTTL, err = time.ParseDuration(cfg.get("TOKEN_TTL", "24h")); err != nil {
		return fmt.Errorf("TOKEN_TTL: %w", err)
	}

	if cfg.TelegramApiToken != "" {
		chatID, err := cfg.set("TELEGRAM_CHAT_ID")
		if err != nil {
			return err
		}

		if cfg.TelegramChatID, err = strconv.ParseInt(chatID, 10, 64); err != nil {
			return fmt.Errorf("TELEGRAM_CHAT_ID: %w", err)
		}
	}

	if cfg.JWTSecret, err = cfg.set("JWT_SECRET"); err != nil {
		return err
	}

	if db.Host, err = cfg.set("PG_HOST"); err != nil {
		return err
	}

	if db.User, err = cfg.set("PG_USER"); err != nil {
		return err
	}

	if db.Password, err = cfg.set("PG_PASSWORD"); err != nil {
		return err
	}

	if db.DBName, err = cfg.set("PG_DBNAME"); err != nil {
		return err
	}

	db.Port = cfg.get("PG_PORT", "5432")
	db.SSLMode = cfg.get("PG_SSL_MODE", "disable")

	if mongo.Host, err = cfg.set("MONGO_HOST"); err != nil {
		return err
	}

	mongo.Port = cfg.get("MONGO_PORT", "27017")
	mongo.User = cfg.get("MONGO_USER", "")
	mongo.Password = cfg.get("MONGO_PASSWORD", "")
	mongo.DBName = cfg.get("MONGO_DBNAME", "admin")

	rdb.Addr = cfg.get("REDIS_ADDR", "")
	rdb.Password = cfg.get("REDIS_PASSWORD", "")

	if rdb.DB, err = strconv.Atoi(cfg.get("REDIS_DB", "0")); err != nil {
		return fmt.Errorf("REDIS_DB: %w", err)
	}

	cfg.DB = &db
	cfg.Mongo = &mongo
	cfg.Redis = &rdb

	a.Config = &cfg

	return nil
}

func (d *DB) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode)
}

func (m *Mongo) DSN() string {
	return fmt.Sprintf("mongodb://%s:%s", m.Host, m.Port)
}

func (c *Config) set(key string) (string, error) {
	if os.Getenv(key) == "" {
		return "", fmt.Errorf("%w: %s", ErrEnvNotFound, key)
	}

	return os.Getenv(key), nil
}

func (c *Config) get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
