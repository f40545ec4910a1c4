package postgres

import (
	"context"
	"time"

	"exchanger/models"
)

//go:generate mockery --case=snake --name=OrderRepo
//go:generate mockery --case=snake --name=RateRepo
//go:generate mockery --case=snake --name=PaymentRepo
//go:generate mockery --case=snake --name=UserRepo

type OrderRepo interface {
	Store(ctx context.Context, m *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context, f models.OrderFilter) ([]models.Order, error)
	UpdateStatus(ctx context.Context, m *models.Order, from models.Status) error
	History(ctx context.Context, id string) ([]models.StatusChange, error)
	CountByStatus(ctx context.Context, since time.Time) (map[models.Status]int64, error)
}

type RateRepo interface {
	Upsert(ctx context.Context, m *models.ExchangeRate) error
	Get(ctx context.Context, currency, fiatCode string) (*models.ExchangeRate, error)
	List(ctx context.Context) ([]models.ExchangeRate, error)
}

type PaymentRepo interface {
	GetMethod(ctx context.Context, id int64) (*models.PaymentMethod, error)
	ListMethods(ctx context.Context) ([]models.PaymentMethod, error)
	GetRequisite(ctx context.Context, id int64) (*models.Requisite, error)
}

type UserRepo interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetTraderByEmail(ctx context.Context, email string) (*models.Trader, error)
	GetTrader(ctx context.Context, id int64) (*models.Trader, error)
}
