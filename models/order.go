package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderTypeBuy  OrderType = "buy"
	OrderTypeSell OrderType = "sell"
)

func (t OrderType) Valid() bool {
	return t == OrderTypeBuy || t == OrderTypeSell
}

func (t OrderType) ToString() string {
	return string(t)
}

// Book selects which order table an order lives in. Both books share the
// Order shape and the status machine.
type Book string

const (
	BookExchange Book = "exchange"
	BookTrader   Book = "trader"
)

func (b Book) Valid() bool {
	return b == BookExchange || b == BookTrader
}

const (
	AmountPlaces    int32 = 8
	TotalFiatPlaces int32 = 2
)

type Order struct {
	ID             string          `db:"id" json:"id"`
	OwnerID        int64           `db:"owner_id" json:"owner_id"`
	OrderType      OrderType       `db:"order_type" json:"order_type"`
	Currency       string          `db:"currency" json:"currency"`
	FiatCode       string          `db:"fiat_code" json:"fiat_code"`
	Amount         decimal.Decimal `db:"amount" json:"amount"`
	TotalFiat      decimal.Decimal `db:"total_fiat" json:"total_fiat"`
	RateUsed       decimal.Decimal `db:"rate_used" json:"rate_used"`
	Status         Status          `db:"status" json:"status"`
	PaymentRef     string          `db:"payment_ref" json:"payment_ref"`
	PaymentDetails string          `db:"payment_details" json:"payment_details"`
	Version        int64           `db:"version" json:"-"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

type OrderFilter struct {
	OwnerID int64
	Status  Status
	Limit   int
	Offset  int
}

// StatusChange is one row of an order's status history.
type StatusChange struct {
	ID         int64     `db:"id" json:"-"`
	Book       Book      `db:"book" json:"book"`
	OrderID    string    `db:"order_id" json:"order_id"`
	FromStatus Status    `db:"from_status" json:"from_status,omitempty"`
	ToStatus   Status    `db:"to_status" json:"to_status"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
