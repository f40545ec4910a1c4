package structs

import (
	"exchanger/models"

	"github.com/shopspring/decimal"
)

type ExchangeOrderInput struct {
	UserID          int64
	OrderType       models.OrderType
	Currency        string
	FiatCode        string
	Amount          *decimal.Decimal
	TotalFiat       *decimal.Decimal
	PaymentMethodID int64
}

type TraderOrderInput struct {
	RequisiteID int64
	OrderType   models.OrderType
	Currency    string
	FiatCode    string
	Amount      *decimal.Decimal
	TotalFiat   *decimal.Decimal
}

// Actor is whoever asks for a status change.
type Actor struct {
	ID   int64
	Role models.Role
}
