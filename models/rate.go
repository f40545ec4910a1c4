package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the stored quote for a crypto/fiat pair. Either leg may be
// NULL when the feed returned a one-sided book.
type ExchangeRate struct {
	ID        int64               `db:"id" json:"-"`
	Currency  string              `db:"currency" json:"currency"`
	FiatCode  string              `db:"fiat_code" json:"fiat_code"`
	BuyRate   decimal.NullDecimal `db:"buy_rate" json:"buy_rate"`
	SellRate  decimal.NullDecimal `db:"sell_rate" json:"sell_rate"`
	Source    string              `db:"source" json:"source"`
	UpdatedAt time.Time           `db:"updated_at" json:"updated_at"`
}

// Leg returns the rate applied to an order of the given type: buyers pay the
// ask, sellers receive the bid.
func (r *ExchangeRate) Leg(t OrderType) decimal.NullDecimal {
	if t == OrderTypeSell {
		return r.SellRate
	}

	return r.BuyRate
}
