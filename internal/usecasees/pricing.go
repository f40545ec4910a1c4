package usecasees

import (
	"context"
	"strings"

	"exchanger/models"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// RateSource returns the stored quote for a pair, or models.ErrRateUnavailable.
type RateSource interface {
	Get(ctx context.Context, currency, fiatCode string) (*models.ExchangeRate, error)
}

type Pricing struct {
	Amount    decimal.Decimal
	TotalFiat decimal.Decimal
	RateUsed  decimal.Decimal
}

// ResolveAmounts derives the missing side of an order from the rate leg that
// matches orderType. Exactly one of amount and totalFiat must be set; the
// input is checked before the rate is looked up.
//
// amount given:     total_fiat = round(amount * rate, 2)
// total_fiat given: amount     = round(round(total_fiat, 2) / rate, 8)
//
// Rounding is half away from zero. A side that rounds to zero is a
// ValidationError.
func ResolveAmounts(
	ctx context.Context,
	rates RateSource,
	orderType models.OrderType,
	currency, fiatCode string,
	amount, totalFiat *decimal.Decimal,
) (*Pricing, error) {
	if !orderType.Valid() {
		return nil, &models.ValidationError{Field: "order_type", Reason: "must be buy or sell"}
	}

	if (amount == nil) == (totalFiat == nil) {
		return nil, models.ErrAmbiguousInput
	}

	if amount != nil && !amount.IsPositive() {
		return nil, &models.ValidationError{Field: "amount", Reason: "must be positive"}
	}

	if totalFiat != nil && !totalFiat.IsPositive() {
		return nil, &models.ValidationError{Field: "total_fiat", Reason: "must be positive"}
	}

	currency = strings.ToUpper(currency)
	fiatCode = strings.ToUpper(fiatCode)

	rate, err := rates.Get(ctx, currency, fiatCode)
	if err != nil {
		if errors.Is(err, models.ErrRateUnavailable) {
			return nil, &models.PricingError{Currency: currency, FiatCode: fiatCode, Err: models.ErrRateUnavailable}
		}

		return nil, err
	}

	leg := rate.Leg(orderType)
	if !leg.Valid || !leg.Decimal.IsPositive() {
		return nil, &models.PricingError{Currency: currency, FiatCode: fiatCode, Err: models.ErrRateUnset}
	}

	out := Pricing{RateUsed: leg.Decimal}

	if amount != nil {
		out.Amount = amount.Round(models.AmountPlaces)
		out.TotalFiat = out.Amount.Mul(leg.Decimal).Round(models.TotalFiatPlaces)
	} else {
		out.TotalFiat = totalFiat.Round(models.TotalFiatPlaces)
		out.Amount = out.TotalFiat.DivRound(leg.Decimal, models.AmountPlaces)
	}

	if !out.Amount.IsPositive() {
		return nil, &models.ValidationError{Field: "amount", Reason: "below precision"}
	}
	if !out.TotalFiat.IsPositive() {
		return nil, &models.ValidationError{Field: "total_fiat", Reason: "below precision"}
	}

	return &out, nil
}
