package http

import (
	"reflect"
	"strings"

	"exchanger/models"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type Validator struct {
	validator *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validator: v}
}

// Validate reports the first failing field as a models.ValidationError.
func (v *Validator) Validate(i interface{}) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var fieldsError validator.ValidationErrors
	if errors.As(err, &fieldsError) && len(fieldsError) > 0 {
		return &models.ValidationError{
			Field:  fieldsError[0].Field(),
			Reason: "failed on " + fieldsError[0].Tag(),
		}
	}

	return &models.ValidationError{Field: "body", Reason: err.Error()}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=user trader"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// amount and total_fiat are left to the pricing resolver, which owns the
// exactly-one rule.
type createOrderRequest struct {
	OrderType       string           `json:"order_type" validate:"required,oneof=buy sell"`
	Currency        string           `json:"currency" validate:"required,alphanum,min=2,max=10"`
	FiatCode        string           `json:"fiat_code" validate:"required,alpha,len=3"`
	Amount          *decimal.Decimal `json:"amount"`
	TotalFiat       *decimal.Decimal `json:"total_fiat"`
	PaymentMethodID int64            `json:"payment_method_id" validate:"required,gt=0"`
}

type createTraderOrderRequest struct {
	OrderType   string           `json:"order_type" validate:"required,oneof=buy sell"`
	Currency    string           `json:"currency" validate:"required,alphanum,min=2,max=10"`
	FiatCode    string           `json:"fiat_code" validate:"required,alpha,len=3"`
	Amount      *decimal.Decimal `json:"amount"`
	TotalFiat   *decimal.Decimal `json:"total_fiat"`
	RequisiteID int64            `json:"requisite_id" validate:"required,gt=0"`
}

type orderCreatedResponse struct {
	OrderID   string `json:"order_id"`
	Amount    string `json:"amount"`
	TotalFiat string `json:"total_fiat"`
	OrderType string `json:"order_type"`
}

func newOrderCreatedResponse(o *models.Order) orderCreatedResponse {
	return orderCreatedResponse{
		OrderID:   o.ID,
		Amount:    o.Amount.StringFixed(models.AmountPlaces),
		TotalFiat: o.TotalFiat.StringFixed(models.TotalFiatPlaces),
		OrderType: o.OrderType.ToString(),
	}
}

// order_id is optional in the body; when present it must match the path.
type changeStatusRequest struct {
	OrderID         string `json:"order_id"`
	RequestedStatus string `json:"requested_status" validate:"required"`
}
