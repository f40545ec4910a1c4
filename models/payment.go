package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod struct {
	ID            int64           `db:"id" json:"id"`
	MethodName    string          `db:"method_name" json:"method_name"`
	Bank          string          `db:"bank" json:"bank"`
	Description   string          `db:"description" json:"description"`
	CanBuy        bool            `db:"can_buy" json:"can_buy"`
	CanSell       bool            `db:"can_sell" json:"can_sell"`
	FeePercentage decimal.Decimal `db:"fee_percentage" json:"fee_percentage"`
}

// Allows reports whether the method can settle an order of type t.
func (p *PaymentMethod) Allows(t OrderType) bool {
	if t == OrderTypeSell {
		return p.CanSell
	}

	return p.CanBuy
}

func (p *PaymentMethod) Snapshot() string {
	return fmt.Sprintf("%s / %s", p.MethodName, p.Bank)
}

type RequisiteStatus string

const (
	RequisiteApprove RequisiteStatus = "approve"
	RequisitePending RequisiteStatus = "pending"
	RequisiteReject  RequisiteStatus = "reject"
)

type Requisite struct {
	ID            int64           `db:"id" json:"id"`
	TraderID      int64           `db:"trader_id" json:"trader_id"`
	PaymentMethod string          `db:"payment_method" json:"payment_method"`
	Bank          string          `db:"bank" json:"bank"`
	ReqNumber     string          `db:"req_number" json:"req_number"`
	FIO           string          `db:"fio" json:"fio"`
	Status        RequisiteStatus `db:"status" json:"status"`
	CanBuy        bool            `db:"can_buy" json:"can_buy"`
	CanSell       bool            `db:"can_sell" json:"can_sell"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

func (r *Requisite) Snapshot() string {
	return fmt.Sprintf("%s / %s / %s / %s", r.PaymentMethod, r.Bank, r.ReqNumber, r.FIO)
}

type Trader struct {
	ID           int64  `db:"id" json:"id"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	Access       bool   `db:"access" json:"access"`
	PayIn        bool   `db:"pay_in" json:"pay_in"`
	PayOut       bool   `db:"pay_out" json:"pay_out"`
}
