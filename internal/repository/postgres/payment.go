package postgres

import (
	"context"
	"strconv"

	"exchanger/models"

	"github.com/jmoiron/sqlx"
)

type PaymentRepository struct {
	conn *sqlx.DB
}

func NewPaymentRepository(conn *sqlx.DB) PaymentRepo {
	return &PaymentRepository{
		conn: conn,
	}
}

func (r *PaymentRepository) GetMethod(ctx context.Context, id int64) (*models.PaymentMethod, error) {
	var out models.PaymentMethod

	if err := r.conn.QueryRowxContext(ctx, "SELECT * FROM payment_methods WHERE id = $1 LIMIT 1", id).StructScan(&out); err != nil {
		return nil, wrap(err, "get payment method", "payment_method", strconv.FormatInt(id, 10))
	}

	return &out, nil
}

func (r *PaymentRepository) ListMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	out := []models.PaymentMethod{}

	if err := r.conn.SelectContext(ctx, &out, "SELECT * FROM payment_methods ORDER BY id"); err != nil {
		return nil, wrap(err, "list payment methods", "payment_method", "")
	}

	return out, nil
}

func (r *PaymentRepository) GetRequisite(ctx context.Context, id int64) (*models.Requisite, error) {
	var out models.Requisite

	if err := r.conn.QueryRowxContext(ctx, "SELECT * FROM trader_requisites WHERE id = $1 LIMIT 1", id).StructScan(&out); err != nil {
		return nil, wrap(err, "get requisite", "requisite", strconv.FormatInt(id, 10))
	}

	return &out, nil
}
