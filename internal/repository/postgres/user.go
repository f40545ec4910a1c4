package postgres

import (
	"context"
	"strconv"

	"exchanger/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	conn *sqlx.DB
}

func NewUserRepository(conn *sqlx.DB) UserRepo {
	return &UserRepository{
		conn: conn,
	}
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var out models.User

	if err := r.conn.QueryRowxContext(ctx, "SELECT * FROM users WHERE email = $1 LIMIT 1", email).StructScan(&out); err != nil {
		return nil, wrap(err, "get user", "user", email)
	}

	return &out, nil
}

func (r *UserRepository) GetTraderByEmail(ctx context.Context, email string) (*models.Trader, error) {
	var out models.Trader

	if err := r.conn.QueryRowxContext(ctx, "SELECT * FROM traders WHERE email = $1 LIMIT 1", email).StructScan(&out); err != nil {
		return nil, wrap(err, "get trader", "trader", email)
	}

	return &out, nil
}

func (r *UserRepository) GetTrader(ctx context.Context, id int64) (*models.Trader, error) {
	var out models.Trader

	if err := r.conn.QueryRowxContext(ctx, "SELECT * FROM traders WHERE id = $1 LIMIT 1", id).StructScan(&out); err != nil {
		return nil, wrap(err, "get trader", "trader", strconv.FormatInt(id, 10))
	}

	return &out, nil
}
