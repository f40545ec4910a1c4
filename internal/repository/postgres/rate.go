package postgres

import (
	"context"

	"exchanger/models"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type RateRepository struct {
	conn *sqlx.DB
}

func NewRateRepository(conn *sqlx.DB) RateRepo {
	return &RateRepository{
		conn: conn,
	}
}

func (r *RateRepository) Upsert(ctx context.Context, m *models.ExchangeRate) error {
	if _, err := r.conn.NamedExecContext(ctx, `INSERT INTO exchange_rates (currency,fiat_code,buy_rate,sell_rate,source,updated_at)
		VALUES (:currency,:fiat_code,:buy_rate,:sell_rate,:source,:updated_at)
		ON CONFLICT (currency,fiat_code) DO UPDATE SET
			buy_rate = EXCLUDED.buy_rate,
			sell_rate = EXCLUDED.sell_rate,
			source = EXCLUDED.source,
			updated_at = EXCLUDED.updated_at`, m); err != nil {
		return wrap(err, "upsert rate", "exchange_rate", m.Currency+"/"+m.FiatCode)
	}

	return nil
}

// Get returns models.ErrRateUnavailable when no quote is stored for the pair.
func (r *RateRepository) Get(ctx context.Context, currency, fiatCode string) (*models.ExchangeRate, error) {
	var rate models.ExchangeRate

	if err := r.conn.QueryRowxContext(ctx, "SELECT * FROM exchange_rates WHERE currency = $1 AND fiat_code = $2 LIMIT 1", currency, fiatCode).StructScan(&rate); err != nil {
		err = wrap(err, "get rate", "exchange_rate", currency+"/"+fiatCode)

		var nf *models.NotFoundError
		if errors.As(err, &nf) {
			return nil, models.ErrRateUnavailable
		}

		return nil, err
	}

	return &rate, nil
}

func (r *RateRepository) List(ctx context.Context) ([]models.ExchangeRate, error) {
	out := []models.ExchangeRate{}

	if err := r.conn.SelectContext(ctx, &out, "SELECT * FROM exchange_rates ORDER BY currency, fiat_code"); err != nil {
		return nil, wrap(err, "list rates", "exchange_rate", "")
	}

	return out, nil
}
