package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"exchanger/models"

	"github.com/jmoiron/sqlx"
)

const (
	ExchangeOrders = "exchange_orders"
	TraderOrders   = "trader_orders"

	statusHistory = "order_status_history"
	defaultLimit  = 100
)

type OrderRepository struct {
	conn  *sqlx.DB
	book  models.Book
	table string
}

func NewOrderRepository(conn *sqlx.DB, book models.Book) OrderRepo {
	table := ExchangeOrders
	if book == models.BookTrader {
		table = TraderOrders
	}

	return &OrderRepository{
		conn:  conn,
		book:  book,
		table: table,
	}
}

// Store inserts the order and its initial history row in one transaction.
func (r *OrderRepository) Store(ctx context.Context, m *models.Order) error {
	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return wrap(err, "begin", "order", m.ID)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	query := fmt.Sprintf("INSERT INTO %s (id,owner_id,order_type,currency,fiat_code,amount,total_fiat,rate_used,status,payment_ref,payment_details,version,created_at,updated_at) VALUES (:id,:owner_id,:order_type,:currency,:fiat_code,:amount,:total_fiat,:rate_used,:status,:payment_ref,:payment_details,:version,:created_at,:updated_at)", r.table)
	if _, err := tx.NamedExecContext(ctx, query, m); err != nil {
		return wrap(err, "store order", "order", m.ID)
	}

	if err := r.storeHistory(ctx, tx, m.ID, "", m.Status, m.CreatedAt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return wrap(err, "commit", "order", m.ID)
	}

	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order

	query := fmt.Sprintf("SELECT * FROM %s WHERE id = $1 LIMIT 1", r.table)
	if err := r.conn.QueryRowxContext(ctx, query, id).StructScan(&order); err != nil {
		return nil, wrap(err, "get order", "order", id)
	}

	return &order, nil
}

func (r *OrderRepository) List(ctx context.Context, f models.OrderFilter) ([]models.Order, error) {
	orders := []models.Order{}

	limit := f.Limit
	if limit <= 0 || limit > defaultLimit {
		limit = defaultLimit
	}

	query := fmt.Sprintf("SELECT * FROM %s WHERE ($1 = 0 OR owner_id = $1) AND ($2 = '' OR status = $2) ORDER BY created_at DESC LIMIT $3 OFFSET $4", r.table)
	if err := r.conn.SelectContext(ctx, &orders, query, f.OwnerID, string(f.Status), limit, f.Offset); err != nil {
		return nil, wrap(err, "list orders", "order", "")
	}

	return orders, nil
}

// UpdateStatus persists a status already applied to m. The write only lands
// if the stored version still matches m.Version; otherwise it returns
// models.ErrConcurrentUpdate and nothing changes.
func (r *OrderRepository) UpdateStatus(ctx context.Context, m *models.Order, from models.Status) error {
	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return wrap(err, "begin", "order", m.ID)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	query := fmt.Sprintf("UPDATE %s SET status = $1, updated_at = $2, version = version + 1 WHERE id = $3 AND version = $4", r.table)
	res, err := tx.ExecContext(ctx, query, m.Status, m.UpdatedAt, m.ID, m.Version)
	if err != nil {
		return wrap(err, "update status", "order", m.ID)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return wrap(err, "update status", "order", m.ID)
	}

	if n == 0 {
		return models.ErrConcurrentUpdate
	}

	if err := r.storeHistory(ctx, tx, m.ID, from, m.Status, m.UpdatedAt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return wrap(err, "commit", "order", m.ID)
	}

	m.Version++

	return nil
}

func (r *OrderRepository) History(ctx context.Context, id string) ([]models.StatusChange, error) {
	out := []models.StatusChange{}

	if err := r.conn.SelectContext(ctx, &out, "SELECT id,book,order_id,COALESCE(from_status,'') AS from_status,to_status,created_at FROM order_status_history WHERE book = $1 AND order_id = $2 ORDER BY id", r.book, id); err != nil {
		return nil, wrap(err, "history", "order", id)
	}

	return out, nil
}

func (r *OrderRepository) CountByStatus(ctx context.Context, since time.Time) (map[models.Status]int64, error) {
	var rows []struct {
		Status models.Status `db:"status"`
		Count  int64         `db:"count"`
	}

	query := fmt.Sprintf("SELECT status, count(*) AS count FROM %s WHERE created_at >= $1 GROUP BY status", r.table)
	if err := r.conn.SelectContext(ctx, &rows, query, since.UTC()); err != nil {
		return nil, wrap(err, "count orders", "order", "")
	}

	out := make(map[models.Status]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}

	return out, nil
}

func (r *OrderRepository) storeHistory(ctx context.Context, tx *sqlx.Tx, id string, from, to models.Status, at time.Time) error {
	fromStatus := sql.NullString{String: string(from), Valid: from != ""}

	if _, err := tx.ExecContext(ctx, "INSERT INTO "+statusHistory+" (book,order_id,from_status,to_status,created_at) VALUES ($1,$2,$3,$4,$5)", r.book, id, fromStatus, to, at); err != nil {
		return wrap(err, "store history", "order", id)
	}

	return nil
}
