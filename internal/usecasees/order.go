package usecasees

import (
	"context"
	"strconv"
	"strings"
	"time"

	"exchanger/internal/controllers"
	"exchanger/internal/repository/postgres"
	"exchanger/internal/usecasees/structs"
	"exchanger/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type orderUseCase struct {
	exchangeRepo postgres.OrderRepo
	traderRepo   postgres.OrderRepo
	paymentRepo  postgres.PaymentRepo
	userRepo     postgres.UserRepo

	rates RateSource

	notifyController controllers.NotifyCtrl

	metrics structs.Metrics
	now     func() time.Time

	logger *logrus.Logger
}

func NewOrderUseCase(
	exchangeRepo postgres.OrderRepo,
	traderRepo postgres.OrderRepo,
	paymentRepo postgres.PaymentRepo,
	userRepo postgres.UserRepo,
	rates RateSource,
	notify controllers.NotifyCtrl,
	metrics structs.Metrics,
	logger *logrus.Logger,
) *orderUseCase {
	return &orderUseCase{
		exchangeRepo:     exchangeRepo,
		traderRepo:       traderRepo,
		paymentRepo:      paymentRepo,
		userRepo:         userRepo,
		rates:            rates,
		notifyController: notify,
		metrics:          metrics,
		now: func() time.Time {
			return time.Now().UTC()
		},
		logger: logger,
	}
}

// CreateExchangeOrder places a user order against a payment method.
func (u *orderUseCase) CreateExchangeOrder(ctx context.Context, in structs.ExchangeOrderInput) (*models.Order, error) {
	if !in.OrderType.Valid() {
		return nil, &models.ValidationError{Field: "order_type", Reason: "must be buy or sell"}
	}

	method, err := u.paymentRepo.GetMethod(ctx, in.PaymentMethodID)
	if err != nil {
		return nil, err
	}

	if !method.Allows(in.OrderType) {
		return nil, &models.ValidationError{
			Field:  "payment_method_id",
			Reason: "payment method does not support " + in.OrderType.ToString(),
		}
	}

	pricing, err := ResolveAmounts(ctx, u.rates, in.OrderType, in.Currency, in.FiatCode, in.Amount, in.TotalFiat)
	if err != nil {
		return nil, err
	}

	order := u.newOrder(in.UserID, in.OrderType, in.Currency, in.FiatCode, pricing)
	order.PaymentRef = strconv.FormatInt(method.ID, 10)
	order.PaymentDetails = method.Snapshot()

	if err := u.exchangeRepo.Store(ctx, order); err != nil {
		return nil, err
	}

	u.metrics.Inc(structs.MetricOrderCreated)
	u.logger.
		WithField("book", models.BookExchange).
		WithField("order_id", order.ID).
		WithField("owner_id", order.OwnerID).
		Info("order created")

	return order, nil
}

// CreateTraderOrder places a merchant order on an approved trader requisite.
// The requisite's trader becomes the owner.
func (u *orderUseCase) CreateTraderOrder(ctx context.Context, in structs.TraderOrderInput) (*models.Order, error) {
	if !in.OrderType.Valid() {
		return nil, &models.ValidationError{Field: "order_type", Reason: "must be buy or sell"}
	}

	requisite, err := u.paymentRepo.GetRequisite(ctx, in.RequisiteID)
	if err != nil {
		return nil, err
	}

	if requisite.Status != models.RequisiteApprove {
		return nil, &models.NotFoundError{Entity: "requisite", ID: strconv.FormatInt(in.RequisiteID, 10)}
	}

	trader, err := u.userRepo.GetTrader(ctx, requisite.TraderID)
	if err != nil {
		return nil, err
	}

	if err := checkTraderCanSettle(trader, requisite, in.OrderType); err != nil {
		return nil, err
	}

	pricing, err := ResolveAmounts(ctx, u.rates, in.OrderType, in.Currency, in.FiatCode, in.Amount, in.TotalFiat)
	if err != nil {
		return nil, err
	}

	order := u.newOrder(trader.ID, in.OrderType, in.Currency, in.FiatCode, pricing)
	order.PaymentRef = strconv.FormatInt(requisite.ID, 10)
	order.PaymentDetails = requisite.Snapshot()

	if err := u.traderRepo.Store(ctx, order); err != nil {
		return nil, err
	}

	u.metrics.Inc(structs.MetricOrderCreated)
	u.logger.
		WithField("book", models.BookTrader).
		WithField("order_id", order.ID).
		WithField("owner_id", order.OwnerID).
		Info("order created")

	u.notify(ctx, models.BookTrader, order)

	return order, nil
}

// A buy order means the trader receives fiat on the requisite (pay-in); a
// sell order means the trader pays fiat out of it.
func checkTraderCanSettle(trader *models.Trader, requisite *models.Requisite, t models.OrderType) error {
	if !trader.Access {
		return &models.ValidationError{Field: "trader", Reason: "trader is not active"}
	}

	switch t {
	case models.OrderTypeBuy:
		if !trader.PayIn {
			return &models.ValidationError{Field: "trader", Reason: "pay-in is disabled"}
		}
		if !requisite.CanSell {
			return &models.ValidationError{Field: "requisite_id", Reason: "requisite does not accept pay-in"}
		}
	case models.OrderTypeSell:
		if !trader.PayOut {
			return &models.ValidationError{Field: "trader", Reason: "pay-out is disabled"}
		}
		if !requisite.CanBuy {
			return &models.ValidationError{Field: "requisite_id", Reason: "requisite does not accept pay-out"}
		}
	}

	return nil
}

func (u *orderUseCase) newOrder(ownerID int64, t models.OrderType, currency, fiatCode string, p *Pricing) *models.Order {
	now := u.now()

	return &models.Order{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		OrderType: t,
		Currency:  strings.ToUpper(currency),
		FiatCode:  strings.ToUpper(fiatCode),
		Amount:    p.Amount,
		TotalFiat: p.TotalFiat,
		RateUsed:  p.RateUsed,
		Status:    models.StatusPending,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Get returns an order of the book. A non-zero ownerID hides other owners'
// orders behind NotFoundError.
func (u *orderUseCase) Get(ctx context.Context, book models.Book, ownerID int64, id string) (*models.Order, error) {
	repo, err := u.repo(book)
	if err != nil {
		return nil, err
	}

	order, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if ownerID != 0 && order.OwnerID != ownerID {
		return nil, &models.NotFoundError{Entity: "order", ID: id}
	}

	return order, nil
}

func (u *orderUseCase) List(ctx context.Context, book models.Book, f models.OrderFilter) ([]models.Order, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, &models.ValidationError{Field: "status", Reason: "unknown status " + f.Status.ToString()}
	}

	repo, err := u.repo(book)
	if err != nil {
		return nil, err
	}

	return repo.List(ctx, f)
}

func (u *orderUseCase) History(ctx context.Context, book models.Book, ownerID int64, id string) ([]models.StatusChange, error) {
	if _, err := u.Get(ctx, book, ownerID, id); err != nil {
		return nil, err
	}

	repo, err := u.repo(book)
	if err != nil {
		return nil, err
	}

	return repo.History(ctx, id)
}

// Cancel applies the owner cancellation guard to a user's exchange order.
func (u *orderUseCase) Cancel(ctx context.Context, userID int64, id string) (*models.Order, error) {
	order, err := u.Get(ctx, models.BookExchange, userID, id)
	if err != nil {
		return nil, err
	}

	from := order.Status

	if err := order.Cancel(u.now()); err != nil {
		return nil, err
	}

	if err := u.save(ctx, models.BookExchange, order, from); err != nil {
		return nil, err
	}

	u.metrics.Inc(structs.MetricOrderCanceled)

	return order, nil
}

// ChangeStatus moves an order through the status machine. Traders may only
// touch their own trader orders; admins may touch any order.
func (u *orderUseCase) ChangeStatus(ctx context.Context, book models.Book, actor structs.Actor, id string, requested models.Status) (*models.Order, error) {
	if !requested.Valid() {
		return nil, &models.ValidationError{Field: "status", Reason: "unknown status " + requested.ToString()}
	}

	var ownerID int64

	switch {
	case actor.Role == models.RoleAdmin:
	case actor.Role == models.RoleTrader && book == models.BookTrader:
		ownerID = actor.ID
	default:
		return nil, models.ErrUnauthorized
	}

	order, err := u.Get(ctx, book, ownerID, id)
	if err != nil {
		return nil, err
	}

	from := order.Status

	if err := order.Transition(requested, u.now()); err != nil {
		return nil, err
	}

	if err := u.save(ctx, book, order, from); err != nil {
		return nil, err
	}

	return order, nil
}

func (u *orderUseCase) save(ctx context.Context, book models.Book, order *models.Order, from models.Status) error {
	repo, err := u.repo(book)
	if err != nil {
		return err
	}

	if err := repo.UpdateStatus(ctx, order, from); err != nil {
		if errors.Is(err, models.ErrConcurrentUpdate) {
			u.metrics.Inc(structs.MetricOrderConflict)
		}

		return err
	}

	u.metrics.Inc(structs.MetricOrderStatusChanged)
	u.logger.
		WithField("book", book).
		WithField("order_id", order.ID).
		WithField("from", from).
		WithField("to", order.Status).
		Info("order status changed")

	u.notify(ctx, book, order)

	return nil
}

// notify runs after the change is committed, so a failed publish is only
// logged.
func (u *orderUseCase) notify(ctx context.Context, book models.Book, order *models.Order) {
	if u.notifyController == nil {
		return
	}

	if err := u.notifyController.Publish(ctx, controllers.StatusEvent{
		OrderID:   order.ID,
		Book:      book,
		OwnerID:   order.OwnerID,
		NewStatus: order.Status,
		At:        order.UpdatedAt,
	}); err != nil {
		u.metrics.Inc(structs.MetricNotificationFailed)
		u.logger.
			WithError(err).
			WithField("order_id", order.ID).
			Error("notify failed")
	}
}

func (u *orderUseCase) PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	return u.paymentRepo.ListMethods(ctx)
}

// Stat counts orders per status created since the given time, per book.
func (u *orderUseCase) Stat(ctx context.Context, since time.Time) (map[models.Book]map[models.Status]int64, error) {
	out := map[models.Book]map[models.Status]int64{}

	for _, book := range []models.Book{models.BookExchange, models.BookTrader} {
		repo, err := u.repo(book)
		if err != nil {
			return nil, err
		}

		stat, err := repo.CountByStatus(ctx, since)
		if err != nil {
			return nil, err
		}

		out[book] = stat
	}

	return out, nil
}

func (u *orderUseCase) repo(book models.Book) (postgres.OrderRepo, error) {
	switch book {
	case models.BookExchange:
		return u.exchangeRepo, nil
	case models.BookTrader:
		return u.traderRepo, nil
	}

	return nil, &models.ValidationError{Field: "book", Reason: "unknown order book " + string(book)}
}
