package http

import (
	"context"

	"exchanger/internal/controllers"
	"exchanger/internal/usecasees/structs"
	"exchanger/models"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type OrderUseCase interface {
	CreateExchangeOrder(ctx context.Context, in structs.ExchangeOrderInput) (*models.Order, error)
	CreateTraderOrder(ctx context.Context, in structs.TraderOrderInput) (*models.Order, error)
	Get(ctx context.Context, book models.Book, ownerID int64, id string) (*models.Order, error)
	List(ctx context.Context, book models.Book, f models.OrderFilter) ([]models.Order, error)
	History(ctx context.Context, book models.Book, ownerID int64, id string) ([]models.StatusChange, error)
	Cancel(ctx context.Context, userID int64, id string) (*models.Order, error)
	ChangeStatus(ctx context.Context, book models.Book, actor structs.Actor, id string, requested models.Status) (*models.Order, error)
	PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
}

type RateUseCase interface {
	Refresh(ctx context.Context) ([]models.ExchangeRate, error)
	List(ctx context.Context) ([]models.ExchangeRate, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, email, password string, role models.Role) (string, error)
}

type Handler struct {
	orders    OrderUseCase
	rates     RateUseCase
	auth      AuthUseCase
	validator *Validator
	logger    *logrus.Logger
}

func NewHandler(
	orders OrderUseCase,
	rates RateUseCase,
	auth AuthUseCase,
	l *logrus.Logger,
) *Handler {
	return &Handler{
		orders:    orders,
		rates:     rates,
		auth:      auth,
		validator: NewValidator(),
		logger:    l,
	}
}

func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	body := struct {
		Status bool `json:"status"`
	}{
		Status: true,
	}

	if err := c.JSON(body); err != nil {
		return err
	}

	return nil
}

// bind decodes and validates the request body into req.
func (h *Handler) bind(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return &models.ValidationError{Field: "body", Reason: err.Error()}
	}

	return h.validator.Validate(req)
}

func claimsOf(c *fiber.Ctx) (*controllers.Claims, int64, error) {
	claims, ok := c.Locals(claimsKey).(*controllers.Claims)
	if !ok {
		return nil, 0, models.ErrUnauthorized
	}

	ownerID, err := claims.OwnerID()
	if err != nil {
		return nil, 0, models.ErrUnauthorized
	}

	return claims, ownerID, nil
}

// ownerScope is the owner filter for reads. Admins see every owner.
func ownerScope(c *fiber.Ctx) (int64, error) {
	claims, ownerID, err := claimsOf(c)
	if err != nil {
		return 0, err
	}

	if claims.Role == models.RoleAdmin {
		return 0, nil
	}

	return ownerID, nil
}
