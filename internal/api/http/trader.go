package http

import (
	"exchanger/internal/usecasees/structs"
	"exchanger/models"

	"github.com/gofiber/fiber/v2"
)

// CreateTraderOrder is the merchant entry point; the requisite decides which
// trader owns the order.
func (h *Handler) CreateTraderOrder(c *fiber.Ctx) error {
	var req createTraderOrderRequest
	if err := h.bind(c, &req); err != nil {
		return h.fail(c, err)
	}

	order, err := h.orders.CreateTraderOrder(c.UserContext(), structs.TraderOrderInput{
		RequisiteID: req.RequisiteID,
		OrderType:   models.OrderType(req.OrderType),
		Currency:    req.Currency,
		FiatCode:    req.FiatCode,
		Amount:      req.Amount,
		TotalFiat:   req.TotalFiat,
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(newOrderCreatedResponse(order))
}

func (h *Handler) ListTraderOrders(c *fiber.Ctx) error {
	return h.listOrders(c, models.BookTrader)
}

func (h *Handler) GetTraderOrder(c *fiber.Ctx) error {
	return h.getOrder(c, models.BookTrader)
}

func (h *Handler) TraderOrderHistory(c *fiber.Ctx) error {
	return h.orderHistory(c, models.BookTrader)
}

func (h *Handler) ChangeTraderOrderStatus(c *fiber.Ctx) error {
	return h.changeStatus(c, models.BookTrader)
}
