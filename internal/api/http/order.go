package http

import (
	"exchanger/internal/usecasees/structs"
	"exchanger/models"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateOrder(c *fiber.Ctx) error {
	_, userID, err := claimsOf(c)
	if err != nil {
		return h.fail(c, err)
	}

	var req createOrderRequest
	if err := h.bind(c, &req); err != nil {
		return h.fail(c, err)
	}

	order, err := h.orders.CreateExchangeOrder(c.UserContext(), structs.ExchangeOrderInput{
		UserID:          userID,
		OrderType:       models.OrderType(req.OrderType),
		Currency:        req.Currency,
		FiatCode:        req.FiatCode,
		Amount:          req.Amount,
		TotalFiat:       req.TotalFiat,
		PaymentMethodID: req.PaymentMethodID,
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(newOrderCreatedResponse(order))
}

func (h *Handler) ListOrders(c *fiber.Ctx) error {
	return h.listOrders(c, models.BookExchange)
}

func (h *Handler) GetOrder(c *fiber.Ctx) error {
	return h.getOrder(c, models.BookExchange)
}

func (h *Handler) OrderHistory(c *fiber.Ctx) error {
	return h.orderHistory(c, models.BookExchange)
}

func (h *Handler) CancelOrder(c *fiber.Ctx) error {
	_, userID, err := claimsOf(c)
	if err != nil {
		return h.fail(c, err)
	}

	order, err := h.orders.Cancel(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(order)
}

func (h *Handler) ChangeOrderStatus(c *fiber.Ctx) error {
	return h.changeStatus(c, models.BookExchange)
}

func (h *Handler) listOrders(c *fiber.Ctx, book models.Book) error {
	ownerID, err := ownerScope(c)
	if err != nil {
		return h.fail(c, err)
	}

	orders, err := h.orders.List(c.UserContext(), book, models.OrderFilter{
		OwnerID: ownerID,
		Status:  models.Status(c.Query("status")),
		Limit:   c.QueryInt("limit", 50),
		Offset:  c.QueryInt("offset", 0),
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(orders)
}

func (h *Handler) getOrder(c *fiber.Ctx, book models.Book) error {
	ownerID, err := ownerScope(c)
	if err != nil {
		return h.fail(c, err)
	}

	order, err := h.orders.Get(c.UserContext(), book, ownerID, c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(order)
}

func (h *Handler) orderHistory(c *fiber.Ctx, book models.Book) error {
	ownerID, err := ownerScope(c)
	if err != nil {
		return h.fail(c, err)
	}

	history, err := h.orders.History(c.UserContext(), book, ownerID, c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(history)
}

func (h *Handler) changeStatus(c *fiber.Ctx, book models.Book) error {
	claims, actorID, err := claimsOf(c)
	if err != nil {
		return h.fail(c, err)
	}

	var req changeStatusRequest
	if err := h.bind(c, &req); err != nil {
		return h.fail(c, err)
	}

	id := c.Params("id")
	if req.OrderID != "" && req.OrderID != id {
		return h.fail(c, &models.ValidationError{Field: "order_id", Reason: "does not match the path"})
	}

	order, err := h.orders.ChangeStatus(
		c.UserContext(),
		book,
		structs.Actor{ID: actorID, Role: claims.Role},
		id,
		models.Status(req.RequestedStatus),
	)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(order)
}
