package http

import "github.com/gofiber/fiber/v2"

func (h *Handler) Rates(c *fiber.Ctx) error {
	rates, err := h.rates.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(rates)
}

func (h *Handler) RefreshRates(c *fiber.Ctx) error {
	rates, err := h.rates.Refresh(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(rates)
}

func (h *Handler) PaymentMethods(c *fiber.Ctx) error {
	methods, err := h.orders.PaymentMethods(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(methods)
}
