package http

import (
	"exchanger/models"

	"github.com/gofiber/fiber/v2"
)

func RegisterHTTPEndpoints(f *fiber.App, h *Handler, m *Middleware) {
	m.useRecover()

	router := f.Group("api")
	router.Get("/healthcheck", h.HealthCheck)

	router.Post("/auth/login", h.Login)

	router.Get("/rates", h.Rates)
	router.Post("/rates/refresh", m.RequireAuth(models.RoleAdmin), h.RefreshRates)
	router.Get("/payment_methods", h.PaymentMethods)

	orders := router.Group("/orders", m.RequireAuth(models.RoleUser, models.RoleAdmin))
	orders.Post("/", h.CreateOrder)
	orders.Get("/", h.ListOrders)
	orders.Get("/:id", h.GetOrder)
	orders.Get("/:id/history", h.OrderHistory)
	orders.Post("/:id/cancel", h.CancelOrder)
	orders.Post("/:id/change_status", m.RequireAuth(models.RoleAdmin), h.ChangeOrderStatus)

	merchant := router.Group("/merchant", m.RequireAPIKey())
	merchant.Post("/orders", h.CreateTraderOrder)

	trader := router.Group("/trader/orders", m.RequireAuth(models.RoleTrader, models.RoleAdmin))
	trader.Get("/", h.ListTraderOrders)
	trader.Get("/:id", h.GetTraderOrder)
	trader.Get("/:id/history", h.TraderOrderHistory)
	trader.Post("/:id/change_status", h.ChangeTraderOrderStatus)
}
