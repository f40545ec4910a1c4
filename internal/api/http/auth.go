package http

import (
	"exchanger/models"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := h.bind(c, &req); err != nil {
		return h.fail(c, err)
	}

	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleUser
	}

	token, err := h.auth.Login(c.UserContext(), req.Email, req.Password, role)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
