package http

import (
	"exchanger/internal/controllers"
	"exchanger/models"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// statusOf maps domain errors to HTTP status codes and a stable error code.
func statusOf(err error) (int, string) {
	var (
		validationErr *models.ValidationError
		pricingErr    *models.PricingError
		transitionErr *models.InvalidTransitionError
		cancelErr     *models.CancelNotAllowedError
		notFoundErr   *models.NotFoundError
		persistErr    *models.PersistenceError
		fiberErr      *fiber.Error
	)

	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest, "validation_error"
	case errors.As(err, &transitionErr):
		return fiber.StatusBadRequest, "invalid_transition"
	case errors.As(err, &cancelErr):
		return fiber.StatusBadRequest, "cancel_not_allowed"
	case errors.As(err, &notFoundErr):
		return fiber.StatusNotFound, "not_found"
	case errors.As(err, &pricingErr):
		return fiber.StatusServiceUnavailable, "pricing_error"
	case errors.Is(err, models.ErrConcurrentUpdate):
		return fiber.StatusConflict, "concurrent_update"
	case errors.Is(err, models.ErrUnauthorized), errors.Is(err, controllers.ErrInvalidToken):
		return fiber.StatusUnauthorized, "unauthorized"
	case errors.As(err, &persistErr):
		return fiber.StatusInternalServerError, "persistence_error"
	case errors.As(err, &fiberErr):
		return fiberErr.Code, "http_error"
	}

	return fiber.StatusInternalServerError, "internal_error"
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status, code := statusOf(err)

	msg := err.Error()
	if status >= fiber.StatusInternalServerError {
		h.logger.
			WithError(err).
			WithField("path", c.Path()).
			Error("request failed")

		if status == fiber.StatusInternalServerError {
			msg = "internal server error"
		}
	}

	return c.Status(status).JSON(errorResponse{
		Error: msg,
		Code:  code,
	})
}

// ErrorHandler renders errors that escape handlers, e.g. from middleware.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status, code := statusOf(err)

	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = "internal server error"
	}

	return c.Status(status).JSON(errorResponse{
		Error: msg,
		Code:  code,
	})
}
