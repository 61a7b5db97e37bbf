package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/melih/lighthouse-desktop/internal/core/domain"
)

// errorStatus maps a service error to an HTTP status code.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownAction):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrNoStats):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func sendError(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	})
}

// sendOutput returns the raw output of a runtime command.
func sendOutput(c *fiber.Ctx, out string) error {
	return c.JSON(fiber.Map{
		"output": out,
	})
}
