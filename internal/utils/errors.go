package utils

import (
	"webhookd/internal/errmsg"

	"github.com/gofiber/fiber/v3"
)

// StatusError renders a StatusError as the HTTP response. Errors without a
// message send the status code with an empty body.
func StatusError(c fiber.Ctx, se errmsg.StatusError) error {
	if se.Message == "" {
		return c.Status(se.StatusCode).Send(nil)
	}

	return c.Status(se.StatusCode).JSON(map[string]string{
		"message": se.Message,
	})
}
