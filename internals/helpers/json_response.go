package helper

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error envelope (standard shape)
=================================*/

// ErrorEnvelope is the uniform body for every non-2xx response.
// Details is a field → message map for validation failures and a plain
// string everywhere else.
type ErrorEnvelope struct {
	Message   string `json:"message"`
	Details   any    `json:"details"`
	Timestamp string `json:"timestamp"`
}

// JsonError: error generic (single-message details)
func JsonError(c *fiber.Ctx, status int, message string, details string) error {
	return c.Status(status).JSON(ErrorEnvelope{
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// JsonValidationError: declarative field errors (400)
func JsonValidationError(c *fiber.Ctx, fieldErrors map[string]string) error {
	if fieldErrors == nil {
		fieldErrors = map[string]string{}
	}
	return c.Status(fiber.StatusBadRequest).JSON(ErrorEnvelope{
		Message:   "Validation failed",
		Details:   fieldErrors,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

/* ===============================
   JSON responses (success)
=================================*/

// JsonCreated: response sukses create (POST)
func JsonCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// JsonOK: response sukses generic (GET)
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}
