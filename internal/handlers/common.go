package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"worklog-service/internal/logging"
)

// requestLogger tags log lines with the request id set by the requestid middleware.
func requestLogger(c *fiber.Ctx) *slog.Logger {
	return logging.With(
		"request_id", c.Locals("requestid"),
		"method", c.Method(),
		"path", c.Path(),
	)
}

func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// ErrorHandler renders errors that escape a handler (unknown routes, wrong
// methods, panics caught by recover) with the same {"error": ...} body the
// API uses elsewhere.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	if code >= fiber.StatusInternalServerError {
		requestLogger(c).Error("unhandled request error", "error", err)
	}
	return jsonError(c, code, message)
}
