package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func HealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "ok",
		"message":   "worklog-service is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
