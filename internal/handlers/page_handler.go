package handlers

import (
	"github.com/gofiber/fiber/v2"

	"worklog-service/internal/web"
)

// Index serves the landing page.
func Index(c *fiber.Ctx) error {
	page, err := web.IndexHTML()
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusOK).Send(page)
}
