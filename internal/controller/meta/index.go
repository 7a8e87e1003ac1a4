package meta

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salesboard/backend/internal/pkg/bininfo"
)

func RegisterIndex(app *fiber.App) {
	app.Get("/api", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"@link":   "/api/dashboard",
			"message": "Welcome to Salesboard API",
			"version": bininfo.Version,
		})
	})
}
