package meta

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/salesboard/backend/internal/server/svr"
	"github.com/salesboard/backend/internal/service"
)

type AdminController struct {
	fx.In

	DashboardService *service.Dashboard
}

func RegisterAdmin(admin *svr.Admin, c AdminController) {
	admin.Post("/cache/flush", c.FlushCache)
}

// FlushCache drops every decoded collection so the next request reads the
// data source again.
func (c *AdminController) FlushCache(ctx *fiber.Ctx) error {
	if err := c.DashboardService.FlushCache(); err != nil {
		return err
	}

	log.Info().Str("evt.name", "admin.cache.flush").Msg("record cache flushed")

	return ctx.JSON(fiber.Map{
		"status": "flushed",
	})
}
