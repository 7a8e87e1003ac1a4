package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"gopkg.in/guregu/null.v3"

	"github.com/salesboard/backend/internal/app/appconfig"
	"github.com/salesboard/backend/internal/model"
	"github.com/salesboard/backend/internal/pkg/apierr"
	"github.com/salesboard/backend/internal/pkg/cachectrl"
	"github.com/salesboard/backend/internal/server/svr"
	"github.com/salesboard/backend/internal/service"
)

type Dashboard struct {
	fx.In

	Config           *appconfig.Config
	DashboardService *service.Dashboard
}

func RegisterDashboard(dashboard *svr.Dashboard, c Dashboard) {
	dashboard.Get("/", c.GetDashboardSnapshot)

	dashboard.Get("/charts", c.GetAllChartData)
	dashboard.Get("/charts/:category", c.GetCategoryChartData)

	dashboard.Get("/:category", c.GetCategoryRecords)
}

func quarterFilter(ctx *fiber.Ctx) null.String {
	return model.QuarterFilter(ctx.Query("quarter"))
}

func categoryParam(ctx *fiber.Ctx) (model.Category, error) {
	slug := ctx.Params("category")
	category, err := model.CategoryFromSlug(slug)
	if err != nil {
		return 0, apierr.ErrNotFound.Msg("unknown category %q", slug)
	}
	return category, nil
}

// GetDashboardSnapshot returns all four record collections, unfiltered.
func (c *Dashboard) GetDashboardSnapshot(ctx *fiber.Ctx) error {
	snapshot, err := c.DashboardService.GetDashboardSnapshot(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(snapshot)
}

func (c *Dashboard) GetAllChartData(ctx *fiber.Ctx) error {
	set, err := c.DashboardService.GetAllChartData(ctx.UserContext(), quarterFilter(ctx))
	if err != nil {
		return err
	}

	cachectrl.OptIn(ctx, time.Now(), c.Config.ChartCacheMaxAge)
	return ctx.JSON(set)
}

func (c *Dashboard) GetCategoryChartData(ctx *fiber.Ctx) error {
	category, err := categoryParam(ctx)
	if err != nil {
		return err
	}

	chart, err := c.DashboardService.GetCategoryChartData(ctx.UserContext(), category, quarterFilter(ctx))
	if err != nil {
		return err
	}

	cachectrl.OptIn(ctx, time.Now(), c.Config.ChartCacheMaxAge)
	return ctx.JSON(chart)
}

func (c *Dashboard) GetCategoryRecords(ctx *fiber.Ctx) error {
	category, err := categoryParam(ctx)
	if err != nil {
		return err
	}

	records, err := c.DashboardService.GetCategoryRecords(ctx.UserContext(), category, quarterFilter(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(records)
}
