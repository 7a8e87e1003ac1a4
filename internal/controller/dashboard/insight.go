package dashboard

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/salesboard/backend/internal/model"
	"github.com/salesboard/backend/internal/pkg/apierr"
	"github.com/salesboard/backend/internal/server/svr"
	"github.com/salesboard/backend/internal/service"
	"github.com/salesboard/backend/internal/util/rekuest"
)

type Insight struct {
	fx.In

	DashboardService *service.Dashboard
	ThemeService     *service.Theme
}

type TotalsQuery struct {
	Quarter string `query:"quarter" validate:"required,fiscalquarter"`
}

type GrowthQuery struct {
	Quarter string `query:"quarter" validate:"required,fiscalquarter"`
	Metric  string `query:"metric" validate:"required,caseinsensitiveoneof=count acv"`
}

func RegisterInsight(dashboard *svr.Dashboard, c Insight) {
	dashboard.Get("/quarters", c.GetQuarters)
	dashboard.Get("/totals", c.GetTotals)
	dashboard.Get("/growth", c.GetGrowth)

	dashboard.Get("/themes", c.GetThemes)
	dashboard.Get("/themes/:theme", c.GetTheme)
}

func (c *Insight) GetQuarters(ctx *fiber.Ctx) error {
	quarters, err := c.DashboardService.GetQuarters(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(quarters)
}

func (c *Insight) GetTotals(ctx *fiber.Ctx) error {
	var query TotalsQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}

	totals, err := c.DashboardService.GetTotals(ctx.UserContext(), query.Quarter)
	if err != nil {
		return err
	}

	return ctx.JSON(totals)
}

func (c *Insight) GetGrowth(ctx *fiber.Ctx) error {
	var query GrowthQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}

	growth, err := c.DashboardService.GetGrowth(ctx.UserContext(), query.Quarter, model.Metric(strings.ToLower(query.Metric)))
	if err != nil {
		return err
	}

	return ctx.JSON(growth)
}

func (c *Insight) GetThemes(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"default": service.DefaultTheme,
		"themes":  c.ThemeService.GetThemes(),
	})
}

func (c *Insight) GetTheme(ctx *fiber.Ctx) error {
	id := ctx.Params("theme")

	theme, err := c.ThemeService.GetTheme(id)
	if err != nil {
		return apierr.ErrNotFound.Msg("unknown theme %q", id)
	}

	return ctx.JSON(theme)
}
