package inspect

import (
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/salesboard/backend/internal/model"
)

func run(ctx *cli.Context, deps CommandDeps) error {
	quarter := model.QuarterFilter(ctx.String("quarter"))

	var result any
	if slug := ctx.String("category"); slug != "" {
		category, err := model.CategoryFromSlug(slug)
		if err != nil {
			return err
		}
		result, err = deps.DashboardService.GetCategoryChartData(ctx.Context, category, quarter)
		if err != nil {
			return err
		}
	} else {
		set, err := deps.DashboardService.GetAllChartData(ctx.Context, quarter)
		if err != nil {
			return err
		}
		result = set
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode chart data")
	}

	_, err = ctx.App.Writer.Write(append(out, '\n'))
	return err
}
