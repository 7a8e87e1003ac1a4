package verify

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/salesboard/backend/internal/model"
	"github.com/salesboard/backend/internal/util/series"
)

type Line struct {
	Category string
	Records  int
	Quarters map[model.FiscalQuarter]int
}

func line[T model.Record](c model.Category, records []T) Line {
	return Line{
		Category: c.Slug(),
		Records:  len(records),
		Quarters: lo.MapValues(lo.GroupBy(series.QuartersOf(records), func(q model.FiscalQuarter) model.FiscalQuarter {
			return q
		}), func(qs []model.FiscalQuarter, _ model.FiscalQuarter) int {
			return len(qs)
		}),
	}
}

func run(ctx *cli.Context, deps CommandDeps) ([]Line, error) {
	snapshot, err := deps.DashboardService.GetDashboardSnapshot(ctx.Context)
	if err != nil {
		return nil, errors.Wrap(err, "verification failed")
	}

	return []Line{
		line(model.CategoryCustomerType, snapshot.CustomerTypes),
		line(model.CategoryAccountIndustry, snapshot.AccountIndustries),
		line(model.CategoryTeam, snapshot.Teams),
		line(model.CategoryACVRange, snapshot.ACVRanges),
	}, nil
}
