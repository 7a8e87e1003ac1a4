package service

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gopkg.in/guregu/null.v3"

	"github.com/salesboard/backend/internal/model"
	"github.com/salesboard/backend/internal/pkg/observability"
	"github.com/salesboard/backend/internal/repo"
	"github.com/salesboard/backend/internal/util/series"
)

// Dashboard is the aggregation pipeline over the four category collections.
// It holds no state of its own; every call builds its results from scratch.
type Dashboard struct {
	CustomerTypeRepo    *repo.CustomerType
	AccountIndustryRepo *repo.AccountIndustry
	TeamRepo            *repo.Team
	ACVRangeRepo        *repo.ACVRange
}

func NewDashboard(customerTypeRepo *repo.CustomerType, accountIndustryRepo *repo.AccountIndustry, teamRepo *repo.Team, acvRangeRepo *repo.ACVRange) *Dashboard {
	return &Dashboard{
		CustomerTypeRepo:    customerTypeRepo,
		AccountIndustryRepo: accountIndustryRepo,
		TeamRepo:            teamRepo,
		ACVRangeRepo:        acvRangeRepo,
	}
}

func (s *Dashboard) GetCustomerTypes(ctx context.Context, quarter null.String) ([]*model.CustomerType, error) {
	records, err := s.CustomerTypeRepo.GetCustomerTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get customer types")
	}
	return series.FilterByQuarter(records, quarter), nil
}

func (s *Dashboard) GetAccountIndustries(ctx context.Context, quarter null.String) ([]*model.AccountIndustry, error) {
	records, err := s.AccountIndustryRepo.GetAccountIndustries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get account industries")
	}
	return series.FilterByQuarter(records, quarter), nil
}

func (s *Dashboard) GetTeams(ctx context.Context, quarter null.String) ([]*model.Team, error) {
	records, err := s.TeamRepo.GetTeams(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get teams")
	}
	return series.FilterByQuarter(records, quarter), nil
}

func (s *Dashboard) GetACVRanges(ctx context.Context, quarter null.String) ([]*model.ACVRange, error) {
	records, err := s.ACVRangeRepo.GetACVRanges(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get acv ranges")
	}
	return series.FilterByQuarter(records, quarter), nil
}

// FlushCache drops the cached collections of every category.
func (s *Dashboard) FlushCache() error {
	for _, flush := range []func() error{
		s.CustomerTypeRepo.Flush,
		s.AccountIndustryRepo.Flush,
		s.TeamRepo.Flush,
		s.ACVRangeRepo.Flush,
	} {
		if err := flush(); err != nil {
			return errors.Wrap(err, "failed to flush record cache")
		}
	}
	return nil
}

// GetCategoryRecords returns the quarter-filtered records of category c as a
// slice of its concrete record type.
func (s *Dashboard) GetCategoryRecords(ctx context.Context, c model.Category, quarter null.String) (any, error) {
	switch c {
	case model.CategoryCustomerType:
		return s.GetCustomerTypes(ctx, quarter)
	case model.CategoryAccountIndustry:
		return s.GetAccountIndustries(ctx, quarter)
	case model.CategoryTeam:
		return s.GetTeams(ctx, quarter)
	case model.CategoryACVRange:
		return s.GetACVRanges(ctx, quarter)
	}
	return nil, errors.WithStack(model.ErrUnknownCategory)
}

func chartOf[T model.Record](c model.Category, quarter null.String, records []T, err error) (*model.ChartSeries, error) {
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s chart data", c)
	}
	observability.ChartSeriesBuilt.WithLabelValues(c.String(), strconv.FormatBool(quarter.Valid)).Inc()
	return series.ForMetric(records, c.Metric()), nil
}

// GetCategoryChartData builds the chart series of category c, using the label
// and metric bound to the category.
func (s *Dashboard) GetCategoryChartData(ctx context.Context, c model.Category, quarter null.String) (*model.ChartSeries, error) {
	switch c {
	case model.CategoryCustomerType:
		records, err := s.GetCustomerTypes(ctx, quarter)
		return chartOf(c, quarter, records, err)
	case model.CategoryAccountIndustry:
		records, err := s.GetAccountIndustries(ctx, quarter)
		return chartOf(c, quarter, records, err)
	case model.CategoryTeam:
		records, err := s.GetTeams(ctx, quarter)
		return chartOf(c, quarter, records, err)
	case model.CategoryACVRange:
		records, err := s.GetACVRanges(ctx, quarter)
		return chartOf(c, quarter, records, err)
	}
	return nil, errors.WithStack(model.ErrUnknownCategory)
}

// GetAllChartData builds the chart series of every category. The first failing
// category fails the whole call.
func (s *Dashboard) GetAllChartData(ctx context.Context, quarter null.String) (*model.ChartSet, error) {
	set := &model.ChartSet{}
	for _, c := range model.Categories {
		chart, err := s.GetCategoryChartData(ctx, c, quarter)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get all chart data")
		}
		set.Put(c, chart)
	}
	return set, nil
}

// GetDashboardSnapshot loads the four collections concurrently, unfiltered.
func (s *Dashboard) GetDashboardSnapshot(ctx context.Context) (*model.DashboardSnapshot, error) {
	var snapshot model.DashboardSnapshot
	all := null.String{}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		snapshot.CustomerTypes, err = s.GetCustomerTypes(ctx, all)
		return err
	})
	eg.Go(func() (err error) {
		snapshot.AccountIndustries, err = s.GetAccountIndustries(ctx, all)
		return err
	})
	eg.Go(func() (err error) {
		snapshot.Teams, err = s.GetTeams(ctx, all)
		return err
	})
	eg.Go(func() (err error) {
		snapshot.ACVRanges, err = s.GetACVRanges(ctx, all)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to get dashboard data")
	}
	return &snapshot, nil
}

// GetQuarters lists every quarter present in any collection, latest first.
func (s *Dashboard) GetQuarters(ctx context.Context) ([]model.FiscalQuarter, error) {
	snapshot, err := s.GetDashboardSnapshot(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get quarters")
	}
	return series.DistinctQuartersDesc(
		series.QuartersOf(snapshot.CustomerTypes),
		series.QuartersOf(snapshot.AccountIndustries),
		series.QuartersOf(snapshot.Teams),
		series.QuartersOf(snapshot.ACVRanges),
	), nil
}

// GetTotals sums deal count and ACV of a quarter over the ACV range collection.
func (s *Dashboard) GetTotals(ctx context.Context, quarter model.FiscalQuarter) (*model.Totals, error) {
	records, err := s.GetACVRanges(ctx, null.StringFrom(quarter))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get totals")
	}
	return &model.Totals{
		Quarter:    quarter,
		TotalCount: series.Sum(records, model.MetricCount),
		TotalACV:   series.Sum(records, model.MetricACV),
	}, nil
}

// GetGrowth compares metric between quarter and the known quarter before it,
// over the ACV range collection. Growth is 0 when quarter has no known
// predecessor or the previous total is 0.
func (s *Dashboard) GetGrowth(ctx context.Context, quarter model.FiscalQuarter, metric model.Metric) (*model.Growth, error) {
	result := &model.Growth{
		Quarter: quarter,
		Metric:  metric,
	}

	prev, ok := model.PreviousQuarter(quarter)
	if !ok {
		return result, nil
	}
	result.PreviousQuarter = prev

	records, err := s.ACVRangeRepo.GetACVRanges(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get quarter over quarter growth")
	}

	result.Current = series.Sum(series.FilterByQuarter(records, null.StringFrom(quarter)), metric)
	result.Previous = series.Sum(series.FilterByQuarter(records, null.StringFrom(prev)), metric)
	result.Growth = series.GrowthPercent(result.Current, result.Previous)
	return result, nil
}

func (s *Dashboard) GetQuarterOverQuarterGrowth(ctx context.Context, quarter model.FiscalQuarter, metric model.Metric) (float64, error) {
	result, err := s.GetGrowth(ctx, quarter, metric)
	if err != nil {
		return 0, err
	}
	return result.Growth, nil
}
