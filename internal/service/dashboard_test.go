package service

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/salesboard/backend/internal/app/appconfig"
	"github.com/salesboard/backend/internal/model"
	"github.com/salesboard/backend/internal/repo"
	"github.com/salesboard/backend/internal/source"
)

const (
	customerTypesJSON = `[
		{"Cust_Type":"New","count":10,"acv":100,"closed_fiscal_quarter":"2024-Q1"},
		{"Cust_Type":"Existing","count":19,"acv":200,"closed_fiscal_quarter":"2024-Q1"},
		{"Cust_Type":"New","count":8,"acv":80,"closed_fiscal_quarter":"2023-Q4"}
	]`
	accountIndustriesJSON = `[
		{"Acct_Industry":"Retail","count":1,"acv":10,"closed_fiscal_quarter":"2024-Q1"},
		{"Acct_Industry":"Construction","count":4,"acv":40,"closed_fiscal_quarter":"2023-Q2"}
	]`
	teamsJSON = `[
		{"Team":"Europe","count":12,"acv":120,"closed_fiscal_quarter":"2024-Q1"}
	]`
	// counts: 2023-Q3 = 0, 2023-Q4 = 34, 2024-Q1 = 41
	acvRangesJSON = `[
		{"ACV_Range":"<$20K","count":20,"acv":100000,"closed_fiscal_quarter":"2023-Q4"},
		{"ACV_Range":">=$200K","count":14,"acv":3000000,"closed_fiscal_quarter":"2023-Q4"},
		{"ACV_Range":"<$20K","count":25,"acv":150000,"closed_fiscal_quarter":"2024-Q1"},
		{"ACV_Range":">=$200K","count":16,"acv":3450000,"closed_fiscal_quarter":"2024-Q1"}
	]`
)

func newDashboard(t *testing.T, files map[string]string) *Dashboard {
	t.Helper()

	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return newDashboardFrom(source.NewFS("mem", fsys))
}

func newDashboardFrom(src source.Source) *Dashboard {
	conf := &appconfig.Config{}
	return NewDashboard(
		repo.NewCustomerType(src, conf),
		repo.NewAccountIndustry(src, conf),
		repo.NewTeam(src, conf),
		repo.NewACVRange(src, conf),
	)
}

func fullFixture() map[string]string {
	return map[string]string{
		"customer-type.json":    customerTypesJSON,
		"account-industry.json": accountIndustriesJSON,
		"team.json":             teamsJSON,
		"acv-range.json":        acvRangesJSON,
	}
}

func TestGetCategoryChartData(t *testing.T) {
	s := newDashboard(t, fullFixture())
	ctx := context.Background()

	t.Run("customer types in a quarter", func(t *testing.T) {
		chart, err := s.GetCategoryChartData(ctx, model.CategoryCustomerType, null.StringFrom("2024-Q1"))
		require.NoError(t, err)
		assert.Equal(t, &model.ChartSeries{
			Labels: []string{"New", "Existing"},
			Values: []float64{10, 19},
			Total:  29,
		}, chart)
	})

	t.Run("acv ranges chart acv", func(t *testing.T) {
		chart, err := s.GetCategoryChartData(ctx, model.CategoryACVRange, null.StringFrom("2024-Q1"))
		require.NoError(t, err)
		assert.Equal(t, []string{"<$20K", ">=$200K"}, chart.Labels)
		assert.Equal(t, []float64{150000, 3450000}, chart.Values)
		assert.Equal(t, 3600000.0, chart.Total)
	})

	t.Run("no quarter keeps every record", func(t *testing.T) {
		chart, err := s.GetCategoryChartData(ctx, model.CategoryCustomerType, null.String{})
		require.NoError(t, err)
		assert.Equal(t, []string{"New", "Existing", "New"}, chart.Labels)
		assert.Equal(t, 37.0, chart.Total)
	})

	t.Run("unknown quarter is empty", func(t *testing.T) {
		chart, err := s.GetCategoryChartData(ctx, model.CategoryTeam, null.StringFrom("2099-Q9"))
		require.NoError(t, err)
		assert.Equal(t, &model.ChartSeries{Labels: []string{}, Values: []float64{}, Total: 0}, chart)
	})
}

func TestGetCategoryRecordsFilters(t *testing.T) {
	s := newDashboard(t, fullFixture())

	records, err := s.GetCategoryRecords(context.Background(), model.CategoryAccountIndustry, null.StringFrom("2023-Q2"))
	require.NoError(t, err)

	industries, ok := records.([]*model.AccountIndustry)
	require.True(t, ok)
	require.Len(t, industries, 1)
	assert.Equal(t, "Construction", industries[0].Industry)
}

func TestGetAllChartData(t *testing.T) {
	t.Run("every category", func(t *testing.T) {
		set, err := newDashboard(t, fullFixture()).GetAllChartData(context.Background(), null.StringFrom("2024-Q1"))
		require.NoError(t, err)

		assert.Equal(t, 29.0, set.CustomerTypes.Total)
		assert.Equal(t, 1.0, set.AccountIndustries.Total)
		assert.Equal(t, 12.0, set.Teams.Total)
		assert.Equal(t, 3600000.0, set.ACVRanges.Total)
		for _, c := range model.Categories {
			assert.NotNil(t, set.Get(c), c.String())
		}
	})

	t.Run("one missing category fails the call", func(t *testing.T) {
		files := fullFixture()
		delete(files, "team.json")

		set, err := newDashboard(t, files).GetAllChartData(context.Background(), null.String{})
		assert.ErrorIs(t, err, source.ErrSourceUnavailable)
		assert.Nil(t, set)
	})
}

func TestGetDashboardSnapshot(t *testing.T) {
	t.Run("unfiltered collections", func(t *testing.T) {
		snapshot, err := newDashboard(t, fullFixture()).GetDashboardSnapshot(context.Background())
		require.NoError(t, err)

		assert.Len(t, snapshot.CustomerTypes, 3)
		assert.Len(t, snapshot.AccountIndustries, 2)
		assert.Len(t, snapshot.Teams, 1)
		assert.Len(t, snapshot.ACVRanges, 4)
	})

	t.Run("fails without partial data", func(t *testing.T) {
		files := fullFixture()
		files["acv-range.json"] = `[{`

		snapshot, err := newDashboard(t, files).GetDashboardSnapshot(context.Background())
		assert.ErrorIs(t, err, source.ErrSourceUnavailable)
		assert.Nil(t, snapshot)
	})
}

func TestGetQuarterOverQuarterGrowth(t *testing.T) {
	s := newDashboard(t, fullFixture())
	ctx := context.Background()

	type testCase struct {
		name    string
		quarter string
		metric  model.Metric
		expect  float64
	}

	testCases := []testCase{
		{name: "first known quarter", quarter: "2023-Q3", metric: model.MetricCount, expect: 0},
		{name: "unknown quarter", quarter: "2099-Q9", metric: model.MetricCount, expect: 0},
		{name: "count growth", quarter: "2024-Q1", metric: model.MetricCount, expect: (41.0 - 34.0) / 34.0 * 100},
		{name: "acv growth", quarter: "2024-Q1", metric: model.MetricACV, expect: (3600000.0 - 3100000.0) / 3100000.0 * 100},
		{name: "previous total is zero", quarter: "2023-Q4", metric: model.MetricCount, expect: 0},
		{name: "no data in current quarter", quarter: "2024-Q2", metric: model.MetricACV, expect: -100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			growth, err := s.GetQuarterOverQuarterGrowth(ctx, tc.quarter, tc.metric)
			require.NoError(t, err)
			assert.InDelta(t, tc.expect, growth, 1e-9)
		})
	}

	growth, err := s.GetQuarterOverQuarterGrowth(ctx, "2024-Q1", model.MetricCount)
	require.NoError(t, err)
	assert.InDelta(t, 20.59, growth, 0.01)
}

func TestGetGrowthDoesNotReadWithoutPredecessor(t *testing.T) {
	s := newDashboard(t, map[string]string{})

	result, err := s.GetGrowth(context.Background(), "2023-Q3", model.MetricACV)
	require.NoError(t, err)
	assert.Equal(t, &model.Growth{Quarter: "2023-Q3", Metric: model.MetricACV}, result)

	_, err = s.GetGrowth(context.Background(), "2023-Q4", model.MetricACV)
	assert.ErrorIs(t, err, source.ErrSourceUnavailable)
}

func TestGetTotals(t *testing.T) {
	totals, err := newDashboard(t, fullFixture()).GetTotals(context.Background(), "2023-Q4")
	require.NoError(t, err)
	assert.Equal(t, &model.Totals{Quarter: "2023-Q4", TotalCount: 34, TotalACV: 3100000}, totals)
}

func TestGetQuarters(t *testing.T) {
	quarters, err := newDashboard(t, fullFixture()).GetQuarters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-Q1", "2023-Q4", "2023-Q2"}, quarters)
}

func TestEmbeddedDataset(t *testing.T) {
	s := newDashboardFrom(source.Embedded())
	ctx := context.Background()

	quarters, err := s.GetQuarters(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-Q2", "2024-Q1", "2023-Q4", "2023-Q3"}, quarters)

	growth, err := s.GetQuarterOverQuarterGrowth(ctx, "2024-Q2", model.MetricCount)
	require.NoError(t, err)
	assert.InDelta(t, (41.0-29.0)/29.0*100, growth, 1e-9)

	for _, q := range model.KnownQuarters {
		set, err := s.GetAllChartData(ctx, null.StringFrom(q))
		require.NoError(t, err)
		assert.NotEmpty(t, set.CustomerTypes.Labels, q)
		assert.Len(t, set.ACVRanges.Values, len(set.ACVRanges.Labels), q)
	}
}

func TestFlushCache(t *testing.T) {
	fsys := fstest.MapFS{}
	for name, content := range fullFixture() {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	conf := &appconfig.Config{}
	conf.SourceCacheTTL = time.Hour
	src := source.NewFS("mem", fsys)
	s := NewDashboard(
		repo.NewCustomerType(src, conf),
		repo.NewAccountIndustry(src, conf),
		repo.NewTeam(src, conf),
		repo.NewACVRange(src, conf),
	)
	ctx := context.Background()

	chart, err := s.GetCategoryChartData(ctx, model.CategoryTeam, null.String{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Europe"}, chart.Labels)

	fsys["team.json"] = &fstest.MapFile{Data: []byte(`[{"Team":"Asia","count":3,"acv":30,"closed_fiscal_quarter":"2024-Q1"}]`)}

	chart, err = s.GetCategoryChartData(ctx, model.CategoryTeam, null.String{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Europe"}, chart.Labels, "served from cache")

	require.NoError(t, s.FlushCache())

	chart, err = s.GetCategoryChartData(ctx, model.CategoryTeam, null.String{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Asia"}, chart.Labels)
}
