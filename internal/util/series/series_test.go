package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/guregu/null.v3"

	"github.com/salesboard/backend/internal/model"
)

func customerType(label string, count int, quarter string) *model.CustomerType {
	return &model.CustomerType{
		CustomerType: label,
		Measures:     model.Measures{Count: count, FiscalQuarter: quarter},
	}
}

func fixture() []*model.CustomerType {
	return []*model.CustomerType{
		customerType("New", 10, "2024-Q1"),
		customerType("Existing", 19, "2024-Q1"),
		customerType("New", 8, "2023-Q4"),
		customerType("Existing", 15, "2023-Q4"),
	}
}

func TestFilterByQuarter(t *testing.T) {
	records := fixture()

	t.Run("absent quarter is identity", func(t *testing.T) {
		got := FilterByQuarter(records, null.String{})
		assert.Equal(t, records, got)
		assert.Same(t, &records[0], &got[0])
	})

	t.Run("keeps matching records in order", func(t *testing.T) {
		got := FilterByQuarter(records, null.StringFrom("2023-Q4"))
		assert.Equal(t, []*model.CustomerType{records[2], records[3]}, got)
		for _, r := range got {
			assert.Equal(t, "2023-Q4", r.Quarter())
		}
	})

	t.Run("unknown quarter is empty, not nil", func(t *testing.T) {
		got := FilterByQuarter(records, null.StringFrom("2099-Q9"))
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestForMetric(t *testing.T) {
	type testCase struct {
		name    string
		quarter null.String
		expect  *model.ChartSeries
	}

	testCases := []testCase{
		{
			name:    "single quarter",
			quarter: null.StringFrom("2024-Q1"),
			expect: &model.ChartSeries{
				Labels: []string{"New", "Existing"},
				Values: []float64{10, 19},
				Total:  29,
			},
		},
		{
			name: "all quarters",
			expect: &model.ChartSeries{
				Labels: []string{"New", "Existing", "New", "Existing"},
				Values: []float64{10, 19, 8, 15},
				Total:  52,
			},
		},
		{
			name:    "no matches",
			quarter: null.StringFrom("2099-Q9"),
			expect: &model.ChartSeries{
				Labels: []string{},
				Values: []float64{},
				Total:  0,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ForMetric(FilterByQuarter(fixture(), tc.quarter), model.MetricCount)
			assert.Equal(t, tc.expect, got)
			assert.Len(t, got.Values, len(got.Labels))
		})
	}
}

func TestToChartSeriesGenericFields(t *testing.T) {
	type row struct {
		name string
		amt  float64
	}
	rows := []row{{"a", 1.5}, {"b", 2.25}}

	got := ToChartSeries(rows, func(r row) string { return r.name }, func(r row) float64 { return r.amt })

	assert.Equal(t, []string{"a", "b"}, got.Labels)
	assert.Equal(t, []float64{1.5, 2.25}, got.Values)
	assert.Equal(t, 3.75, got.Total)
}

func TestSum(t *testing.T) {
	ranges := []*model.ACVRange{
		{ACVRangeLabel: "<$20K", Measures: model.Measures{Count: 2, ACV: 25000}},
		{ACVRangeLabel: ">=$200K", Measures: model.Measures{Count: 3, ACV: 900000}},
	}

	assert.Equal(t, 5.0, Sum(ranges, model.MetricCount))
	assert.Equal(t, 925000.0, Sum(ranges, model.MetricACV))
	assert.Equal(t, 0.0, Sum([]*model.ACVRange{}, model.MetricACV))
}

func TestDistinctQuartersDesc(t *testing.T) {
	got := DistinctQuartersDesc(
		QuartersOf(fixture()),
		[]model.FiscalQuarter{"2023-Q3", "2024-Q1"},
	)
	assert.Equal(t, []model.FiscalQuarter{"2024-Q1", "2023-Q4", "2023-Q3"}, got)
}

func TestGrowthPercent(t *testing.T) {
	assert.InDelta(t, 20.588, GrowthPercent(41, 34), 0.001)
	assert.InDelta(t, -50.0, GrowthPercent(5, 10), 1e-9)
	assert.Equal(t, 0.0, GrowthPercent(12, 0))
}
