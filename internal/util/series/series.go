// Package series turns category records into chart-ready series.
package series

import (
	"sort"

	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"github.com/salesboard/backend/internal/model"
)

// FilterByQuarter keeps the records closed in quarter, preserving their order.
// An absent quarter returns records as is.
func FilterByQuarter[T model.Record](records []T, quarter null.String) []T {
	if !quarter.Valid {
		return records
	}
	return lo.Filter(records, func(r T, _ int) bool {
		return r.Quarter() == quarter.String
	})
}

// ToChartSeries projects every record onto a label and a value. The i-th label
// and value both come from the i-th record.
func ToChartSeries[T any](records []T, label func(T) string, value func(T) float64) *model.ChartSeries {
	values := lo.Map(records, func(r T, _ int) float64 {
		return value(r)
	})
	return &model.ChartSeries{
		Labels: lo.Map(records, func(r T, _ int) string {
			return label(r)
		}),
		Values: values,
		Total:  lo.Sum(values),
	}
}

// ForMetric projects records using their own label and the given metric.
func ForMetric[T model.Record](records []T, metric model.Metric) *model.ChartSeries {
	return ToChartSeries(records, func(r T) string {
		return r.Label()
	}, func(r T) float64 {
		return r.Value(metric)
	})
}

func Sum[T model.Record](records []T, metric model.Metric) float64 {
	return lo.Sum(lo.Map(records, func(r T, _ int) float64 {
		return r.Value(metric)
	}))
}

// QuartersOf lists the quarters records were closed in, in record order,
// duplicates included.
func QuartersOf[T model.Record](records []T) []model.FiscalQuarter {
	return lo.Map(records, func(r T, _ int) model.FiscalQuarter {
		return r.Quarter()
	})
}

// DistinctQuartersDesc deduplicates quarters and sorts them latest first.
func DistinctQuartersDesc(quarters ...[]model.FiscalQuarter) []model.FiscalQuarter {
	uniq := lo.Uniq(lo.Flatten(quarters))
	sort.Sort(sort.Reverse(sort.StringSlice(uniq)))
	return uniq
}

// GrowthPercent is the relative change from previous to current, in percent.
// A zero previous yields 0.
func GrowthPercent(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
