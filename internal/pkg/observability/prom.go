package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "salesboard"
)

var (
	SourceReadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "source", "read_duration_seconds"),
		Help:    "Duration of reading a category resource from the data source in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"source", "resource"})
	SourceReadErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "source", "read_errors_total"),
		Help: "Number of failed category resource reads",
	}, []string{"source", "resource"})
	RecordsLoaded = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "repo", "records_loaded"),
		Help: "Number of records in the last decoded collection of a category",
	}, []string{"category"})
	ChartSeriesBuilt = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "pipeline", "chart_series_built_total"),
		Help: "Number of chart series built, by category and whether a quarter filter applied",
	}, []string{"category", "filtered"})
)
