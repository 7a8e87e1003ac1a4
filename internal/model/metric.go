package model

import (
	"github.com/pkg/errors"
)

var ErrUnknownMetric = errors.New("unknown metric")

type Metric string

const (
	MetricCount Metric = "count"
	MetricACV   Metric = "acv"
)

func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricCount, MetricACV:
		return Metric(s), nil
	}
	return "", errors.Wrapf(ErrUnknownMetric, "metric %q", s)
}
