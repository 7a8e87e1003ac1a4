package model

import (
	"github.com/pkg/errors"
)

// ErrUnknownCategory is returned when a slug or key does not name any category.
var ErrUnknownCategory = errors.New("unknown category")

type Category int

const (
	CategoryCustomerType Category = iota
	CategoryAccountIndustry
	CategoryTeam
	CategoryACVRange
)

// Categories lists every category in the order they appear in aggregate responses.
var Categories = []Category{
	CategoryCustomerType,
	CategoryAccountIndustry,
	CategoryTeam,
	CategoryACVRange,
}

type categoryMeta struct {
	name     string
	key      string
	slug     string
	resource string
	metric   Metric
}

var categoryMetas = map[Category]categoryMeta{
	CategoryCustomerType: {
		name:     "CustomerType",
		key:      "customerTypes",
		slug:     "customer-types",
		resource: "customer-type.json",
		metric:   MetricCount,
	},
	CategoryAccountIndustry: {
		name:     "AccountIndustry",
		key:      "accountIndustries",
		slug:     "account-industries",
		resource: "account-industry.json",
		metric:   MetricCount,
	},
	CategoryTeam: {
		name:     "Team",
		key:      "teams",
		slug:     "teams",
		resource: "team.json",
		metric:   MetricCount,
	},
	CategoryACVRange: {
		name:     "ACVRange",
		key:      "acvRanges",
		slug:     "acv-ranges",
		resource: "acv-range.json",
		metric:   MetricACV,
	},
}

func (c Category) String() string {
	if m, ok := categoryMetas[c]; ok {
		return m.name
	}
	return "Category(unknown)"
}

// Key is the JSON key a category is published under in aggregate responses.
func (c Category) Key() string {
	return categoryMetas[c].key
}

// Slug is the URL path segment of a category.
func (c Category) Slug() string {
	return categoryMetas[c].slug
}

// Resource is the name of the backing data resource holding the category records.
func (c Category) Resource() string {
	return categoryMetas[c].resource
}

// Metric is the value field charted for the category.
func (c Category) Metric() Metric {
	return categoryMetas[c].metric
}

func CategoryFromSlug(slug string) (Category, error) {
	for _, c := range Categories {
		if categoryMetas[c].slug == slug {
			return c, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownCategory, "slug %q", slug)
}
