package model

import (
	"gopkg.in/guregu/null.v3"
)

// Record is one row of a category collection.
type Record interface {
	Label() string
	Quarter() FiscalQuarter
	Value(m Metric) float64
}

// Measures are the columns shared by every category record.
type Measures struct {
	Count         int           `json:"count"`
	ACV           float64       `json:"acv"`
	FiscalQuarter FiscalQuarter `json:"closed_fiscal_quarter"`
}

func (m Measures) Quarter() FiscalQuarter {
	return m.FiscalQuarter
}

func (m Measures) Value(metric Metric) float64 {
	if metric == MetricACV {
		return m.ACV
	}
	return float64(m.Count)
}

type CustomerType struct {
	CustomerType string `json:"Cust_Type"`
	Measures
}

func (r CustomerType) Label() string { return r.CustomerType }

type AccountIndustry struct {
	Industry      string     `json:"Acct_Industry"`
	QueryKey      string     `json:"query_key,omitempty"`
	TotalQuantity null.Float `json:"Total_Quantity"`
	Measures
}

func (r AccountIndustry) Label() string { return r.Industry }

type Team struct {
	Team string `json:"Team"`
	Measures
}

func (r Team) Label() string { return r.Team }

type ACVRange struct {
	ACVRangeLabel string `json:"ACV_Range"`
	Measures
}

func (r ACVRange) Label() string { return r.ACVRangeLabel }
