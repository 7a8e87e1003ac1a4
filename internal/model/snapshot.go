package model

// DashboardSnapshot bundles the raw records of all four categories.
type DashboardSnapshot struct {
	CustomerTypes     []*CustomerType    `json:"customerTypes"`
	AccountIndustries []*AccountIndustry `json:"accountIndustries"`
	Teams             []*Team            `json:"teams"`
	ACVRanges         []*ACVRange        `json:"acvRanges"`
}

// Totals sums the ACV range collection of a single quarter.
type Totals struct {
	Quarter    FiscalQuarter `json:"quarter"`
	TotalCount float64       `json:"totalCount"`
	TotalACV   float64       `json:"totalAcv"`
}

// Growth describes the quarter-over-quarter change of a metric.
// PreviousQuarter is empty when the quarter has no known predecessor.
type Growth struct {
	Quarter         FiscalQuarter `json:"quarter"`
	PreviousQuarter FiscalQuarter `json:"previousQuarter,omitempty"`
	Metric          Metric        `json:"metric"`
	Current         float64       `json:"current"`
	Previous        float64       `json:"previous"`
	Growth          float64       `json:"growth"`
}
