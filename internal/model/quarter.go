package model

import (
	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"
)

// FiscalQuarter identifies a reporting period, formatted as YYYY-Q[1-4].
type FiscalQuarter = string

// KnownQuarters is the ascending sequence used to find the previous quarter
// in quarter-over-quarter growth.
var KnownQuarters = []FiscalQuarter{"2023-Q3", "2023-Q4", "2024-Q1", "2024-Q2"}

// PreviousQuarter returns the known quarter right before q. ok is false for the
// first known quarter and for quarters outside KnownQuarters.
func PreviousQuarter(q FiscalQuarter) (prev FiscalQuarter, ok bool) {
	idx := lo.IndexOf(KnownQuarters, q)
	if idx <= 0 {
		return "", false
	}
	return KnownQuarters[idx-1], true
}

// QuarterFilter builds an optional quarter filter from a raw query value.
// An empty value means no filter.
func QuarterFilter(raw string) null.String {
	return null.NewString(raw, raw != "")
}
