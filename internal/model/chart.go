package model

// ChartSeries is the label/value/total triple consumed by the chart renderers.
// Labels[i] and Values[i] always describe the same record.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Total  float64   `json:"total"`
}

// ChartSet is the chart series of every category, keyed by Category.Key.
type ChartSet struct {
	CustomerTypes     *ChartSeries `json:"customerTypes"`
	AccountIndustries *ChartSeries `json:"accountIndustries"`
	Teams             *ChartSeries `json:"teams"`
	ACVRanges         *ChartSeries `json:"acvRanges"`
}

func (s *ChartSet) Put(c Category, series *ChartSeries) {
	switch c {
	case CategoryCustomerType:
		s.CustomerTypes = series
	case CategoryAccountIndustry:
		s.AccountIndustries = series
	case CategoryTeam:
		s.Teams = series
	case CategoryACVRange:
		s.ACVRanges = series
	}
}

func (s *ChartSet) Get(c Category) *ChartSeries {
	switch c {
	case CategoryCustomerType:
		return s.CustomerTypes
	case CategoryAccountIndustry:
		return s.AccountIndustries
	case CategoryTeam:
		return s.Teams
	case CategoryACVRange:
		return s.ACVRanges
	}
	return nil
}
