package model

type ChartTheme struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}
