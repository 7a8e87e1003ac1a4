package service

import (
	"github.com/pkg/errors"

	"github.com/salesboard/backend/internal/model"
)

var ErrUnknownTheme = errors.New("unknown chart theme")

// DefaultTheme is the theme the dashboard starts with.
const DefaultTheme = "modern"

var chartThemes = map[string]*model.ChartTheme{
	"modern": {
		Name: "Modern",
		Colors: []string{
			"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEEAD",
			"#D4A5A5", "#9A7AA0", "#87A8A4", "#F9D5BB", "#A8E6CF",
		},
	},
	"sunset": {
		Name: "Sunset",
		Colors: []string{
			"#FF9A8B", "#FF6B6B", "#FFA07A", "#FFB347", "#FFD700",
			"#FFA500", "#FF8C00", "#FF7F50", "#FF6347", "#FF4500",
		},
	},
}

// Theme serves the colour palettes offered by the dashboard theme selector.
type Theme struct{}

func NewTheme() *Theme {
	return &Theme{}
}

func (s *Theme) GetThemes() map[string]*model.ChartTheme {
	return chartThemes
}

func (s *Theme) GetTheme(id string) (*model.ChartTheme, error) {
	theme, ok := chartThemes[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTheme, "theme %q", id)
	}
	return theme, nil
}
