package app

import "github.com/cremerie-alijs/storefront/internal/theme"

// ThemeInfo is the resolved theme for one day
type ThemeInfo struct {
	Date    string      `json:"date"`
	Theme   theme.Theme `json:"theme"`
	Name    string      `json:"name"`
	Tagline string      `json:"tagline"`
}

// SpanInfo is a run of days sharing a theme, both ends inclusive
type SpanInfo struct {
	Theme theme.Theme `json:"theme"`
	Name  string      `json:"name"`
	Start string      `json:"start"`
	End   string      `json:"end"`
	Days  int         `json:"days"`
}

// HolidayInfo lists the moving holidays of a year
type HolidayInfo struct {
	Year         int    `json:"year"`
	EasterSunday string `json:"easter_sunday"`
	EasterStart  string `json:"easter_start"`
	EasterEnd    string `json:"easter_end"`
	MothersDay   string `json:"mothers_day"`
}

// TaglineData is the on-disk tagline table
type TaglineData struct {
	Taglines theme.Taglines    `json:"taglines"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

func newSpanInfo(s theme.Span) SpanInfo {
	return SpanInfo{
		Theme: s.Theme,
		Name:  ThemeNames[s.Theme],
		Start: s.Range.Start.String(),
		End:   s.Range.End.String(),
		Days:  s.Range.Days(),
	}
}
