package app

import (
	"testing"
	"time"

	"github.com/cremerie-alijs/storefront/internal/theme"
)

func TestMergeSpans(t *testing.T) {
	var spans []theme.Span
	for year := 2024; year <= 2025; year++ {
		spans = append(spans, filterSpans(theme.Schedule(year), false)...)
	}
	merged := mergeSpans(spans)

	var christmas []theme.DateRange
	for _, s := range merged {
		if s.Theme == theme.Christmas {
			christmas = append(christmas, s.Range)
		}
	}

	want := []theme.DateRange{
		{Start: theme.Date{Year: 2024, Month: time.January, Day: 1}, End: theme.Date{Year: 2024, Month: time.January, Day: 1}},
		{Start: theme.Date{Year: 2024, Month: time.December, Day: 6}, End: theme.Date{Year: 2025, Month: time.January, Day: 1}},
		{Start: theme.Date{Year: 2025, Month: time.December, Day: 6}, End: theme.Date{Year: 2025, Month: time.December, Day: 31}},
	}
	if len(christmas) != len(want) {
		t.Fatalf("got %d christmas spans, want %d: %v", len(christmas), len(want), christmas)
	}
	for i := range want {
		if christmas[i] != want[i] {
			t.Errorf("span %d = %s..%s, want %s..%s", i, christmas[i].Start, christmas[i].End, want[i].Start, want[i].End)
		}
	}

	// Same theme without adjacent days stays split
	gap := []theme.Span{
		{Theme: theme.Winter, Range: theme.DateRange{Start: theme.Date{Year: 2025, Month: time.January, Day: 2}, End: theme.Date{Year: 2025, Month: time.February, Day: 13}}},
		{Theme: theme.Winter, Range: theme.DateRange{Start: theme.Date{Year: 2025, Month: time.February, Day: 15}, End: theme.Date{Year: 2025, Month: time.March, Day: 31}}},
	}
	if got := mergeSpans(gap); len(got) != 2 {
		t.Errorf("mergeSpans() joined non-adjacent spans: %v", got)
	}
}
