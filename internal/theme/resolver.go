package theme

import "time"

// Rule associates a theme with the days it claims. Lower Priority wins.
type Rule struct {
	Theme    Theme
	Priority int
	Match    func(Date) bool
}

// Rules returns the evaluation order for the given year. Named holidays come
// before the broad summer and winter bands, and winter matches every day.
func Rules(year int) []Rule {
	easter := EasterWindow(year)
	mothersDay := MothersDay(year)

	rules := []Rule{
		{Theme: Valentines, Match: func(d Date) bool {
			return d.Month == time.February && d.Day == 14
		}},
		{Theme: Easter, Match: easter.Contains},
		{Theme: Mothersday, Match: mothersDay.Equal},
		{Theme: Midsummer, Match: func(d Date) bool {
			return d.Month == time.June && d.Day == 21
		}},
		{Theme: National, Match: func(d Date) bool {
			return d.Month == time.July && d.Day == 21
		}},
		// October 15 through November 1
		{Theme: Halloween, Match: func(d Date) bool {
			return (d.Month == time.October && d.Day >= 15) ||
				(d.Month == time.November && d.Day == 1)
		}},
		{Theme: Sinterklaas, Match: func(d Date) bool {
			return d.Month == time.December && d.Day >= 1 && d.Day <= 5
		}},
		// December 6 through January 1, checked without looking at the year
		{Theme: Christmas, Match: func(d Date) bool {
			return (d.Month == time.December && d.Day >= 6) ||
				(d.Month == time.January && d.Day == 1)
		}},
		{Theme: Summer, Match: func(d Date) bool {
			return d.Month >= time.April && d.Month <= time.October
		}},
		{Theme: Winter, Match: func(Date) bool { return true }},
	}
	for i := range rules {
		rules[i].Priority = i + 1
	}
	return rules
}

// Match returns the theme of the first rule that claims d. The boolean is
// false when no rule matches.
func Match(rules []Rule, d Date) (Theme, bool) {
	for _, r := range rules {
		if r.Match(d) {
			return r.Theme, true
		}
	}
	return "", false
}

// Resolve returns the theme for the given day.
func Resolve(d Date) Theme {
	if t, ok := Match(Rules(d.Year), d); ok {
		return t
	}
	return Winter
}

// ResolveTime resolves the calendar day of t in t's location.
func ResolveTime(t time.Time) Theme {
	return Resolve(DateOf(t))
}

// Today returns the local calendar day of now.
func Today(now time.Time) Date {
	return DateOf(now.In(time.Local))
}

// Span is a run of consecutive days sharing one theme.
type Span struct {
	Theme Theme
	Range DateRange
}

// Schedule resolves every day of year and merges consecutive days with the
// same theme into spans, in calendar order.
func Schedule(year int) []Span {
	rules := Rules(year)
	var spans []Span
	for d := NewDate(year, time.January, 1); d.Year == year; d = d.AddDays(1) {
		t, ok := Match(rules, d)
		if !ok {
			t = Winter
		}
		if n := len(spans); n > 0 && spans[n-1].Theme == t {
			spans[n-1].Range.End = d
			continue
		}
		spans = append(spans, Span{Theme: t, Range: DateRange{Start: d, End: d}})
	}
	return spans
}
