package theme

import "time"

// EasterSunday calculates Easter Sunday using the Meeus/Jones/Butcher
// algorithm. Results are only meaningful for Gregorian years (1583 onward).
func EasterSunday(year int) Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return Date{Year: year, Month: time.Month(month), Day: day}
}

// EasterWindow returns Holy Saturday through Easter Monday.
func EasterWindow(year int) DateRange {
	easter := EasterSunday(year)
	return DateRange{Start: easter.AddDays(-1), End: easter.AddDays(1)}
}

// MothersDay returns the second Sunday of May.
func MothersDay(year int) Date {
	weekday := NewDate(year, time.May, 1).Weekday()
	firstSunday := 1
	if weekday != time.Sunday {
		firstSunday = 8 - int(weekday)
	}
	return Date{Year: year, Month: time.May, Day: firstSunday + 7}
}
