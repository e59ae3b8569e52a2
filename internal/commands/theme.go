package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cremerie-alijs/storefront/internal/app"
	"github.com/cremerie-alijs/storefront/internal/theme"
)

// Theme handles the theme subcommand: it prints the theme for a day, the
// outcome of an override, or the schedule of a whole year
func Theme(args []string) {
	if err := runTheme(args, os.Stdout, time.Now); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTheme(args []string, out io.Writer, now func() time.Time) error {
	fs := flag.NewFlagSet("theme", flag.ContinueOnError)
	fs.SetOutput(out)
	date := fs.String("date", "", "Day to resolve (YYYY-MM-DD, default today)")
	year := fs.Int("year", 0, "Print the theme schedule of a year")
	override := fs.String("override", "", "Apply an override the way the storefront page does")
	fs.Usage = func() {
		fmt.Fprintf(out, "Usage: storefront theme [OPTIONS]\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *year != 0 {
		if *year < app.MinYear || *year > app.MaxYear {
			return fmt.Errorf("year %d outside %d-%d", *year, app.MinYear, app.MaxYear)
		}
		return printSchedule(out, *year)
	}

	day := theme.Today(now())
	if *date != "" {
		d, err := theme.ParseDate(*date)
		if err != nil {
			return err
		}
		day = d
	}

	overridden := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "override" {
			overridden = true
		}
	})

	// Anchor "today" to the requested day so fallbacks resolve that day
	page := app.NewPage(theme.TaglineSlot)
	a := &theme.Applicator{
		Now:  func() time.Time { return time.Date(day.Year, day.Month, day.Day, 12, 0, 0, 0, time.Local) },
		Logf: func(format string, v ...any) { fmt.Fprintf(out, format+"\n", v...) },
	}
	applied := a.Init(page, *override, overridden)

	fmt.Fprintf(out, "%s\t%s\t%s\n", day, applied, page.Text(theme.TaglineSlot))
	return nil
}

func printSchedule(out io.Writer, year int) error {
	window := theme.EasterWindow(year)
	fmt.Fprintf(out, "Easter Sunday: %s (window %s..%s)\n", theme.EasterSunday(year), window.Start, window.End)
	fmt.Fprintf(out, "Mother's Day:  %s\n\n", theme.MothersDay(year))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "START\tEND\tDAYS\tTHEME")
	for _, s := range theme.Schedule(year) {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", s.Range.Start, s.Range.End, s.Range.Days(), s.Theme)
	}
	return tw.Flush()
}
