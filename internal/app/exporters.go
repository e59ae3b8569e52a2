package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cremerie-alijs/storefront/internal/theme"
)

// writeString writes to w and logs any error (helper for ICS generation)
func writeString(w io.Writer, s string) {
	if _, err := fmt.Fprint(w, s); err != nil {
		log.Printf("Error writing to response: %v", err)
	}
}

// icsEscaper escapes TEXT property values (RFC 5545 section 3.3.11)
var icsEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
	"\r", `\n`,
)

// icsText escapes s for use as an ICS TEXT value
func icsText(s string) string {
	return icsEscaper.Replace(s)
}

// writeEvent writes one all-day VEVENT covering the span
func writeEvent(w io.Writer, s theme.Span, taglines theme.Taglines) {
	start := s.Range.Start
	uid := fmt.Sprintf("%s-%s@themas.cremerie-alijs.be", start, s.Theme)

	writeString(w, "BEGIN:VEVENT\n")
	writeString(w, fmt.Sprintf("UID:%s\n", uid))
	writeString(w, fmt.Sprintf("DTSTAMP:%s\n", time.Now().UTC().Format("20060102T150405Z")))
	writeString(w, fmt.Sprintf("DTSTART;VALUE=DATE:%s\n", start.Time().Format("20060102")))
	// DTEND is exclusive for all-day events
	writeString(w, fmt.Sprintf("DTEND;VALUE=DATE:%s\n", s.Range.End.AddDays(1).Time().Format("20060102")))
	writeString(w, fmt.Sprintf("SUMMARY:%s\n", icsText(ThemeNames[s.Theme])))
	writeString(w, fmt.Sprintf("DESCRIPTION:%s\n", icsText(taglines.Lookup(s.Theme))))
	writeString(w, fmt.Sprintf("CATEGORIES:%s\n", icsText(string(s.Theme))))
}

// GenerateICS generates an iCalendar (ICS) file of a year's theme spans with
// an optional reminder before each span starts
func GenerateICS(w http.ResponseWriter, r *http.Request, year int, spans []theme.Span) {
	reminder := r.URL.Query().Get("reminder")
	reminderDays, _ := strconv.Atoi(r.URL.Query().Get("reminderDays"))
	taglines := CurrentTaglines()

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=themas_%d.ics", year))

	writeString(w, "BEGIN:VCALENDAR\n")
	writeString(w, "VERSION:2.0\n")
	writeString(w, fmt.Sprintf("PRODID:%s\n", ICSProductID))
	writeString(w, fmt.Sprintf("X-WR-CALNAME:Thema's %d\n", year))
	writeString(w, fmt.Sprintf("X-WR-TIMEZONE:%s\n", ICSTimezone))
	writeString(w, "CALSCALE:GREGORIAN\n")

	for _, s := range spans {
		writeEvent(w, s, taglines)
		if reminder != "" {
			AddAlarm(w, s.Range.Start.Time(), reminderDays, reminder, ThemeNames[s.Theme])
		}
		writeString(w, "END:VEVENT\n")
	}

	writeString(w, "END:VCALENDAR\n")
}

// AddAlarm adds a reminder at alarmTime (HH:MM) daysBefore the event day
func AddAlarm(w io.Writer, eventDate time.Time, daysBefore int, alarmTime string, description string) {
	parts := strings.Split(alarmTime, ":")
	if len(parts) != 2 {
		return
	}

	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return
	}

	// Triggers are relative to midnight at the start of the all-day event
	eventStart := time.Date(eventDate.Year(), eventDate.Month(), eventDate.Day(), 0, 0, 0, 0, time.UTC)
	alarmAt := eventStart.AddDate(0, 0, -daysBefore).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	totalMinutes := int(alarmAt.Sub(eventStart).Minutes())

	sign := ""
	if totalMinutes < 0 {
		sign = "-"
		totalMinutes = -totalMinutes
	}
	days := totalMinutes / (24 * 60)
	hours := totalMinutes % (24 * 60) / 60
	minutes := totalMinutes % 60

	writeString(w, "BEGIN:VALARM\n")
	writeString(w, "ACTION:DISPLAY\n")
	writeString(w, fmt.Sprintf("DESCRIPTION:Binnenkort: %s\n", icsText(description)))
	writeString(w, fmt.Sprintf("TRIGGER:%sP%dDT%dH%dM\n", sign, days, hours, minutes))
	writeString(w, "END:VALARM\n")
}

// GenerateCSV generates a CSV file of a year's theme spans
func GenerateCSV(w http.ResponseWriter, year int, spans []theme.Span) {
	taglines := CurrentTaglines()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=themas_%d.csv", year))

	writeString(w, "Start,Einde,Thema,Slogan\n")
	for _, s := range spans {
		writeString(w, fmt.Sprintf("%s,%s,%s,%s\n",
			s.Range.Start, s.Range.End, s.Theme, csvField(taglines.Lookup(s.Theme))))
	}
}

// csvField quotes a value when it contains separators or quotes
func csvField(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// GenerateJSON generates a JSON file of a year's theme spans
func GenerateJSON(w http.ResponseWriter, year int, spans []theme.Span) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=themas_%d.json", year))

	out := make([]SpanInfo, 0, len(spans))
	for _, s := range spans {
		out = append(out, newSpanInfo(s))
	}

	data := map[string]interface{}{
		"year":  year,
		"spans": out,
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON export: %v", err)
		http.Error(w, ErrFailedToGenerateJSON, http.StatusInternalServerError)
	}
}

// GenerateSubscriptionICS generates an iCalendar (ICS) subscription feed.
// Unlike GenerateICS it is served inline, carries no alarms and asks clients
// to refresh daily.
func GenerateSubscriptionICS(w http.ResponseWriter, r *http.Request, spans []theme.Span) {
	taglines := CurrentTaglines()

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")

	writeString(w, "BEGIN:VCALENDAR\n")
	writeString(w, "VERSION:2.0\n")
	writeString(w, fmt.Sprintf("PRODID:%s\n", ICSProductID))
	writeString(w, "METHOD:PUBLISH\n")
	writeString(w, "X-WR-CALNAME:Thema's\n")
	writeString(w, fmt.Sprintf("X-WR-TIMEZONE:%s\n", ICSTimezone))
	writeString(w, "CALSCALE:GREGORIAN\n")
	writeString(w, "X-PUBLISHED-TTL:P1D\n")

	for _, s := range spans {
		writeEvent(w, s, taglines)
		writeString(w, "END:VEVENT\n")
	}

	writeString(w, "END:VCALENDAR\n")
}
