package app

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/cremerie-alijs/storefront/internal/theme"
)

var validate = newValidator()

// newValidator registers the "singleline" tag, which rejects control
// characters. Taglines end up in single-line ICS properties.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("singleline", func(fl validator.FieldLevel) bool {
		return !strings.ContainsFunc(fl.Field().String(), unicode.IsControl)
	}); err != nil {
		panic(err)
	}
	return v
}

// newApplicator returns an applicator bound to the service clock and the
// active taglines
func newApplicator() *theme.Applicator {
	return &theme.Applicator{
		Now:      Now,
		Taglines: CurrentTaglines(),
		Logf:     log.Printf,
	}
}

// ServeIndex renders the storefront with the applied theme.
// Query param: theme (optional override)
func ServeIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	values, present := r.URL.Query()["theme"]
	override := ""
	if present && len(values) > 0 {
		override = values[0]
	}

	page := NewPage(theme.TaglineSlot)
	applied := newApplicator().Init(page, override, present)

	body, err := RenderIndex(page)
	if err != nil {
		log.Printf("Error rendering index: %v", err)
		http.Error(w, ErrFailedToRender, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Theme", string(applied))
	if _, err := w.Write(body); err != nil {
		log.Printf("Error writing index HTML: %v", err)
	}
}

// ServeEdit serves the tagline editor HTML
func ServeEdit(w http.ResponseWriter, r *http.Request) {
	if !RequireEditMode(w) {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(EditHTML); err != nil {
		log.Printf("Error writing edit HTML: %v", err)
	}
}

// GetConfig returns the application configuration
func GetConfig(w http.ResponseWriter, r *http.Request) {
	today := Today()

	writeJSON(w, map[string]interface{}{
		"themes":     theme.All(),
		"themeNames": ThemeNames,
		"taglines":   CurrentTaglines(),
		"today":      today.String(),
		"todayTheme": theme.Resolve(today),
		"minYear":    MinYear,
		"maxYear":    MaxYear,
		"editMode":   EditMode,
	})
}

// HandleTheme returns the resolved theme for a day
// Query param: date (YYYY-MM-DD, optional, defaults to today)
func HandleTheme(w http.ResponseWriter, r *http.Request) {
	day := Today()
	if s := r.URL.Query().Get("date"); s != "" {
		var err error
		day, err = theme.ParseDate(s)
		if err != nil || day.Year < MinYear || day.Year > MaxYear {
			http.Error(w, ErrInvalidDateFormat, http.StatusBadRequest)
			return
		}
	}

	t := theme.Resolve(day)
	writeJSON(w, ThemeInfo{
		Date:    day.String(),
		Theme:   t,
		Name:    ThemeNames[t],
		Tagline: CurrentTaglines().Lookup(t),
	})
}

// HandleHolidays returns the moving holidays of a year
// Query param: year (optional, defaults to current year)
func HandleHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := ParseYear(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, ErrInvalidYear, http.StatusBadRequest)
		return
	}

	window := theme.EasterWindow(year)
	writeJSON(w, HolidayInfo{
		Year:         year,
		EasterSunday: theme.EasterSunday(year).String(),
		EasterStart:  window.Start.String(),
		EasterEnd:    window.End.String(),
		MothersDay:   theme.MothersDay(year).String(),
	})
}

// HandleSchedule returns every theme span of a year
// Query params: year (optional), seasons (include summer/winter bands, default true)
func HandleSchedule(w http.ResponseWriter, r *http.Request) {
	year, err := ParseYear(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, ErrInvalidYear, http.StatusBadRequest)
		return
	}

	spans := filterSpans(theme.Schedule(year), r.URL.Query().Get("seasons") != "false")
	out := make([]SpanInfo, 0, len(spans))
	for _, s := range spans {
		out = append(out, newSpanInfo(s))
	}

	writeJSON(w, map[string]interface{}{
		"year":  year,
		"spans": out,
	})
}

// HandleDownload handles schedule exports in ICS, CSV or JSON format
func HandleDownload(w http.ResponseWriter, r *http.Request) {
	year, err := ParseYear(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, ErrInvalidYear, http.StatusBadRequest)
		return
	}

	spans := filterSpans(theme.Schedule(year), r.URL.Query().Get("seasons") == "true")

	switch r.URL.Query().Get("format") {
	case "ics":
		GenerateICS(w, r, year, spans)
	case "csv":
		GenerateCSV(w, year, spans)
	case "json":
		GenerateJSON(w, year, spans)
	default:
		http.Error(w, ErrInvalidFormat, http.StatusBadRequest)
	}
}

// HandleSubscribe returns an ICS feed with holiday themes from last year
// through next year
func HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	includeSeasons := r.URL.Query().Get("seasons") == "true"
	currentYear := Today().Year

	var spans []theme.Span
	for year := currentYear - 1; year <= currentYear+1; year++ {
		spans = append(spans, filterSpans(theme.Schedule(year), includeSeasons)...)
	}

	// Christmas runs into January
	GenerateSubscriptionICS(w, r, mergeSpans(spans))
}

// taglineUpdate is the request body of UpdateTagline
type taglineUpdate struct {
	Theme   string `json:"theme" validate:"required"`
	Tagline string `json:"tagline" validate:"required,max=200,singleline"`
}

// UpdateTagline replaces the tagline of one theme (edit mode only)
func UpdateTagline(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) || !RequireEditMode(w) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBytes)

	var req taglineUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Invalid tagline update: %v", err)
		http.Error(w, ErrInvalidRequest, http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		log.Printf("Invalid tagline update: %v", err)
		http.Error(w, ErrInvalidTagline, http.StatusBadRequest)
		return
	}

	t, ok := theme.Parse(req.Theme)
	if !ok {
		http.Error(w, ErrUnknownTheme, http.StatusBadRequest)
		return
	}

	if err := SetTagline(t, req.Tagline); err != nil {
		log.Printf("Error saving tagline: %v", err)
		http.Error(w, ErrFailedToSave, http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"status": "ok"})
}

// HandleTaglinesCommit commits temporary changes
func HandleTaglinesCommit(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) || !RequireEditMode(w) {
		return
	}

	if err := CommitTaglines(); err != nil {
		log.Printf("Error committing taglines: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"status": "ok"})
}

// HandleTaglinesRevert reverts temporary changes
func HandleTaglinesRevert(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) || !RequireEditMode(w) {
		return
	}

	if err := RevertTaglines(); err != nil {
		log.Printf("Error reverting taglines: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"status": "ok"})
}

// HandleTaglinesStatus returns whether there are unsaved changes
func HandleTaglinesStatus(w http.ResponseWriter, r *http.Request) {
	if !RequireEditMode(w) {
		return
	}

	writeJSON(w, map[string]bool{
		"has_changes": HasTmpChanges(),
	})
}
