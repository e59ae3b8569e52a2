package app

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/cremerie-alijs/storefront/internal/theme"
)

// RequireMethod validates that the request uses the specified HTTP method
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// RequireEditMode validates that edit mode is enabled
func RequireEditMode(w http.ResponseWriter) bool {
	if !EditMode {
		http.Error(w, ErrEditModeDisabled, http.StatusForbidden)
		return false
	}
	return true
}

// Today returns the local calendar day according to Now
func Today() theme.Date {
	return theme.Today(Now())
}

// ParseYear parses a year query value, defaulting to the current year
func ParseYear(s string) (int, error) {
	if s == "" {
		return Today().Year, nil
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if year < MinYear || year > MaxYear {
		return 0, fmt.Errorf("year %d outside %d-%d", year, MinYear, MaxYear)
	}
	return year, nil
}

// writeJSON encodes v as the response body
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
	}
}

// mergeSpans joins consecutive spans of the same theme that continue each
// other across a year boundary
func mergeSpans(spans []theme.Span) []theme.Span {
	var out []theme.Span
	for _, s := range spans {
		if n := len(out); n > 0 {
			last := &out[n-1]
			if last.Theme == s.Theme && last.Range.End.AddDays(1).Equal(s.Range.Start) {
				last.Range.End = s.Range.End
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

// filterSpans drops the summer and winter bands unless includeSeasons is set
func filterSpans(spans []theme.Span, includeSeasons bool) []theme.Span {
	if includeSeasons {
		return spans
	}
	var out []theme.Span
	for _, s := range spans {
		if s.Theme == theme.Summer || s.Theme == theme.Winter {
			continue
		}
		out = append(out, s)
	}
	return out
}
