package theme

import (
	"fmt"
	"log"
	"time"
)

const (
	// MarkerAttribute is the document attribute holding the applied theme.
	MarkerAttribute = "data-theme"
	// TaglineSlot is the id of the optional tagline element.
	TaglineSlot = "tagline"
)

// Surface is the presentation target a theme is applied to.
type Surface interface {
	SetAttribute(name, value string)
	// SetText replaces the text of the element with the given id and
	// reports false when no such element exists.
	SetText(id, text string) bool
}

// UnrecognizedOverrideError describes an override that is not a known theme.
type UnrecognizedOverrideError struct {
	Candidate string
}

func (e *UnrecognizedOverrideError) Error() string {
	return fmt.Sprintf("unknown theme %q, falling back to seasonal detection", e.Candidate)
}

// Applicator applies themes to surfaces. The zero value uses the wall clock,
// the default taglines and the standard logger.
type Applicator struct {
	Now      func() time.Time
	Taglines Taglines
	Logf     func(format string, v ...any)
}

func (a *Applicator) today() Date {
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	return Today(now())
}

func (a *Applicator) logf(format string, v ...any) {
	if a.Logf != nil {
		a.Logf(format, v...)
		return
	}
	log.Printf(format, v...)
}

// Apply sets the surface to candidate when it names a known theme. Any other
// value is logged and replaced by the theme resolved for today.
func (a *Applicator) Apply(s Surface, candidate string) Theme {
	t, ok := Parse(candidate)
	if !ok {
		err := &UnrecognizedOverrideError{Candidate: candidate}
		a.logf("⚠️  %v", err)
		t = Resolve(a.today())
	}
	a.set(s, t)
	return t
}

// Init applies override when present and today's theme otherwise. An empty
// override is treated as absent.
func (a *Applicator) Init(s Surface, override string, present bool) Theme {
	if present && override != "" {
		return a.Apply(s, override)
	}
	t := Resolve(a.today())
	a.set(s, t)
	return t
}

func (a *Applicator) set(s Surface, t Theme) {
	s.SetAttribute(MarkerAttribute, string(t))
	// A missing tagline slot is fine.
	s.SetText(TaglineSlot, a.Taglines.Lookup(t))
}

// Apply applies candidate with a zero Applicator.
func Apply(s Surface, candidate string) Theme {
	var a Applicator
	return a.Apply(s, candidate)
}

// Init runs page initialization with a zero Applicator.
func Init(s Surface, override string, present bool) Theme {
	var a Applicator
	return a.Init(s, override, present)
}
