package theme

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

type fakeSurface struct {
	attrs      map[string]string
	texts      map[string]string
	hasTagline bool
}

func newFakeSurface(hasTagline bool) *fakeSurface {
	return &fakeSurface{attrs: map[string]string{}, texts: map[string]string{}, hasTagline: hasTagline}
}

func (s *fakeSurface) SetAttribute(name, value string) {
	s.attrs[name] = value
}

func (s *fakeSurface) SetText(id, text string) bool {
	if id != TaglineSlot || !s.hasTagline {
		return false
	}
	s.texts[id] = text
	return true
}

type logRecorder struct {
	lines []string
}

func (r *logRecorder) logf(format string, v ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, v...))
}

func fixedApplicator(day time.Time, rec *logRecorder) *Applicator {
	return &Applicator{
		Now:  func() time.Time { return day },
		Logf: rec.logf,
	}
}

func TestApplyKnownTheme(t *testing.T) {
	rec := &logRecorder{}
	a := fixedApplicator(time.Date(2025, time.July, 4, 10, 0, 0, 0, time.Local), rec)
	s := newFakeSurface(true)

	got := a.Apply(s, "halloween")
	if got != Halloween {
		t.Errorf("Apply() = %s, want %s", got, Halloween)
	}
	if s.attrs[MarkerAttribute] != "halloween" {
		t.Errorf("marker = %q, want halloween", s.attrs[MarkerAttribute])
	}
	if s.texts[TaglineSlot] != "Griezelig goed" {
		t.Errorf("tagline = %q, want %q", s.texts[TaglineSlot], "Griezelig goed")
	}
	if len(rec.lines) != 0 {
		t.Errorf("unexpected diagnostics: %v", rec.lines)
	}
}

func TestApplyWithoutTaglineSlot(t *testing.T) {
	a := fixedApplicator(time.Date(2025, time.July, 4, 10, 0, 0, 0, time.Local), &logRecorder{})
	s := newFakeSurface(false)

	if got := a.Apply(s, "easter"); got != Easter {
		t.Errorf("Apply() = %s, want %s", got, Easter)
	}
	if s.attrs[MarkerAttribute] != "easter" {
		t.Errorf("marker = %q, want easter", s.attrs[MarkerAttribute])
	}
	if len(s.texts) != 0 {
		t.Errorf("texts should stay empty without a tagline slot, got %v", s.texts)
	}
}

func TestApplyFallback(t *testing.T) {
	day := time.Date(2025, time.December, 20, 9, 30, 0, 0, time.Local)

	tests := []struct {
		name      string
		candidate string
	}{
		{"unknown name", "not-a-theme"},
		{"empty", ""},
		{"wrong case", "Summer"},
		{"padded", " winter "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &logRecorder{}
			a := fixedApplicator(day, rec)

			fallback := newFakeSurface(true)
			got := a.Apply(fallback, tt.candidate)

			direct := newFakeSurface(true)
			want := a.Apply(direct, string(Resolve(DateOf(day))))

			if got != want || got != Christmas {
				t.Errorf("Apply(%q) = %s, want %s", tt.candidate, got, want)
			}
			if fallback.attrs[MarkerAttribute] != direct.attrs[MarkerAttribute] ||
				fallback.texts[TaglineSlot] != direct.texts[TaglineSlot] {
				t.Errorf("fallback surface %+v differs from direct surface %+v", fallback, direct)
			}
			if len(rec.lines) != 1 {
				t.Fatalf("expected exactly one diagnostic, got %v", rec.lines)
			}
			if !strings.Contains(rec.lines[0], fmt.Sprintf("%q", tt.candidate)) {
				t.Errorf("diagnostic %q does not name candidate %q", rec.lines[0], tt.candidate)
			}
		})
	}
}

func TestApplyIdempotent(t *testing.T) {
	a := fixedApplicator(time.Date(2025, time.April, 20, 12, 0, 0, 0, time.Local), &logRecorder{})
	d := Date{2025, time.May, 11}

	s := newFakeSurface(true)
	first := a.Apply(s, string(Resolve(d)))
	attrs, texts := fmt.Sprint(s.attrs), fmt.Sprint(s.texts)
	second := a.Apply(s, string(Resolve(d)))

	if first != second {
		t.Errorf("Apply() returned %s then %s", first, second)
	}
	if fmt.Sprint(s.attrs) != attrs || fmt.Sprint(s.texts) != texts {
		t.Errorf("surface changed on second apply: %v %v", s.attrs, s.texts)
	}
}

func TestInit(t *testing.T) {
	day := time.Date(2025, time.July, 21, 8, 0, 0, 0, time.Local)

	t.Run("no override", func(t *testing.T) {
		rec := &logRecorder{}
		s := newFakeSurface(true)
		if got := fixedApplicator(day, rec).Init(s, "", false); got != National {
			t.Errorf("Init() = %s, want %s", got, National)
		}
		if len(rec.lines) != 0 {
			t.Errorf("Init() without override should not log, got %v", rec.lines)
		}
	})

	t.Run("valid override", func(t *testing.T) {
		rec := &logRecorder{}
		s := newFakeSurface(true)
		if got := fixedApplicator(day, rec).Init(s, "sinterklaas", true); got != Sinterklaas {
			t.Errorf("Init() = %s, want %s", got, Sinterklaas)
		}
		if s.attrs[MarkerAttribute] != "sinterklaas" {
			t.Errorf("marker = %q, want sinterklaas", s.attrs[MarkerAttribute])
		}
	})

	t.Run("empty override present", func(t *testing.T) {
		rec := &logRecorder{}
		s := newFakeSurface(true)
		if got := fixedApplicator(day, rec).Init(s, "", true); got != National {
			t.Errorf("Init() = %s, want %s", got, National)
		}
		if s.attrs[MarkerAttribute] != "national" {
			t.Errorf("marker = %q, want national", s.attrs[MarkerAttribute])
		}
		if len(rec.lines) != 0 {
			t.Errorf("empty override should not log, got %v", rec.lines)
		}
	})
}

func TestApplyCustomTaglines(t *testing.T) {
	tl := DefaultTaglines()
	tl[Summer] = "Zomer!"
	a := &Applicator{Taglines: tl, Logf: (&logRecorder{}).logf}
	s := newFakeSurface(true)

	a.Apply(s, "summer")
	if s.texts[TaglineSlot] != "Zomer!" {
		t.Errorf("tagline = %q, want Zomer!", s.texts[TaglineSlot])
	}
}

func TestUnrecognizedOverrideError(t *testing.T) {
	err := &UnrecognizedOverrideError{Candidate: "pirate"}
	if !strings.Contains(err.Error(), `"pirate"`) {
		t.Errorf("Error() = %q, should quote the candidate", err.Error())
	}
}
