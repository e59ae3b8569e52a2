package theme

import (
	"strings"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	for _, th := range All() {
		got, ok := Parse(string(th))
		if !ok || got != th {
			t.Errorf("Parse(%q) = %q, %v", th, got, ok)
		}
	}

	for _, s := range []string{"", "Summer", "CHRISTMAS", "xmas", "summer "} {
		if _, ok := Parse(s); ok {
			t.Errorf("Parse(%q) should fail", s)
		}
	}
}

func TestAllIsACopy(t *testing.T) {
	a := All()
	a[0] = "pirate"
	if All()[0] != Summer {
		t.Error("All() exposes the internal slice")
	}
	if len(All()) != 10 {
		t.Errorf("len(All()) = %d, want 10", len(All()))
	}
}

func TestDefaultTaglinesAreTotal(t *testing.T) {
	if err := DefaultTaglines().Validate(); err != nil {
		t.Fatalf("DefaultTaglines().Validate() = %v", err)
	}
}

func TestTaglinesValidate(t *testing.T) {
	missing := DefaultTaglines()
	delete(missing, Easter)

	empty := DefaultTaglines()
	empty[Winter] = ""

	extra := DefaultTaglines()
	extra["pirate"] = "Arr"

	tests := []struct {
		name    string
		table   Taglines
		wantErr string
	}{
		{"missing", missing, "easter"},
		{"empty", empty, "winter"},
		{"unknown", extra, "pirate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestTaglinesLookupFallsBack(t *testing.T) {
	var tl Taglines
	if got := tl.Lookup(Halloween); got != "Griezelig goed" {
		t.Errorf("nil Taglines Lookup = %q", got)
	}
}

func TestDateHelpers(t *testing.T) {
	d, err := ParseDate("2024-02-28")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if got := d.AddDays(1); got != (Date{2024, time.February, 29}) {
		t.Errorf("AddDays(1) = %s, want 2024-02-29", got)
	}
	if got := d.AddDays(2).String(); got != "2024-03-01" {
		t.Errorf("AddDays(2) = %s, want 2024-03-01", got)
	}
	if got := NewDate(2025, time.April, 0); got != (Date{2025, time.March, 31}) {
		t.Errorf("NewDate(2025, 4, 0) = %s, want 2025-03-31", got)
	}
	if _, err := ParseDate("2024-13-01"); err == nil {
		t.Error("ParseDate() should reject month 13")
	}

	r := DateRange{Start: Date{2025, time.October, 15}, End: Date{2025, time.November, 1}}
	if !r.Contains(r.Start) || !r.Contains(r.End) {
		t.Error("DateRange should include both ends")
	}
	if r.Contains(Date{2025, time.November, 2}) || r.Contains(Date{2025, time.October, 14}) {
		t.Error("DateRange should exclude days outside its ends")
	}
	if r.Days() != 18 {
		t.Errorf("Days() = %d, want 18", r.Days())
	}
}
