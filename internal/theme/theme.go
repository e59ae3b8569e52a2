// Package theme maps calendar dates to the storefront's seasonal themes and
// applies a theme to a presentation surface.
package theme

import (
	"fmt"
	"sort"
)

// Theme is one of the fixed seasonal or holiday identifiers.
type Theme string

const (
	Summer      Theme = "summer"
	Winter      Theme = "winter"
	Valentines  Theme = "valentines"
	Easter      Theme = "easter"
	Mothersday  Theme = "mothersday"
	Midsummer   Theme = "midsummer"
	National    Theme = "national"
	Halloween   Theme = "halloween"
	Sinterklaas Theme = "sinterklaas"
	Christmas   Theme = "christmas"
)

var themes = []Theme{
	Summer,
	Winter,
	Valentines,
	Easter,
	Mothersday,
	Midsummer,
	National,
	Halloween,
	Sinterklaas,
	Christmas,
}

// All returns every known theme in declaration order.
func All() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// Parse returns the theme named s. Matching is exact and case-sensitive.
func Parse(s string) (Theme, bool) {
	for _, t := range themes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	_, ok := Parse(string(t))
	return ok
}

func (t Theme) String() string {
	return string(t)
}

// Taglines maps every theme to its display string.
type Taglines map[Theme]string

// DefaultTaglines returns the built-in tagline table.
func DefaultTaglines() Taglines {
	return Taglines{
		Summer:      "Waar elk bolletje een zomerherinnering is",
		Winter:      "Waar warmte smelt op je tong",
		Valentines:  "Liefde smaakt naar meer — welkom bij onze opening!",
		Easter:      "Lente in elk bolletje",
		Mothersday:  "Voor de allerliefste",
		Midsummer:   "De langste dag, het lekkerste ijs",
		National:    "Trots Belgisch, ambachtelijk lekker",
		Halloween:   "Griezelig goed",
		Sinterklaas: "Van de Sint, met liefde gedraaid",
		Christmas:   "Maak het feest compleet",
	}
}

// Lookup returns the tagline for t, falling back to the built-in table when
// the receiver has no entry.
func (tl Taglines) Lookup(t Theme) string {
	if s, ok := tl[t]; ok && s != "" {
		return s
	}
	return DefaultTaglines()[t]
}

// Clone returns an independent copy of the table.
func (tl Taglines) Clone() Taglines {
	out := make(Taglines, len(tl))
	for k, v := range tl {
		out[k] = v
	}
	return out
}

// Validate checks that the table has exactly one non-empty tagline for every
// known theme and nothing else.
func (tl Taglines) Validate() error {
	var unknown []string
	for k := range tl {
		if !k.Valid() {
			unknown = append(unknown, string(k))
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown themes in tagline table: %v", unknown)
	}
	for _, t := range themes {
		if tl[t] == "" {
			return fmt.Errorf("missing tagline for theme %q", t)
		}
	}
	return nil
}
