package dateutil

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Canonical is the stored date format. Dates arrive from forms and legacy
// imports in several human formats; everything is normalized to this one at
// the boundary and stays in it from then on.
const Canonical = "2006-01-02"

var ordinalSuffix = regexp.MustCompile(`(\d+)(st|nd|rd|th)`)

// layouts accepted from legacy data and free-form input, tried in order.
var layouts = []string{
	Canonical,
	time.RFC3339,
	"1/2/2006",
	"01/02/2006",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// Normalize parses a human-entered date and renders it in the canonical
// format. The empty string passes through: date fields are optional.
func Normalize(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	cleaned := ordinalSuffix.ReplaceAllString(s, "$1")
	for _, layout := range layouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format(Canonical), nil
		}
	}
	return "", fmt.Errorf("unrecognized date %q", s)
}

// Today returns the current date in canonical form.
func Today() string {
	return time.Now().Format(Canonical)
}
