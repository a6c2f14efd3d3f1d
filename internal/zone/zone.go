// Package zone resolves IANA time zone identifiers.
package zone

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	// Embedded copy of the IANA database, used when the host has no zoneinfo.
	_ "time/tzdata"
)

// ErrInvalidTimeZone is returned when an identifier does not name a known zone.
var ErrInvalidTimeZone = errors.New("invalid time zone")

// Every IANA path segment starts with an upper-case letter ("America",
// "Port-au-Prince", "GMT+5"). Host-only zoneinfo files such as posixrules,
// localtime, right/* and posix/* do not.
var segmentPattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9_+-]*$`)

// Zone is a resolved IANA time zone.
type Zone struct {
	loc *time.Location
}

// Resolve looks up id in the time zone database.
//
// The empty string and "Local" are rejected: they are not IANA identifiers, even
// though time.LoadLocation maps them to UTC and the host zone.
func Resolve(id string) (*Zone, error) {
	if !wellFormed(id) {
		return nil, fmt.Errorf("%w %q", ErrInvalidTimeZone, id)
	}

	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidTimeZone, id, err)
	}
	return &Zone{loc: loc}, nil
}

func wellFormed(id string) bool {
	if id == "" || id == "Local" {
		return false
	}
	for _, seg := range strings.Split(id, "/") {
		if !segmentPattern.MatchString(seg) {
			return false
		}
	}
	return true
}

// Name returns the identifier the zone was resolved from, e.g. "Europe/Berlin".
func (z *Zone) Name() string {
	return z.loc.String()
}

// String implements fmt.Stringer.
func (z *Zone) String() string {
	return z.Name()
}

// In converts t to wall-clock time in the zone.
func (z *Zone) In(t time.Time) time.Time {
	return t.In(z.loc)
}
