// Package convert converts wall-clock times between IANA timezones.
//
// Zone data comes from Go's timezone database; time/tzdata is embedded so
// conversions work on hosts without /usr/share/zoneinfo. Ambiguous and
// nonexistent local times around DST transitions resolve the way time.Date
// resolves them.
package convert

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"
)

// ErrInvalidInput is returned for an unknown zone or an unparseable datetime.
var ErrInvalidInput = errors.New("invalid input")

// Layout is the naive datetime form used on input and output (datetime-local).
const Layout = "2006-01-02T15:04"

var inputLayouts = []string{
	Layout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

var zones sync.Map // zone id -> *time.Location

// LoadZone resolves a zone identifier. "" and "Local" are rejected because
// they do not name a fixed zone.
func LoadZone(id string) (*time.Location, error) {
	if id == "" || id == "Local" {
		return nil, fmt.Errorf("%w: unknown zone %q", ErrInvalidInput, id)
	}
	if loc, ok := zones.Load(id); ok {
		return loc.(*time.Location), nil
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown zone %q", ErrInvalidInput, id)
	}
	zones.Store(id, loc)
	return loc, nil
}

// Parse reads a naive datetime. The result carries the wall-clock fields in UTC.
func Parse(input string) (time.Time, error) {
	s := strings.TrimSpace(input)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse datetime %q", ErrInvalidInput, input)
}

// Format renders a naive datetime to minute precision.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Naive drops the zone from t, keeping its wall-clock fields.
func Naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// Convert reads the wall-clock fields of naive as local time in sourceZone and
// returns the wall-clock time of the same instant in targetZone, truncated to
// the minute. Seconds and below in the input are ignored.
func Convert(naive time.Time, sourceZone, targetZone string) (time.Time, error) {
	src, err := LoadZone(sourceZone)
	if err != nil {
		return time.Time{}, err
	}
	dst, err := LoadZone(targetZone)
	if err != nil {
		return time.Time{}, err
	}

	instant := time.Date(naive.Year(), naive.Month(), naive.Day(), naive.Hour(), naive.Minute(), 0, 0, src)
	return Naive(instant.In(dst)).Truncate(time.Minute), nil
}

// ConvertString is Convert over the YYYY-MM-DDTHH:MM string form.
func ConvertString(input, sourceZone, targetZone string) (string, error) {
	t, err := Parse(input)
	if err != nil {
		return "", err
	}
	out, err := Convert(t, sourceZone, targetZone)
	if err != nil {
		return "", err
	}
	return Format(out), nil
}
