package models

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates (no time component).
const DateLayout = "2006-01-02"

// Canonical weekday names, Monday first. All scheduling output iterates in
// this order.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// Canonical time bands in display order.
const (
	TimeBandMorning   = "Morning"
	TimeBandAfternoon = "Afternoon"
	TimeBandEvening   = "Evening"
)

// TimeBands lists the three bookable bands in canonical order.
var TimeBands = []string{TimeBandMorning, TimeBandAfternoon, TimeBandEvening}

// RepresentativeTimes maps each band to the clock time shown on date requests.
var RepresentativeTimes = map[string]string{
	TimeBandMorning:   "10:00",
	TimeBandAfternoon: "14:00",
	TimeBandEvening:   "18:00",
}

var weekdayLookup = buildLookup(Weekdays)
var timeBandLookup = buildLookup(TimeBands)

func buildLookup(names []string) map[string]string {
	lookup := make(map[string]string, len(names))
	for _, name := range names {
		lookup[strings.ToLower(name)] = name
	}
	return lookup
}

// NormalizeWeekday maps a case-insensitive weekday name to its canonical
// capitalization. The second return value is false for unknown names.
func NormalizeWeekday(name string) (string, bool) {
	canonical, ok := weekdayLookup[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}

// NormalizeTimeBand maps a case-insensitive band name to its canonical
// capitalization. The second return value is false for unknown names.
func NormalizeTimeBand(name string) (string, bool) {
	canonical, ok := timeBandLookup[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}

// WeekdayName returns the canonical name for a time.Weekday.
func WeekdayName(d time.Weekday) string {
	// time.Weekday counts from Sunday; Weekdays counts from Monday.
	return Weekdays[(int(d)+6)%7]
}

// ParseDate parses an ISO calendar date (DateLayout).
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// Availability maps weekday names to the time bands a user is free. A missing
// weekday key means unavailable all day. Keys and values are accepted in any
// casing and normalized on use.
type Availability map[string][]string

// Normalized returns a copy keyed by canonical weekday names with canonical
// band names in canonical order, dropping duplicates. Unknown weekday keys or
// band values yield a ValidationError naming the offender.
func (a Availability) Normalized() (Availability, error) {
	out := make(Availability, len(a))
	for day, bands := range a {
		canonicalDay, ok := NormalizeWeekday(day)
		if !ok {
			return nil, &ValidationError{Field: "availability", Reason: "unknown weekday " + strconv.Quote(day)}
		}
		seen := make(map[string]bool, len(bands))
		for _, band := range bands {
			canonicalBand, ok := NormalizeTimeBand(band)
			if !ok {
				return nil, &ValidationError{Field: "availability", Reason: "unknown time band " + strconv.Quote(band)}
			}
			seen[canonicalBand] = true
		}
		ordered := make([]string, 0, len(seen))
		for _, band := range TimeBands {
			if seen[band] {
				ordered = append(ordered, band)
			}
		}
		out[canonicalDay] = ordered
	}
	return out, nil
}

// Bands returns the normalized band set for a weekday, silently dropping
// values that do not name a canonical band. A missing day is an empty set,
// not an error.
func (a Availability) Bands(weekday string) map[string]bool {
	canonicalDay, ok := NormalizeWeekday(weekday)
	if !ok {
		return nil
	}
	bands := make(map[string]bool)
	for day, values := range a {
		if normalized, ok := NormalizeWeekday(day); !ok || normalized != canonicalDay {
			continue
		}
		for _, value := range values {
			if band, ok := NormalizeTimeBand(value); ok {
				bands[band] = true
			}
		}
	}
	return bands
}
