/* Copyright (c) 2021 David Bulkow */

// Package timespec parses the date/time specification syntax used by
// journalctl's --since and --until options.
//
// Grammar:
//
//	timespec   := keyword | relative | absolute
//	keyword    := "now" | "today" | "tomorrow" | "yesterday"
//	relative   := ("-"|"+") digits unit?
//	unit       := "s"|"sec"|"second"|"seconds"|"m"|"min"|"minute"|"minutes"
//	            | "h"|"hour"|"hours"|"d"|"day"|"days"|"w"|"week"|"weeks"
//	            | "month"|"months"|"y"|"year"|"years"
//	absolute   := date (" " time)? | time
//	date       := digit{4} "-" digit{2} "-" digit{2}
//	time       := digit{2} ":" digit{2} (":" digit{2})?
//
// Keywords and unit words are case sensitive. A relative count without
// a unit counts seconds. Parsing never consults the clock; named and
// relative forms are combined with a caller supplied anchor by
// Resolve.
package timespec

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind int

const (
	Absolute Kind = iota
	Named
	Relative
)

type Keyword int

const (
	Now Keyword = iota
	Today
	Tomorrow
	Yesterday
)

// Sign is the direction of a relative offset, encoded by the leading
// '+' or '-' of the specification.
type Sign int

const (
	After  Sign = 1
	Before Sign = -1
)

type Unit int

const (
	Seconds Unit = iota
	Minutes
	Hours
	Days
	Weeks
	Months
	Years
)

var keywords = map[string]Keyword{
	"now":       Now,
	"today":     Today,
	"tomorrow":  Tomorrow,
	"yesterday": Yesterday,
}

var units = map[string]Unit{
	"s":       Seconds,
	"sec":     Seconds,
	"second":  Seconds,
	"seconds": Seconds,
	"m":       Minutes,
	"min":     Minutes,
	"minute":  Minutes,
	"minutes": Minutes,
	"h":       Hours,
	"hour":    Hours,
	"hours":   Hours,
	"d":       Days,
	"day":     Days,
	"days":    Days,
	"w":       Weeks,
	"week":    Weeks,
	"weeks":   Weeks,
	"month":   Months,
	"months":  Months,
	"y":       Years,
	"year":    Years,
	"years":   Years,
}

var keywordNames = map[Keyword]string{
	Now:       "now",
	Today:     "today",
	Tomorrow:  "tomorrow",
	Yesterday: "yesterday",
}

var unitNames = map[Unit]string{
	Seconds: "seconds",
	Minutes: "minutes",
	Hours:   "hours",
	Days:    "days",
	Weeks:   "weeks",
	Months:  "months",
	Years:   "years",
}

// TimeSpec is a parsed time specification. Kind selects which fields
// are meaningful. Values are immutable once returned by Parse.
type TimeSpec struct {
	Kind Kind

	// Absolute. DateOmitted marks a bare time whose date is filled
	// from the anchor during Resolve.
	Year, Month, Day     int
	Hour, Minute, Second int
	DateOmitted          bool

	// Named.
	Keyword Keyword

	// Relative.
	Sign   Sign
	Amount int
	Unit   Unit
}

func (ts *TimeSpec) String() string {
	switch ts.Kind {
	case Named:
		return keywordNames[ts.Keyword]
	case Relative:
		sign := "+"
		if ts.Sign == Before {
			sign = "-"
		}
		return fmt.Sprintf("%s%d %s", sign, ts.Amount, unitNames[ts.Unit])
	}

	if ts.DateOmitted {
		return fmt.Sprintf("%02d:%02d:%02d", ts.Hour, ts.Minute, ts.Second)
	}

	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		ts.Year, ts.Month, ts.Day, ts.Hour, ts.Minute, ts.Second)
}

// Parse recognizes a time specification. Surrounding whitespace is
// ignored. The space between the date and time of an absolute form
// must be exactly one space. On failure the returned error is a
// *ParseError describing the rejection.
func Parse(s string) (*TimeSpec, error) {
	spec := strings.TrimSpace(s)

	if spec == "" {
		return nil, unrecognized(spec)
	}

	if kw, ok := keywords[spec]; ok {
		return &TimeSpec{Kind: Named, Keyword: kw}, nil
	}

	if spec[0] == '+' || spec[0] == '-' {
		return parseRelative(spec)
	}

	return parseAbsolute(spec)
}

func parseRelative(spec string) (*TimeSpec, error) {
	sign := After
	if spec[0] == '-' {
		sign = Before
	}

	rest := spec[1:]

	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == 0 {
		return nil, unrecognized(spec)
	}

	amount, err := strconv.Atoi(rest[:i])
	if err != nil {
		return nil, malformedNumber(spec, rest[:i])
	}

	unit := Seconds
	if word := rest[i:]; word != "" {
		u, ok := units[word]
		if !ok {
			return nil, unknownUnit(spec, word)
		}
		unit = u
	}

	return &TimeSpec{Kind: Relative, Sign: sign, Amount: amount, Unit: unit}, nil
}

func parseAbsolute(spec string) (*TimeSpec, error) {
	var datepart, timepart string

	switch parts := strings.Split(spec, " "); len(parts) {
	case 1:
		if strings.Contains(parts[0], ":") {
			timepart = parts[0]
		} else {
			datepart = parts[0]
		}
	case 2:
		datepart = parts[0]
		timepart = parts[1]
	default:
		return nil, unrecognized(spec)
	}

	ts := &TimeSpec{Kind: Absolute, DateOmitted: datepart == ""}

	if datepart != "" {
		if err := parseDate(ts, spec, datepart); err != nil {
			return nil, err
		}
	}

	if timepart != "" {
		if err := parseTime(ts, spec, timepart); err != nil {
			return nil, err
		}
	}

	return ts, nil
}

// parseDate fills in the yyyy-mm-dd fields, validating ranges against
// the proleptic Gregorian calendar.
func parseDate(ts *TimeSpec, spec, date string) error {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return unrecognized(spec)
	}

	widths := []int{4, 2, 2}
	for i, p := range parts {
		if !allDigits(p) {
			return unrecognized(spec)
		}
		if len(p) != widths[i] {
			return malformedNumber(spec, p)
		}
	}

	ts.Year, _ = strconv.Atoi(parts[0])
	ts.Month, _ = strconv.Atoi(parts[1])
	ts.Day, _ = strconv.Atoi(parts[2])

	if ts.Month < 1 || ts.Month > 12 {
		return invalidField(spec, "month", ts.Month)
	}
	if ts.Day < 1 || ts.Day > daysInMonth(ts.Year, ts.Month) {
		return invalidField(spec, "day", ts.Day)
	}

	return nil
}

// parseTime fills in the hh:mm[:ss] fields. A missing seconds
// component defaults to zero.
func parseTime(ts *TimeSpec, spec, clock string) error {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return unrecognized(spec)
	}

	for _, p := range parts {
		if !allDigits(p) {
			return unrecognized(spec)
		}
		if len(p) != 2 {
			return malformedNumber(spec, p)
		}
	}

	ts.Hour, _ = strconv.Atoi(parts[0])
	ts.Minute, _ = strconv.Atoi(parts[1])
	if len(parts) == 3 {
		ts.Second, _ = strconv.Atoi(parts[2])
	}

	if ts.Hour > 23 {
		return invalidField(spec, "hour", ts.Hour)
	}
	if ts.Minute > 59 {
		return invalidField(spec, "minute", ts.Minute)
	}
	if ts.Second > 59 {
		return invalidField(spec, "second", ts.Second)
	}

	return nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
