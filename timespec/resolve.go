/* Copyright (c) 2021 David Bulkow */

package timespec

import "time"

// Resolve combines the specification with an anchor "now" to produce a
// concrete time in the anchor's location.
//
// Absolute specifications carrying a date never consult the anchor; a
// bare time takes its date from the anchor. "today", "tomorrow" and
// "yesterday" are midnight of the anchor's date shifted by a calendar
// day; "now" is the anchor unchanged. Relative clock units (seconds,
// minutes, hours) shift by a fixed duration. Relative calendar units
// (days, weeks, months, years) shift with AddDate, which normalizes
// overflow rather than clamping: one month after January 31st is
// March 2nd (March 3rd off a leap year).
func (ts *TimeSpec) Resolve(anchor time.Time) time.Time {
	switch ts.Kind {
	case Named:
		switch ts.Keyword {
		case Today:
			return midnight(anchor)
		case Tomorrow:
			return midnight(anchor).AddDate(0, 0, 1)
		case Yesterday:
			return midnight(anchor).AddDate(0, 0, -1)
		}
		return anchor

	case Relative:
		n := ts.Amount * int(ts.Sign)
		switch ts.Unit {
		case Minutes:
			return anchor.Add(time.Duration(n) * time.Minute)
		case Hours:
			return anchor.Add(time.Duration(n) * time.Hour)
		case Days:
			return anchor.AddDate(0, 0, n)
		case Weeks:
			return anchor.AddDate(0, 0, 7*n)
		case Months:
			return anchor.AddDate(0, n, 0)
		case Years:
			return anchor.AddDate(n, 0, 0)
		}
		return anchor.Add(time.Duration(n) * time.Second)
	}

	year, month, day := ts.Year, time.Month(ts.Month), ts.Day
	if ts.DateOmitted {
		year, month, day = anchor.Date()
	}

	return time.Date(year, month, day, ts.Hour, ts.Minute, ts.Second, 0, anchor.Location())
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
