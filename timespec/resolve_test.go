/* Copyright (c) 2021 David Bulkow */

package timespec

import (
	"testing"
	"time"
)

const layout = "2006-01-02 15:04:05"

func TestResolve(t *testing.T) {
	const DefaultAnchor = "2012-10-30 18:17:16"

	tests := []struct {
		name   string
		spec   string
		anchor string
		want   string
	}{
		{
			name: "today",
			spec: "today",
			want: "2012-10-30 00:00:00",
		},
		{
			name: "tomorrow",
			spec: "tomorrow",
			want: "2012-10-31 00:00:00",
		},
		{
			name: "yesterday",
			spec: "yesterday",
			want: "2012-10-29 00:00:00",
		},
		{
			name: "now",
			spec: "now",
			want: "2012-10-30 18:17:16",
		},
		{
			name: "full date and time",
			spec: "2012-10-30 18:17:16",
			want: "2012-10-30 18:17:16",
		},
		{
			name: "date only",
			spec: "2012-10-30",
			want: "2012-10-30 00:00:00",
		},
		{
			name: "date and time without seconds",
			spec: "2012-10-30 18:17",
			want: "2012-10-30 18:17:00",
		},
		{
			name: "time takes date from anchor",
			spec: "18:17:16",
			want: "2012-10-30 18:17:16",
		},
		{
			name:   "earlier time same day",
			spec:   "03:00",
			anchor: "2012-10-30 18:17:16",
			want:   "2012-10-30 03:00:00",
		},
		{
			name: "minus one hour",
			spec: "-1hour",
			want: "2012-10-30 17:17:16",
		},
		{
			name: "plus one day",
			spec: "+1day",
			want: "2012-10-31 18:17:16",
		},
		{
			name: "bare count is seconds",
			spec: "-90",
			want: "2012-10-30 18:15:46",
		},
		{
			name: "plus two weeks",
			spec: "+2w",
			want: "2012-11-13 18:17:16",
		},
		{
			name: "hours wrap past midnight",
			spec: "+6h",
			want: "2012-10-31 00:17:16",
		},
		{
			name:   "minutes wrap before midnight",
			spec:   "-30min",
			anchor: "2012-10-31 00:10:00",
			want:   "2012-10-30 23:40:00",
		},
		{
			name:   "month overflow normalizes",
			spec:   "+1month",
			anchor: "2012-01-31 08:00:00",
			want:   "2012-03-02 08:00:00",
		},
		{
			name:   "year back from leap day normalizes",
			spec:   "-1y",
			anchor: "2012-02-29 12:00:00",
			want:   "2011-03-01 12:00:00",
		},
		{
			name:   "yesterday across month boundary",
			spec:   "yesterday",
			anchor: "2012-11-01 06:00:00",
			want:   "2012-10-31 00:00:00",
		},
		{
			name:   "tomorrow across year boundary",
			spec:   "tomorrow",
			anchor: "2012-12-31 23:59:59",
			want:   "2013-01-01 00:00:00",
		},
		{
			name:   "minus days across leap day",
			spec:   "-2days",
			anchor: "2016-03-01 09:00:00",
			want:   "2016-02-28 09:00:00",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.anchor == "" {
				tc.anchor = DefaultAnchor
			}

			anchor, err := time.Parse(layout, tc.anchor)
			if err != nil {
				t.Fatalf("anchor parse: %v", err)
			}

			ts, err := Parse(tc.spec)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}

			if got := ts.Resolve(anchor).Format(layout); got != tc.want {
				t.Fatalf("resolve exp %q got %q", tc.want, got)
			}
		})
	}
}

// A specification carrying a full date and time resolves to the same
// instant no matter the anchor.
func TestResolveAnchorIndependent(t *testing.T) {
	specs := []string{
		"2012-10-30 18:17:16",
		"2012-10-30 18:17",
		"2012-10-30",
		"2000-02-29 23:59:59",
	}

	anchors := []string{
		"2012-10-30 18:17:16",
		"1970-01-01 00:00:00",
		"2038-01-19 03:14:07",
	}

	for _, spec := range specs {
		ts, err := Parse(spec)
		if err != nil {
			t.Fatalf("parse %q: %v", spec, err)
		}

		var last string
		for i, a := range anchors {
			anchor, err := time.Parse(layout, a)
			if err != nil {
				t.Fatalf("anchor parse: %v", err)
			}

			got := ts.Resolve(anchor).Format(layout)
			if i > 0 && got != last {
				t.Errorf("%q resolved to %q and %q under different anchors", spec, last, got)
			}
			last = got
		}
	}
}

// Resolving an absolute specification twice is the identity.
func TestResolveIdempotent(t *testing.T) {
	anchor, err := time.Parse(layout, "2012-10-30 18:17:16")
	if err != nil {
		t.Fatalf("anchor parse: %v", err)
	}

	ts, err := Parse("2024-08-08 14:10:11")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	first := ts.Resolve(anchor)

	again, err := Parse(first.Format(layout))
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}

	if second := again.Resolve(anchor); !second.Equal(first) {
		t.Fatalf("resolve not idempotent: %v then %v", first, second)
	}
}

func TestResolveKeepsLocation(t *testing.T) {
	loc := time.FixedZone("X", -4*3600)
	anchor := time.Date(2012, time.October, 30, 18, 17, 16, 0, loc)

	for _, spec := range []string{"now", "today", "18:17", "2012-10-30", "-1hour"} {
		ts, err := Parse(spec)
		if err != nil {
			t.Fatalf("parse %q: %v", spec, err)
		}
		if got := ts.Resolve(anchor).Location(); got != loc {
			t.Errorf("%q location exp %v got %v", spec, loc, got)
		}
	}
}
