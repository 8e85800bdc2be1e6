/* Copyright (c) 2021 David Bulkow */

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dbulkow/timespec/timespec"
)

var (
	since string
	until string
	boot  string
)

func init() {
	filterCmd := &cobra.Command{
		Use:   "filter [<export file> ...]",
		Short: "Filter journal JSON exports by time range",
		Long: `Filter journal records in the JSON export format by time range.
Records are read from the named files, or standard input when no files
are given. Bounds are inclusive and accept any time specification
understood by the parse command.

Boot IDs are compared as UUIDs, so --boot accepts both the dashed
spelling and the undashed one journald writes.
`,
		RunE: filter,
	}

	filterCmd.Flags().StringVar(&since, "since", env.Get("SINCE", ""), "drop records before this time")
	filterCmd.Flags().StringVar(&until, "until", env.Get("UNTIL", ""), "drop records after this time")
	filterCmd.Flags().StringVar(&boot, "boot", "", "only records from this boot ID")

	RootCmd.AddCommand(filterCmd)
}

// selector is the record filter with its bounds already resolved.
type selector struct {
	since    time.Time
	until    time.Time
	hasSince bool
	hasUntil bool
	boot     uuid.UUID
	hasBoot  bool
}

func newSelector(now time.Time) (*selector, error) {
	sel := &selector{}

	if since != "" {
		ts, err := timespec.Parse(since)
		if err != nil {
			return nil, fmt.Errorf("since: %v", err)
		}
		sel.since = ts.Resolve(now)
		sel.hasSince = true
	}

	if until != "" {
		ts, err := timespec.Parse(until)
		if err != nil {
			return nil, fmt.Errorf("until: %v", err)
		}
		sel.until = ts.Resolve(now)
		sel.hasUntil = true
	}

	if boot != "" {
		id, err := uuid.Parse(boot)
		if err != nil {
			return nil, fmt.Errorf("boot: %v", err)
		}
		sel.boot = id
		sel.hasBoot = true
	}

	return sel, nil
}

// match reports whether a record falls inside the selected range.
// Records without a usable timestamp, or without the requested boot
// ID, never match.
func (sel *selector) match(rec *Record) bool {
	t, err := rec.Time()
	if err != nil {
		return false
	}

	if sel.hasSince && t.Before(sel.since) {
		return false
	}
	if sel.hasUntil && t.After(sel.until) {
		return false
	}

	if sel.hasBoot {
		id, err := uuid.Parse(rec.BootID)
		if err != nil || id != sel.boot {
			return false
		}
	}

	return true
}

func (sel *selector) filterStream(name string, r io.Reader, w io.Writer) error {
	enc := json.NewEncoder(w)

	return readExport(name, r, func(rec *Record) error {
		if !sel.match(rec) {
			return nil
		}

		if jsonOutput {
			return enc.Encode(rec)
		}

		t, _ := rec.Time()
		_, err := fmt.Fprintf(w, "%s %s\n", t.Format(timeLayout), rec.Message)
		return err
	})
}

func filter(cmd *cobra.Command, args []string) error {
	now, err := anchor()
	if err != nil {
		return err
	}

	sel, err := newSelector(now)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return sel.filterStream("stdin", os.Stdin, os.Stdout)
	}

	for _, name := range args {
		file, err := os.Open(name)
		if err != nil {
			return err
		}

		err = sel.filterStream(name, file, os.Stdout)
		file.Close()
		if err != nil {
			return err
		}
	}

	return nil
}
