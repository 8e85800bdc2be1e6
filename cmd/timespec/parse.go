/* Copyright (c) 2021 David Bulkow */

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbulkow/timespec/timespec"
)

func init() {
	parseCmd := &cobra.Command{
		Use:     "parse <time specification>",
		Aliases: []string{"resolve"},
		Short:   "Resolve a time specification",
		Long: `Resolve a time specification against the anchor time.

Accepted forms:

    now  today  tomorrow  yesterday
    -5min  +2days  -90  (a bare count is seconds)
    2012-10-30 18:17:16
    2012-10-30
    18:17:16
`,
		Args: cobra.MinimumNArgs(1),
		RunE: parse,
	}

	RootCmd.AddCommand(parseCmd)
}

func parse(cmd *cobra.Command, args []string) error {
	ts, err := timespec.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}

	now, err := anchor()
	if err != nil {
		return err
	}

	resolved := ts.Resolve(now)

	if jsonOutput {
		out := struct {
			Input    string `json:"input"`
			Spec     string `json:"spec"`
			Resolved string `json:"resolved"`
		}{strings.Join(args, " "), ts.String(), resolved.Format(timeLayout)}

		return json.NewEncoder(os.Stdout).Encode(&out)
	}

	fmt.Println(resolved.Format(timeLayout))

	return nil
}
