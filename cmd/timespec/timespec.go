/* Copyright (c) 2021 David Bulkow */

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dbulkow/timespec/internal/getenv"
)

var RootCmd = &cobra.Command{
	Use:   "timespec",
	Short: "Work with journalctl-style time specifications",
	Long: `Parse journalctl-style time specifications and filter journal
JSON exports by time range.

environment:
    TIMESPEC_NOW    anchor time as YYYY-MM-DD HH:MM:SS
                    TIMESPEC_NOW_VALUE
    TIMESPEC_SINCE  default lower bound for the filter command
                    TIMESPEC_SINCE_VALUE
    TIMESPEC_UNTIL  default upper bound for the filter command
                    TIMESPEC_UNTIL_VALUE
`,
}

var (
	env = getenv.NewEnv("TIMESPEC")

	nowFlag    string
	jsonOutput bool
)

const timeLayout = "2006-01-02 15:04:05"

// anchor is the reference "now" used to resolve specifications, taken
// from --now (or TIMESPEC_NOW) when set, otherwise the wall clock.
func anchor() (time.Time, error) {
	if nowFlag == "" {
		return time.Now(), nil
	}

	t, err := time.ParseInLocation(timeLayout, nowFlag, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid anchor %q, expected %s", nowFlag, timeLayout)
	}

	return t, nil
}

func showValue(v string) string {
	if v == "" {
		return "(unset)"
	}
	return v
}

func main() {
	now := env.Get("NOW", "")

	RootCmd.Long = strings.ReplaceAll(RootCmd.Long, "TIMESPEC_NOW_VALUE", showValue(now))
	RootCmd.Long = strings.ReplaceAll(RootCmd.Long, "TIMESPEC_SINCE_VALUE", showValue(env.Get("SINCE", "")))
	RootCmd.Long = strings.ReplaceAll(RootCmd.Long, "TIMESPEC_UNTIL_VALUE", showValue(env.Get("UNTIL", "")))

	RootCmd.PersistentFlags().StringVar(&nowFlag, "now", now, "anchor time (YYYY-MM-DD HH:MM:SS)")
	RootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "JSON output")

	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
