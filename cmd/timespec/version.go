/* Copyright (c) 2021 David Bulkow */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	GitHash   string
	BuildTime string
)

func init() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Display git hash and build data",
		Long:  "Display git hash and build data",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Git Commit Hash: %s\n", GitHash)
			fmt.Printf("Build Time:      %s\n", BuildTime)
		},
	}

	RootCmd.AddCommand(versionCmd)
}
