package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/taskflow"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of taskflow",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taskflow version %s\n", taskflow.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
