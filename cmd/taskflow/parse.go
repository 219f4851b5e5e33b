package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/taskflow"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse [text...]",
	Short: "Show how text would be split and classified, without saving",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		intents := taskflow.Parse(strings.Join(args, " "))

		if parseJSON {
			if intents == nil {
				intents = []taskflow.Intent{}
			}
			if err := writeJSON(os.Stdout, intents); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		if len(intents) == 0 {
			fmt.Println("No tasks found.")
			return
		}
		for _, in := range intents {
			due := "-"
			if in.Due != "" {
				due = string(in.Due)
			}
			fmt.Printf("%s %-10s %-10s %s\n", in.Group.Info().Icon, in.Group, due, in.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Output in JSON format")
}
