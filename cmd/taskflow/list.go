package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/taskflow/pkg/core"
)

var (
	listJSON  bool
	listGroup string
	listMatch string
	listAll   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks by group",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var group core.Group
		if listGroup != "" {
			g, ok := core.ParseGroup(listGroup)
			if !ok {
				fatal("Unknown group", fmt.Errorf("%q", listGroup))
			}
			group = g
		}

		svc := openService()

		sections, err := filterSections(svc.Grouped(), group, listMatch)
		if err != nil {
			fatal("Invalid filter", err)
		}

		if listJSON {
			if err := writeJSON(os.Stdout, flatten(sections, true)); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		printGrouped(os.Stdout, sections, listAll)
		if group == "" && listMatch == "" {
			fmt.Println()
			printStats(os.Stdout, svc.Stats())
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVarP(&listGroup, "group", "g", "", "Only show one group")
	listCmd.Flags().StringVarP(&listMatch, "match", "m", "", "Only show titles matching a glob (e.g. '*report*')")
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "Include completed tasks")
}
