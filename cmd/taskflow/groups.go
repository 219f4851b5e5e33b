package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aretw0/taskflow/pkg/core"
)

var groupsJSON bool

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List the task groups in display order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var infos []core.GroupInfo
		for _, g := range core.DisplayOrder() {
			infos = append(infos, g.Info())
		}

		if groupsJSON {
			if err := writeJSON(os.Stdout, infos); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "GROUP\tLABEL\tICON\tCOLOR")
		for _, info := range infos {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", info.Group, info.Label, info.Icon, info.Color)
		}
		tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(groupsCmd)
	groupsCmd.Flags().BoolVar(&groupsJSON, "json", false, "Output in JSON format")
}
