package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show every field of a task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		t := resolveTask(svc, args[0])

		if showJSON {
			if err := writeJSON(os.Stdout, t); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		info := t.Group.Info()
		fmt.Printf("ID:        %s\n", t.ID)
		fmt.Printf("Title:     %s\n", t.Title)
		fmt.Printf("Group:     %s %s\n", info.Icon, info.Label)
		if t.DueDate != "" {
			fmt.Printf("Due:       %s\n", t.DueDate)
		}
		if t.Priority != "" {
			fmt.Printf("Priority:  %s\n", t.Priority)
		}
		fmt.Printf("Created:   %s\n", formatMillis(t.CreatedAt))
		if t.Completed {
			fmt.Printf("Completed: %s\n", formatMillis(t.CompletedAt))
		}
		if t.Notes != "" {
			fmt.Printf("Notes:     %s\n", t.Notes)
		}
		if t.Research != "" {
			fmt.Printf("Research:  %s\n", t.Research)
		}
	},
}

func formatMillis(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).Local().Format(time.RFC3339)
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
