package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Toggle a task between active and completed",
	Long:  `Done accepts a full ID or any unique prefix of one. Running it on a completed task reopens it.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		task := resolveTask(svc, args[0])

		toggled, err := svc.Toggle(context.Background(), task.ID)
		if err != nil {
			fatal("Failed to update task", err)
		}

		if toggled.Completed {
			fmt.Printf("Completed: %s\n", toggled.Title)
		} else {
			fmt.Printf("Reopened: %s\n", toggled.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
