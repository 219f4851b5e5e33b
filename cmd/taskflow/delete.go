package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long:    `Delete permanently removes a task from the list. It accepts a full ID or a unique prefix.`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		task := resolveTask(svc, args[0])

		if err := svc.Delete(context.Background(), task.ID); err != nil {
			fatal("Failed to delete task", err)
		}

		fmt.Printf("Deleted: %s\n", task.Title)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
