package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Add tasks from free-form text",
	Long: `Add splits the text on commas, semicolons, "and" and "also", and creates one
task per phrase. New tasks go to the top of the list.`,
	Example: `  taskflow add "pay rent tomorrow, gym"
  taskflow add call mom this week and deploy the new API`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()

		created, err := svc.Submit(context.Background(), strings.Join(args, " "))
		if err != nil {
			fatal("Failed to save tasks", err)
		}

		if len(created) == 0 {
			fmt.Println("Nothing to add.")
			return
		}

		for _, t := range created {
			fmt.Printf("%s %s\n", t.Group.Info().Icon, strings.TrimLeft(taskLine(t), " "))
		}
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
