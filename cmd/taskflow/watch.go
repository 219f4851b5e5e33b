package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	lcadapter "github.com/aretw0/taskflow/pkg/adapters/lifecycle"
)

var (
	watchAll     bool
	watchPattern string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reprint the task list whenever the store changes",
	Long:  `Watch keeps running until interrupted and reloads the list each time another process writes to the store.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc := openService()

		events, err := svc.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		source := lcadapter.NewSource(events)
		if err := source.Start(ctx); err != nil {
			fatal("Failed to start event source", err)
		}

		printGrouped(os.Stdout, svc.Grouped(), watchAll)

		for e := range source.Events() {
			slog.Debug("store changed", "event", e.String())
			if err := svc.Reload(ctx); err != nil {
				slog.Error("reload failed", "error", err)
				continue
			}
			fmt.Println()
			fmt.Println("---", e.String())
			printGrouped(os.Stdout, svc.Grouped(), watchAll)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVarP(&watchAll, "all", "a", false, "Include completed tasks")
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "", "Glob of store files to watch (default: the task file)")
}
