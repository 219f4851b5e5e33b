package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/taskflow"
	"github.com/aretw0/taskflow/pkg/core"
)

var (
	verbose  bool
	homeFlag string
	readOnly bool

	// settings is config.yaml from the store root, loaded before every command.
	settings taskflow.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "taskflow",
	Short: "Turn free-form text into a grouped task list",
	Long: `taskflow splits what you type into separate tasks, files each one under a
group (work, dev, personal, health, finance, later or inbox) and tags an
optional due date, all from fixed keyword rules.

  taskflow add "call mom tomorrow and deploy the new API"`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo

		if home, err := storeHome(); err == nil {
			cfg, err := taskflow.LoadConfig(home)
			if err != nil {
				fatal("Invalid configuration", err)
			}
			settings = cfg
			if cfg.LogLevel != "" {
				// validated by LoadConfig
				level, _ = taskflow.ParseLevel(cfg.LogLevel)
			}
		}

		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&homeFlag, "home", "", "Store root (default: $TASKFLOW_HOME, nearest .taskflow, or ~/.taskflow)")
	rootCmd.PersistentFlags().BoolVar(&readOnly, "read-only", false, "Never write to the store")
}

// storeHome resolves the store root from --home or the environment.
func storeHome() (string, error) {
	if homeFlag != "" {
		return homeFlag, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return taskflow.ResolveHome(wd)
}

// storeOptions merges config.yaml with command line flags; flags win.
func storeOptions(extra ...taskflow.Option) []taskflow.Option {
	opts := append(settings.Options(), taskflow.WithLogger(slog.Default()))
	if readOnly {
		opts = append(opts, taskflow.WithReadOnly(true))
	}
	return append(opts, extra...)
}

// openService opens the task list or exits.
func openService(extra ...taskflow.Option) *core.Service {
	home, err := storeHome()
	if err != nil {
		fatal("Failed to resolve store root", err)
	}

	svc, err := taskflow.New(home, storeOptions(extra...)...)
	if err != nil {
		fatal("Failed to open task store", err)
	}
	return svc
}

// resolveTask finds a task by ID or unique prefix or exits.
func resolveTask(svc *core.Service, ref string) core.Task {
	task, err := svc.Resolve(ref)
	if err != nil {
		fatal("Task lookup failed", err)
	}
	return task
}
