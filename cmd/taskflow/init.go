package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/taskflow"
	"github.com/aretw0/taskflow/internal/platform"
	"github.com/aretw0/taskflow/pkg/adapters/fs"
)

var initHere bool

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a task store",
	Long: `Init creates the store root and a default config.yaml. With --here the store
is created in ./.taskflow so commands run inside this directory tree use it.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		home := homeFlag
		if initHere {
			home = platform.RootMarker
		}
		if home == "" {
			var err error
			if home, err = storeHome(); err != nil {
				fatal("Failed to resolve store root", err)
			}
		}

		store, err := taskflow.Init(home, storeOptions(taskflow.WithAutoInit(true))...)
		if err != nil {
			fatal("Failed to initialize store", err)
		}

		root := home
		if fsStore, ok := store.(*fs.Store); ok {
			root = fsStore.Path
		}

		if !readOnly {
			if err := writeDefaultConfig(root); err != nil {
				fatal("Failed to write config", err)
			}
		}

		fmt.Println("Initialized task store in", root)
	},
}

// writeDefaultConfig creates config.yaml unless one exists.
func writeDefaultConfig(root string) error {
	path := filepath.Join(root, platform.ConfigFile)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cfg := settings
	if cfg.File == "" {
		cfg.File = fs.DefaultFile
	}
	if cfg.Adapter == "" {
		cfg.Adapter = "fs"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initHere, "here", false, "Create the store in ./.taskflow")
}
