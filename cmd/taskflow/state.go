package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/taskflow/pkg/adapters/fs"
	"github.com/aretw0/taskflow/pkg/core"
)

var stateDiagram bool

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the internal state of the service and its store",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()

		svcState, _ := svc.State().(core.ServiceState)
		var storeState any
		if intro, ok := svc.Store().(introspection.Introspectable); ok {
			storeState = intro.State()
		}

		if stateDiagram {
			config := introspection.DefaultDiagramConfig()
			config.SecondaryID = "taskflow"
			config.SecondaryLabel = "Task Store Topology"
			fmt.Println(introspection.TreeDiagram(buildStateTree(svcState, storeState), config))
			return
		}

		out := map[string]any{
			"service": svcState,
			"store":   storeState,
		}
		if err := writeJSON(os.Stdout, out); err != nil {
			fatal("Failed to encode JSON", err)
		}
	},
}

type stateNode struct {
	Name     string
	Status   string
	Metadata map[string]string
	Children []stateNode
}

// buildStateTree lays out service -> store -> watcher. Status values follow
// the classes of introspection.DefaultStyles().
func buildStateTree(svc core.ServiceState, store any) stateNode {
	status := "created"
	if svc.Loaded {
		status = "running"
	}

	root := stateNode{
		Name:   "Service",
		Status: status,
		Metadata: map[string]string{
			"type":      "process",
			"active":    strconv.Itoa(svc.Active),
			"completed": strconv.Itoa(svc.Completed),
		},
	}

	storeNode := stateNode{
		Name:     "Store",
		Status:   "running",
		Metadata: map[string]string{"type": svc.StoreType},
	}

	if st, ok := store.(fs.StoreState); ok {
		storeNode.Metadata["path"] = st.Path
		storeNode.Metadata["file"] = st.File
		storeNode.Metadata["format"] = st.Format
		if st.ReadOnly {
			storeNode.Status = "suspended"
		}
		if st.Corrupt {
			storeNode.Status = "failed"
		}

		watcherStatus := "suspended"
		if st.WatcherActive {
			watcherStatus = "running"
		}
		storeNode.Children = append(storeNode.Children, stateNode{
			Name:     "Watcher",
			Status:   watcherStatus,
			Metadata: map[string]string{"type": "goroutine"},
		})
	}

	root.Children = append(root.Children, storeNode)
	return root
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.Flags().BoolVar(&stateDiagram, "diagram", false, "Print a Mermaid diagram instead of JSON")
}
