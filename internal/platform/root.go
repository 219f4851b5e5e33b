package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// RootMarker is the directory that holds a task store.
	RootMarker = ".taskflow"
	// HomeEnv overrides store root discovery.
	HomeEnv = "TASKFLOW_HOME"
)

// ErrRootNotFound is returned by FindRoot when no marker exists up the tree.
var ErrRootNotFound = errors.New("root not found")

// FindRoot looks upwards from startDir for a directory containing RootMarker
// and returns the absolute path of that directory.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasDir(dir, RootMarker) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", ErrRootNotFound
}

// ResolveHome picks the store root for startDir:
// $TASKFLOW_HOME, then the nearest project marker, then ~/.taskflow.
func ResolveHome(startDir string) (string, error) {
	if env := os.Getenv(HomeEnv); env != "" {
		return env, nil
	}

	root, err := FindRoot(startDir)
	if err == nil {
		return filepath.Join(root, RootMarker), nil
	}
	if !errors.Is(err, ErrRootNotFound) {
		return "", err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, RootMarker), nil
}

func hasDir(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && info.IsDir()
}
