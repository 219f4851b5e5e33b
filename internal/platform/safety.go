package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// DevDir is the directory under os.TempDir that sandboxed stores live in.
const DevDir = "taskflow-dev"

// IsDevRun checks if the current process is running via `go run` or `go test`.
// Both build binaries in temporary directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(os.TempDir())) {
		return true
	}

	if strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe") {
		return true
	}

	return false
}

// ResolveStorePath determines the actual store root based on safety rules.
// With forceTemp set, paths outside the system temp directory are re-rooted
// under DevDir so a dev run never touches the user's real task list.
func ResolveStorePath(userPath string, forceTemp bool) string {
	if !forceTemp {
		if userPath == "" {
			return "."
		}
		return userPath
	}

	// already inside the temp dir (e.g. t.TempDir()): trust it
	clean := filepath.Clean(userPath)
	rel, err := filepath.Rel(os.TempDir(), clean)
	if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && filepath.IsAbs(clean) {
		return clean
	}

	sub := "default"
	if userPath != "" && userPath != "." && userPath != "./" {
		sub = filepath.Base(clean)
		if sub == "." || sub == string(os.PathSeparator) {
			sub = "default"
		}
	}

	return filepath.Join(os.TempDir(), DevDir, sub)
}
