package taskflow

import (
	"log/slog"
	"time"

	"github.com/aretw0/taskflow/internal/platform"
	"github.com/aretw0/taskflow/pkg/adapters/fs"
	"github.com/aretw0/taskflow/pkg/core"
	"github.com/aretw0/taskflow/pkg/parse"
)

// --- Types ---

// Task is a public alias for the stored task record.
type Task = core.Task

// Intent is a public alias for one parsed phrase.
type Intent = core.Intent

// Group is a public alias for the task category.
type Group = core.Group

// Service is a public alias for the task list service.
type Service = core.Service

// --- Configuration ---

// Option defines a functional option for configuring taskflow.
type Option = platform.Option

// Config mirrors the optional config.yaml in the store root.
type Config = platform.Config

// WithAdapter selects the storage adapter by name ("fs" or "memory").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithStore injects a custom store.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithFile sets the task file name; its extension selects the format.
func WithFile(name string) Option {
	return platform.WithFile(name)
}

// WithReadOnly enables read-only mode.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithMustExist ensures the store root must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithAutoInit controls whether a missing store root is created.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithDevSafety controls the temp-dir sandbox used under `go run`/`go test`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithEventBuffer sets the size of the watch event buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithClock replaces the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithIDGenerator replaces the UUID generator used for new tasks.
func WithIDGenerator(fn func() string) Option {
	return platform.WithIDGenerator(fn)
}

// WithWatcherErrorHandler registers a callback for watch loop errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// WithSerializer registers a serializer for a task file extension.
func WithSerializer(ext string, s fs.Serializer) Option {
	return platform.WithSerializer(ext, s)
}

// --- Factory ---

// New creates a service over the store at path and loads the task list.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init initializes a store explicitly.
func Init(path string, opts ...Option) (core.Store, error) {
	return platform.Init(path, opts...)
}

// Parse turns an utterance into intents without touching any store.
func Parse(utterance string) []core.Intent {
	return parse.Parse(utterance)
}

// LoadConfig reads config.yaml from dir.
func LoadConfig(dir string) (Config, error) {
	return platform.LoadConfig(dir)
}

// --- Safety & Utils ---

// ResolveStorePath determines the actual store root based on safety rules.
func ResolveStorePath(userPath string, forceTemp bool) string {
	return platform.ResolveStorePath(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// FindRoot looks upwards for a directory containing .taskflow.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}

// ResolveHome picks the store root: $TASKFLOW_HOME, the nearest project, or ~/.taskflow.
func ResolveHome(startDir string) (string, error) {
	return platform.ResolveHome(startDir)
}

// ParseLevel maps debug/info/warn/error to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	return platform.ParseLevel(s)
}
