package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/taskflow/pkg/adapters/fs"
	"github.com/aretw0/taskflow/pkg/core"
)

// options holds the internal configuration for the taskflow service.
type options struct {
	store        core.Store
	logger       *slog.Logger
	adapter      string
	file         string
	readOnly     bool
	mustExist    bool
	autoInit     bool
	devSafety    bool
	forceTemp    bool
	eventBuffer  int
	clock        func() time.Time
	newID        func() string
	errorHandler func(error)
	serializers  map[string]fs.Serializer
}

// Option defines a functional option for configuring taskflow.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter:     "fs",
		autoInit:    true,
		devSafety:   true,
		serializers: make(map[string]fs.Serializer),
	}
}

func buildOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithAdapter selects the storage adapter by name ("fs" or "memory").
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithStore injects a custom store. The adapter setting is ignored.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithLogger sets the logger for the service and its store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFile sets the task file name inside the store root. The extension
// selects the serializer. Defaults to tasks.json.
func WithFile(name string) Option {
	return func(o *options) {
		o.file = name
	}
}

// WithReadOnly enables read-only mode.
// In this mode:
// 1. Mutations still apply in memory but Save returns ErrReadOnly.
// 2. The store root is never created.
// 3. Dev safety is bypassed (uses the real path).
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithMustExist fails initialization when the store root is missing.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithAutoInit controls whether a missing store root is created.
// Enabled by default.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.autoInit = auto
	}
}

// WithDevSafety controls the sandbox used when running via `go run` or `go test`.
// By default (true) the store root is re-homed into a temporary directory.
//
// CAUTION: Only disable this if you are sure your code is safe.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithEventBuffer sets the size of the watch event buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithClock replaces the wall clock used for CreatedAt and CompletedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithIDGenerator replaces the UUID generator used for new tasks.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		o.newID = fn
	}
}

// WithWatcherErrorHandler registers a callback for errors raised inside the
// watch loop (e.g. permission denied), which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}

// WithSerializer registers a serializer for a task file extension.
func WithSerializer(ext string, s fs.Serializer) Option {
	return func(o *options) {
		o.serializers[ext] = s
	}
}
