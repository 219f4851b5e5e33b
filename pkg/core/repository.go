package core

import "context"

// Store defines the contract for persisting the task list.
// Adhering to this interface keeps the service independent of the
// underlying storage mechanism (file, memory, ...).
type Store interface {
	// Initialize ensures the underlying storage is ready (e.g. create directories).
	Initialize(ctx context.Context) error

	// Load returns the persisted task list.
	// Missing or unparsable data yields an empty list, not an error.
	Load(ctx context.Context) ([]Task, error)

	// Save replaces the persisted task list.
	Save(ctx context.Context, tasks []Task) error
}

// Watchable defines an interface for stores that can report external changes.
type Watchable interface {
	// Watch emits an event for every change whose name matches pattern.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
