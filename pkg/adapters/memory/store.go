// Package memory implements core.Store in process memory.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/aretw0/taskflow/pkg/core"
)

// Store keeps the task list in memory. Load and Save copy, so callers never
// share backing arrays with the store.
type Store struct {
	mu       sync.RWMutex
	tasks    []core.Task
	readOnly bool
	saves    int
}

// New creates a store seeded with tasks.
func New(tasks ...core.Task) *Store {
	return &Store{tasks: clone(tasks)}
}

// NewReadOnly creates a store that refuses writes.
func NewReadOnly(tasks ...core.Task) *Store {
	s := New(tasks...)
	s.readOnly = true
	return s
}

func (s *Store) Initialize(ctx context.Context) error { return nil }

func (s *Store) Load(ctx context.Context) ([]core.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.tasks), nil
}

func (s *Store) Save(ctx context.Context, tasks []core.Task) error {
	if s.readOnly {
		return core.ErrReadOnly
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = clone(tasks)
	s.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (s *Store) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

// StoreState exposes internal state for observability.
type StoreState struct {
	Tasks    int  `json:"tasks"`
	Saves    int  `json:"saves"`
	ReadOnly bool `json:"read_only"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StoreState{Tasks: len(s.tasks), Saves: s.saves, ReadOnly: s.readOnly}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "memory-store"
}

var _ core.Store = (*Store)(nil)
var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

func clone(tasks []core.Task) []core.Task {
	out := make([]core.Task, len(tasks))
	copy(out, tasks)
	return out
}
