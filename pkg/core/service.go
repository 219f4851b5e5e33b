package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Parser turns one utterance into zero or more intents.
type Parser func(utterance string) []Intent

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithFactory sets the task factory used by Submit.
func WithFactory(f Factory) ServiceOption {
	return func(s *Service) {
		s.factory = f
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithEventBuffer sets the buffer hint reported through introspection.
func WithEventBuffer(size int) ServiceOption {
	return func(s *Service) {
		s.eventBufferSize = size
	}
}

// GroupedTasks is one section of the grouped listing.
type GroupedTasks struct {
	Info      GroupInfo
	Active    []Task
	Completed []Task
}

// Stats summarises the task list.
type Stats struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// Total returns the number of tasks.
func (s Stats) Total() int {
	return s.Active + s.Completed
}

// Service handles the business logic for the task list.
// It owns the in-memory list: loaded once by Open, flushed on every mutation.
type Service struct {
	mu              sync.RWMutex
	store           Store
	parse           Parser
	factory         Factory
	logger          *slog.Logger
	tasks           []Task
	loaded          bool
	eventBufferSize int
}

// NewService creates a new Service.
func NewService(store Store, parse Parser, opts ...ServiceOption) *Service {
	s := &Service{
		store: store,
		parse: parse,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// Open loads the task list from the store.
func (s *Service) Open(ctx context.Context) error {
	return s.Reload(ctx)
}

// Reload re-reads the task list from the store, discarding the in-memory copy.
func (s *Service) Reload(ctx context.Context) error {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	for i := range tasks {
		if !tasks[i].Group.Valid() {
			s.logger.Warn("unknown group coerced to inbox", "id", tasks[i].ID, "group", tasks[i].Group)
			tasks[i].Group = GroupInbox
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
	s.loaded = true
	s.logger.Debug("tasks loaded", "count", len(tasks))
	return nil
}

// Parse runs the parser without touching the list.
func (s *Service) Parse(utterance string) []Intent {
	if s.parse == nil {
		return nil
	}
	return s.parse(utterance)
}

// Submit parses utterance, creates one task per intent and prepends them
// (in parse order) to the list. It returns the created tasks.
func (s *Service) Submit(ctx context.Context, utterance string) ([]Task, error) {
	if s.parse == nil {
		return nil, errors.New("service has no parser")
	}

	intents := s.parse(utterance)
	if len(intents) == 0 {
		s.logger.Debug("utterance produced no tasks", "utterance", utterance)
		return nil, nil
	}

	created := make([]Task, 0, len(intents))
	for _, intent := range intents {
		created = append(created, s.factory.New(intent))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Task, 0, len(created)+len(s.tasks))
	next = append(next, created...)
	next = append(next, s.tasks...)
	s.tasks = next

	for _, t := range created {
		s.logger.Info("task created", "id", t.ID, "group", t.Group, "due", t.DueDate)
	}

	return created, s.flushLocked(ctx)
}

// Toggle flips the completion flag of the task with the given ID.
// Completing stamps CompletedAt; reopening clears it.
func (s *Service) Toggle(ctx context.Context, id string) (Task, error) {
	if id == "" {
		return Task{}, ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return Task{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	t := &s.tasks[i]
	t.Completed = !t.Completed
	if t.Completed {
		t.CompletedAt = s.factory.now().UnixMilli()
	} else {
		t.CompletedAt = 0
	}
	s.logger.Info("task toggled", "id", t.ID, "completed", t.Completed)

	return *t, s.flushLocked(ctx)
}

// Delete removes the task with the given ID. Deletion leaves no tombstone.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	next := make([]Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:i]...)
	next = append(next, s.tasks[i+1:]...)
	s.tasks = next
	s.logger.Info("task deleted", "id", id)

	return s.flushLocked(ctx)
}

// Resolve finds a task by full ID or by a unique ID prefix.
func (s *Service) Resolve(ref string) (Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Task{}, ErrEmptyID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexLocked(ref); i >= 0 {
		return s.tasks[i], nil
	}

	var matches []Task
	for _, t := range s.tasks {
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		return Task{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return Task{}, fmt.Errorf("%w: %q matches %d tasks", ErrAmbiguous, ref, len(matches))
	}
}

// List returns a copy of the task list, newest first.
func (s *Service) List() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Grouped returns the non-empty groups in display order, with active tasks
// ahead of completed ones.
func (s *Service) Grouped() []GroupedTasks {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []GroupedTasks
	for _, g := range displayOrder {
		section := GroupedTasks{Info: g.Info()}
		for _, t := range s.tasks {
			if t.Group != g {
				continue
			}
			if t.Completed {
				section.Completed = append(section.Completed, t)
			} else {
				section.Active = append(section.Active, t)
			}
		}
		if len(section.Active)+len(section.Completed) > 0 {
			out = append(out, section)
		}
	}
	return out
}

// Stats counts active and completed tasks.
func (s *Service) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st Stats
	for _, t := range s.tasks {
		if t.Completed {
			st.Completed++
		} else {
			st.Active++
		}
	}
	return st
}

// Watch observes changes in the store if supported.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}
	return w.Watch(ctx, pattern)
}

// Store exposes the underlying store.
func (s *Service) Store() Store {
	return s.store
}

func (s *Service) indexLocked(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// flushLocked persists the current list. The in-memory list keeps the
// mutation even when the store refuses it.
func (s *Service) flushLocked(ctx context.Context) error {
	start := time.Now()
	if err := s.store.Save(ctx, s.tasks); err != nil {
		s.logger.Error("save tasks failed", "error", err)
		return fmt.Errorf("save tasks: %w", err)
	}
	s.logger.Debug("tasks saved", "count", len(s.tasks), "took", time.Since(start))
	return nil
}
