package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	StoreType       string `json:"store_type"`
	Loaded          bool   `json:"loaded"`
	Tasks           int    `json:"tasks"`
	Active          int    `json:"active"`
	Completed       int    `json:"completed"`
	EventBufferSize int    `json:"event_buffer_size"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	stats := s.Stats()

	s.mu.RLock()
	defer s.mu.RUnlock()

	storeType := "unknown"
	if s.store != nil {
		storeType = "store"
		if comp, ok := s.store.(introspection.Component); ok {
			storeType = comp.ComponentType()
		}
	}

	return ServiceState{
		StoreType:       storeType,
		Loaded:          s.loaded,
		Tasks:           len(s.tasks),
		Active:          stats.Active,
		Completed:       stats.Completed,
		EventBufferSize: s.eventBufferSize,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
