package fs

import (
	"sort"
	"time"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string     `json:"path"`
	File          string     `json:"file"`
	Format        string     `json:"format"`
	ReadOnly      bool       `json:"read_only"`
	Tasks         int        `json:"tasks"`
	Corrupt       bool       `json:"corrupt"`
	Serializers   []string   `json:"serializers"`
	WatcherActive bool       `json:"watcher_active"`
	LastLoad      *time.Time `json:"last_load,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	serializers := make([]string, 0, len(s.serializers))
	for ext := range s.serializers {
		serializers = append(serializers, ext)
	}
	sort.Strings(serializers)

	_, format, _ := serializerFor(s.config.File, s.serializers)

	return StoreState{
		Path:          s.Path,
		File:          s.config.File,
		Format:        format,
		ReadOnly:      s.config.ReadOnly,
		Tasks:         s.lastCount,
		Corrupt:       s.corrupt,
		Serializers:   serializers,
		WatcherActive: s.watcherActive,
		LastLoad:      s.lastLoad,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "fs-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}
