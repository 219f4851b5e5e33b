package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/taskflow/pkg/core"
)

// DefaultFile is the task list file name inside the store root.
const DefaultFile = "tasks.json"

// Config holds the configuration for the filesystem store.
type Config struct {
	Path         string // store root directory
	File         string // file name inside Path; the extension selects the format
	MustExist    bool
	ReadOnly     bool
	EventBuffer  int
	Logger       *slog.Logger
	ErrorHandler func(error) // receives watcher runtime errors
}

// Store implements core.Store on a single file.
type Store struct {
	Path string

	config      Config
	serializers map[string]Serializer

	mu            sync.RWMutex
	watcherActive bool
	lastLoad      *time.Time
	lastCount     int
	corrupt       bool
}

// NewStore creates a new filesystem-backed store.
func NewStore(config Config) *Store {
	if config.File == "" {
		config.File = DefaultFile
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		Path:        config.Path,
		config:      config,
		serializers: DefaultSerializers(),
	}
}

// RegisterSerializer adds or replaces the serializer for an extension (e.g. ".toml").
func (s *Store) RegisterSerializer(ext string, serializer Serializer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.serializers[ext] = serializer
}

// Filename returns the absolute-or-relative path of the task file.
func (s *Store) Filename() string {
	return filepath.Join(s.Path, s.config.File)
}

// Initialize creates the store directory unless it must already exist.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.MustExist || s.config.ReadOnly {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("store path does not exist: %s", s.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("store path is not a directory: %s", s.Path)
		}
	} else if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	if _, _, err := serializerFor(s.config.File, s.serializers); err != nil {
		return err
	}
	return nil
}

// Load reads the task file.
//
// A missing file yields an empty list. So does an unparsable one: the payload
// is treated as "no data" and a warning is logged. The next Save overwrites
// the corrupt file, so corruption silently erases history.
func (s *Store) Load(ctx context.Context) ([]core.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	serializer, _, err := serializerFor(s.config.File, s.serializers)
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Filename())
	if errors.Is(err, os.ErrNotExist) {
		s.recordLoad(0, false)
		return []core.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.recordLoad(0, false)
		return []core.Task{}, nil
	}

	tasks, err := serializer.Decode(data)
	if err != nil {
		s.config.Logger.Warn("task file is corrupt, starting empty", "path", s.Filename(), "error", err)
		s.recordLoad(0, true)
		return []core.Task{}, nil
	}
	if tasks == nil {
		tasks = []core.Task{}
	}

	s.recordLoad(len(tasks), false)
	return tasks, nil
}

// Save encodes the list and atomically replaces the task file.
func (s *Store) Save(ctx context.Context, tasks []core.Task) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	serializer, _, err := serializerFor(s.config.File, s.serializers)
	s.mu.RUnlock()
	if err != nil {
		return err
	}

	data, err := serializer.Encode(tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	if err := writeFileAtomic(s.Filename(), data, 0644); err != nil {
		return err
	}

	s.mu.Lock()
	s.lastCount = len(tasks)
	s.corrupt = false
	s.mu.Unlock()

	s.config.Logger.Debug("task file written", "path", s.Filename(), "tasks", len(tasks))
	return nil
}

func (s *Store) recordLoad(count int, corrupt bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.lastLoad = &now
	s.lastCount = count
	s.corrupt = corrupt
}

var _ core.Store = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
