package fs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/taskflow/pkg/core"
)

// Serializer defines how the task list is encoded in a specific file format.
type Serializer interface {
	// Decode parses data into a task list.
	Decode(data []byte) ([]core.Task, error)
	// Encode converts the task list to bytes.
	Encode(tasks []core.Task) ([]byte, error)
}

// DefaultSerializers returns the standard set of serializers keyed by extension.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		".json": JSONSerializer{},
		".toml": TOMLSerializer{},
		".yaml": YAMLSerializer{},
		".yml":  YAMLSerializer{},
	}
}

// serializerFor picks the serializer for filename's extension.
func serializerFor(filename string, registry map[string]Serializer) (Serializer, string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	s, ok := registry[ext]
	if !ok {
		return nil, "", fmt.Errorf("unsupported store format %q", ext)
	}
	return s, strings.TrimPrefix(ext, "."), nil
}

// --- JSON Serializer ---

// JSONSerializer stores the list as a top-level JSON array with 2-space
// indentation and a trailing newline.
type JSONSerializer struct{}

func (JSONSerializer) Decode(data []byte) ([]core.Task, error) {
	var tasks []core.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return tasks, nil
}

func (JSONSerializer) Encode(tasks []core.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []core.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// --- YAML Serializer ---

// YAMLSerializer stores the list as a YAML sequence.
type YAMLSerializer struct{}

func (YAMLSerializer) Decode(data []byte) ([]core.Task, error) {
	var tasks []core.Task
	if err := yaml.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return tasks, nil
}

func (YAMLSerializer) Encode(tasks []core.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []core.Task{}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(tasks); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- TOML Serializer ---

// TOMLSerializer stores the list as an array of tables under "tasks";
// TOML has no top-level arrays.
type TOMLSerializer struct{}

type tomlDocument struct {
	Tasks []core.Task `toml:"tasks"`
}

func (TOMLSerializer) Decode(data []byte) ([]core.Task, error) {
	var doc tomlDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid toml: %w", err)
	}
	return doc.Tasks, nil
}

func (TOMLSerializer) Encode(tasks []core.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []core.Task{}
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(tomlDocument{Tasks: tasks}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
