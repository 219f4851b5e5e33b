package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDevRun(t *testing.T) {
	// test binaries end in .test or live in a temp build dir
	assert.True(t, IsDevRun())
}

func TestResolveStorePath(t *testing.T) {
	tmp := os.TempDir()
	devRoot := filepath.Join(tmp, DevDir)

	tests := []struct {
		name      string
		input     string
		forceTemp bool
		want      string
	}{
		{name: "Production Relative", input: "tasks", want: "tasks"},
		{name: "Production Empty", input: "", want: "."},
		{name: "Dev Relative", input: "my-tasks", forceTemp: true, want: filepath.Join(devRoot, "my-tasks")},
		{name: "Dev Empty", input: "", forceTemp: true, want: filepath.Join(devRoot, "default")},
		{name: "Dev Dot", input: ".", forceTemp: true, want: filepath.Join(devRoot, "default")},
		{name: "Dev Nested", input: "a/b/.taskflow", forceTemp: true, want: filepath.Join(devRoot, ".taskflow")},
		{name: "Dev Already In Temp", input: filepath.Join(tmp, "x", "store"), forceTemp: true, want: filepath.Join(tmp, "x", "store")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveStorePath(tt.input, tt.forceTemp))
		})
	}
}
