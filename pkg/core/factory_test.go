package core_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/taskflow/pkg/core"
)

func TestFactory_Defaults(t *testing.T) {
	before := time.Now().UnixMilli()
	task := core.Factory{}.New(core.Intent{Title: "Gym", Group: core.GroupHealth, Due: core.DueToday})

	_, err := uuid.Parse(task.ID)
	require.NoError(t, err, "default ID should be a UUID")
	assert.GreaterOrEqual(t, task.CreatedAt, before)
	assert.False(t, task.Completed)
	assert.Zero(t, task.CompletedAt)
	assert.Equal(t, core.DueToday, task.DueDate)
	assert.Empty(t, task.Research)
}

func TestFactory_UniqueIDs(t *testing.T) {
	f := core.Factory{}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := f.New(core.Intent{Title: "x", Group: core.GroupInbox}).ID
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestFactory_InvalidGroupFallsBackToInbox(t *testing.T) {
	task := core.Factory{}.New(core.Intent{Title: "x", Group: "nope"})
	assert.Equal(t, core.GroupInbox, task.Group)
}

func TestFactory_Research(t *testing.T) {
	f := core.Factory{Research: func(title string) (string, bool) {
		return "note for " + title, title == "Deploy"
	}}

	assert.Equal(t, "note for Deploy", f.New(core.Intent{Title: "Deploy"}).Research)
	assert.Empty(t, f.New(core.Intent{Title: "Gym"}).Research)
}
