package core

import (
	"time"

	"github.com/google/uuid"
)

// Factory turns parsed intents into task records.
// Nil fields fall back to uuid IDs, the wall clock and no research.
type Factory struct {
	NewID    func() string
	Now      func() time.Time
	Research func(title string) (string, bool)
}

// New creates a fresh, incomplete task from intent.
func (f Factory) New(intent Intent) Task {
	t := Task{
		ID:        f.id(),
		Title:     intent.Title,
		Completed: false,
		CreatedAt: f.now().UnixMilli(),
		Group:     intent.Group,
		DueDate:   intent.Due,
	}
	if !t.Group.Valid() {
		t.Group = GroupInbox
	}
	if f.Research != nil {
		if note, ok := f.Research(intent.Title); ok {
			t.Research = note
		}
	}
	return t
}

func (f Factory) id() string {
	if f.NewID != nil {
		return f.NewID()
	}
	return uuid.NewString()
}

func (f Factory) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}
