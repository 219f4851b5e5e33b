// Task is the central entity of the domain.
package core

import "fmt"

// Group is the topical bucket a task belongs to.
type Group string

const (
	GroupInbox    Group = "inbox"
	GroupWork     Group = "work"
	GroupPersonal Group = "personal"
	GroupDev      Group = "dev"
	GroupHealth   Group = "health"
	GroupFinance  Group = "finance"
	GroupLater    Group = "later"
)

// DueDate is a coarse relative date hint, not a resolved calendar date.
// The zero value means no hint.
type DueDate string

const (
	DueToday    DueDate = "today"
	DueTomorrow DueDate = "tomorrow"
	DueThisWeek DueDate = "this week"
	DueNextWeek DueDate = "next week"
)

// Priority is reserved for manual use. The parser never sets it.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Intent is the parser's output for one candidate phrase.
type Intent struct {
	Title string  `json:"title"`
	Group Group   `json:"group"`
	Due   DueDate `json:"dueDate,omitempty"`
}

// Task is the persisted record.
// Timestamps are Unix milliseconds; a zero CompletedAt means "not completed".
type Task struct {
	ID          string   `json:"id" yaml:"id" toml:"id"`
	Title       string   `json:"title" yaml:"title" toml:"title"`
	Notes       string   `json:"notes,omitempty" yaml:"notes,omitempty" toml:"notes,omitempty"`
	Completed   bool     `json:"completed" yaml:"completed" toml:"completed"`
	CreatedAt   int64    `json:"createdAt" yaml:"createdAt" toml:"createdAt"`
	CompletedAt int64    `json:"completedAt,omitempty" yaml:"completedAt,omitempty" toml:"completedAt,omitempty"`
	Group       Group    `json:"group" yaml:"group" toml:"group"`
	Priority    Priority `json:"priority,omitempty" yaml:"priority,omitempty" toml:"priority,omitempty"`
	DueDate     DueDate  `json:"dueDate,omitempty" yaml:"dueDate,omitempty" toml:"dueDate,omitempty"`
	Research    string   `json:"research,omitempty" yaml:"research,omitempty" toml:"research,omitempty"`
}

// EventType represents the type of change observed in a store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change in the underlying storage.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.ID)
}
