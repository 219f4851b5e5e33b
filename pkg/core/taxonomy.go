package core

import "strings"

// GroupInfo is the static display data of a group.
type GroupInfo struct {
	Group Group  `json:"group"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var taxonomy = []GroupInfo{
	{Group: GroupInbox, Label: "Inbox", Icon: "📥", Color: "#737373"},
	{Group: GroupWork, Label: "Work", Icon: "💼", Color: "#f59e0b"},
	{Group: GroupPersonal, Label: "Personal", Icon: "🏠", Color: "#8b5cf6"},
	{Group: GroupDev, Label: "Dev", Icon: "💻", Color: "#06b6d4"},
	{Group: GroupHealth, Label: "Health", Icon: "🏃", Color: "#22c55e"},
	{Group: GroupFinance, Label: "Finance", Icon: "💰", Color: "#ec4899"},
	{Group: GroupLater, Label: "Later", Icon: "📅", Color: "#6b7280"},
}

// displayOrder is the order groups are rendered in. It intentionally differs
// from the declaration order: dev sits next to work.
var displayOrder = []Group{
	GroupInbox,
	GroupWork,
	GroupDev,
	GroupPersonal,
	GroupHealth,
	GroupFinance,
	GroupLater,
}

// Taxonomy returns the closed set of groups in declaration order.
func Taxonomy() []GroupInfo {
	out := make([]GroupInfo, len(taxonomy))
	copy(out, taxonomy)
	return out
}

// DisplayOrder returns the groups in the order they are listed to the user.
func DisplayOrder() []Group {
	out := make([]Group, len(displayOrder))
	copy(out, displayOrder)
	return out
}

// Info returns the display data of g. Unknown groups resolve to the inbox.
func (g Group) Info() GroupInfo {
	for _, info := range taxonomy {
		if info.Group == g {
			return info
		}
	}
	return taxonomy[0]
}

// Valid reports whether g is one of the closed set.
func (g Group) Valid() bool {
	for _, info := range taxonomy {
		if info.Group == g {
			return true
		}
	}
	return false
}

// ParseGroup resolves a group by name or label, case-insensitively.
func ParseGroup(s string) (Group, bool) {
	s = strings.TrimSpace(s)
	for _, info := range taxonomy {
		if strings.EqualFold(string(info.Group), s) || strings.EqualFold(info.Label, s) {
			return info.Group, true
		}
	}
	return "", false
}

// Valid reports whether d is empty or one of the known labels.
func (d DueDate) Valid() bool {
	switch d {
	case "", DueToday, DueTomorrow, DueThisWeek, DueNextWeek:
		return true
	}
	return false
}

// Valid reports whether p is empty or one of the known levels.
func (p Priority) Valid() bool {
	switch p {
	case "", PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
