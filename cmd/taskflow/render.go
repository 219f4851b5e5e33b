package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/taskflow/pkg/core"
)

const shortIDLen = 8

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

// taskLine renders one task: checkbox, short ID, title, due label, research marker.
func taskLine(t core.Task) string {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %s %s  %s", box, shortID(t.ID), t.Title)
	if t.DueDate != "" {
		fmt.Fprintf(&b, "  (%s)", t.DueDate)
	}
	if t.Research != "" {
		b.WriteString("  *")
	}
	return b.String()
}

// printGrouped writes the grouped listing. Completed tasks are summarised
// unless all is set.
func printGrouped(w io.Writer, sections []core.GroupedTasks, all bool) {
	if len(sections) == 0 {
		fmt.Fprintln(w, `No tasks yet. Try: taskflow add "call mom tomorrow"`)
		return
	}

	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %s (%d)\n", s.Info.Icon, s.Info.Label, len(s.Active))
		for _, t := range s.Active {
			fmt.Fprintln(w, taskLine(t))
		}
		if all {
			for _, t := range s.Completed {
				fmt.Fprintln(w, taskLine(t))
			}
		} else if n := len(s.Completed); n > 0 {
			fmt.Fprintf(w, "  + %d completed\n", n)
		}
	}
}

func printStats(w io.Writer, st core.Stats) {
	fmt.Fprintf(w, "%d active, %d completed\n", st.Active, st.Completed)
}

// filterSections keeps only the given group (if any) and the tasks whose
// lower-cased title matches the glob (if any).
func filterSections(sections []core.GroupedTasks, group core.Group, match string) ([]core.GroupedTasks, error) {
	if match != "" && !doublestar.ValidatePattern(match) {
		return nil, fmt.Errorf("invalid match pattern: %q", match)
	}

	keep := func(t core.Task) bool {
		if match == "" {
			return true
		}
		ok, _ := doublestar.Match(strings.ToLower(match), strings.ToLower(t.Title))
		return ok
	}

	var out []core.GroupedTasks
	for _, s := range sections {
		if group != "" && s.Info.Group != group {
			continue
		}
		filtered := core.GroupedTasks{Info: s.Info}
		for _, t := range s.Active {
			if keep(t) {
				filtered.Active = append(filtered.Active, t)
			}
		}
		for _, t := range s.Completed {
			if keep(t) {
				filtered.Completed = append(filtered.Completed, t)
			}
		}
		if len(filtered.Active)+len(filtered.Completed) > 0 {
			out = append(out, filtered)
		}
	}
	return out, nil
}

// flatten returns the tasks of sections in listing order.
func flatten(sections []core.GroupedTasks, all bool) []core.Task {
	tasks := []core.Task{}
	for _, s := range sections {
		tasks = append(tasks, s.Active...)
		if all {
			tasks = append(tasks, s.Completed...)
		}
	}
	return tasks
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
