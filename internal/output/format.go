// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"doru/internal/task"
)

// FormatTask formats a task line.
// Format: "[{TICK}] {DESCRIPTION:<20} [{STATUS:<12}] (ID: {ID})\n"
// where TICK is "x" for Done tasks and a space otherwise.
func FormatTask(w io.Writer, t task.Task) {
	tick := " "
	if t.Status == task.Done {
		tick = "x"
	}
	fmt.Fprintf(w, "[%s] %-20s [%-12s] (ID: %d)\n", tick, normalizeDescription(t.Description), t.Status, t.ID)
}

// FormatTasks formats each task on its own line.
func FormatTasks(w io.Writer, tasks []task.Task) {
	for _, t := range tasks {
		FormatTask(w, t)
	}
}

// normalizeDescription normalizes a task description for display.
// - Empty or whitespace-only descriptions become "(untitled)"
// - Newlines are replaced with spaces
func normalizeDescription(description string) string {
	description = strings.ReplaceAll(description, "\r", " ")
	description = strings.ReplaceAll(description, "\n", " ")

	if strings.TrimSpace(description) == "" {
		return "(untitled)"
	}
	return description
}
