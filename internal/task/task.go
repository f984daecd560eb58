// Package task defines the task entity and its status lifecycle.
package task

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidInput is returned when a task field is given an unusable value.
var ErrInvalidInput = errors.New("invalid input")

// Task represents a single to-do item.
type Task struct {
	ID          int    `json:"id" yaml:"id" toml:"id"`
	Description string `json:"description" yaml:"description" toml:"description"`
	Status      Status `json:"status" yaml:"status" toml:"status"`
}

// New creates an Open task with no ID assigned.
// IDs are assigned by the store when the task is inserted.
func New(description string) Task {
	return Task{
		Description: description,
		Status:      Open,
	}
}

// SetDescription replaces the description.
// Empty, whitespace-only, or non-UTF-8 text is rejected.
func (t *Task) SetDescription(text string) error {
	if err := ValidateDescription(text); err != nil {
		return err
	}
	t.Description = text
	return nil
}

// SetStatus replaces the status. Any transition is allowed.
func (t *Task) SetStatus(status Status) {
	t.Status = status
}

// Equal reports whether all fields of t and other match.
func (t Task) Equal(other Task) bool {
	return t == other
}

// ValidateDescription checks that text is usable as a task description.
// Text must be valid UTF-8 so every store format can hold it.
func ValidateDescription(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: description required", ErrInvalidInput)
	}
	if !utf8.ValidString(text) {
		return fmt.Errorf("%w: description is not valid UTF-8", ErrInvalidInput)
	}
	return nil
}
