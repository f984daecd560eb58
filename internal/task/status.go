package task

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a task.
// The zero value is not a valid status.
type Status uint8

const (
	Open Status = iota + 1
	InProgress
	Done
)

// statusNames holds the canonical text form of every status, in lifecycle order.
var statusNames = []struct {
	status Status
	name   string
}{
	{Open, "Open"},
	{InProgress, "InProgress"},
	{Done, "Done"},
}

// Statuses returns all statuses in lifecycle order.
func Statuses() []Status {
	out := make([]Status, len(statusNames))
	for i, s := range statusNames {
		out[i] = s.status
	}
	return out
}

// Valid reports whether s is a member of the status set.
func (s Status) Valid() bool {
	for _, n := range statusNames {
		if n.status == s {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	for _, n := range statusNames {
		if n.status == s {
			return n.name
		}
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// ParseStatus parses a status name.
// Matching ignores case, '-' and '_', so "in-progress", "in_progress" and
// "InProgress" are the same status.
func ParseStatus(s string) (Status, error) {
	key := normalizeStatus(s)
	for _, n := range statusNames {
		if normalizeStatus(n.name) == key {
			return n.status, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown status: %s", ErrInvalidInput, s)
}

func normalizeStatus(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return strings.ToLower(s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid status: %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Only the canonical names are accepted.
func (s *Status) UnmarshalText(text []byte) error {
	for _, n := range statusNames {
		if n.name == string(text) {
			*s = n.status
			return nil
		}
	}
	return fmt.Errorf("unknown status: %q", text)
}
