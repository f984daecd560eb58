// Package store owns the task collection, assigns task IDs, and persists
// the collection to a single file.
package store

import (
	"fmt"
	"slices"

	"doru/internal/task"
)

// Store is an ordered collection of tasks.
// A Store is not safe for concurrent use.
type Store struct {
	tasks  []task.Task
	lastID int // highest ID ever assigned; never decreases
}

// Filter selects tasks for List.
// The zero Filter matches every task.
type Filter struct {
	Status task.Status
}

func (f Filter) match(t task.Task) bool {
	return f.Status == 0 || t.Status == f.Status
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// NextID returns the ID the next Add will assign.
func (s *Store) NextID() int {
	return s.lastID + 1
}

// Add appends a new Open task and returns its ID.
func (s *Store) Add(description string) (int, error) {
	t := task.New(description)
	if err := task.ValidateDescription(t.Description); err != nil {
		return 0, err
	}
	s.lastID++
	t.ID = s.lastID
	s.tasks = append(s.tasks, t)
	return t.ID, nil
}

// Get returns a copy of the task with the given ID.
func (s *Store) Get(id int) (task.Task, error) {
	i, err := s.index(id)
	if err != nil {
		return task.Task{}, err
	}
	return s.tasks[i], nil
}

// Edit replaces the description of the task with the given ID.
func (s *Store) Edit(id int, description string) error {
	i, err := s.index(id)
	if err != nil {
		return err
	}
	return s.tasks[i].SetDescription(description)
}

// SetStatus replaces the status of the task with the given ID.
func (s *Store) SetStatus(id int, status task.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: invalid status: %s", ErrInvalidInput, status)
	}
	i, err := s.index(id)
	if err != nil {
		return err
	}
	s.tasks[i].SetStatus(status)
	return nil
}

// Delete removes the task with the given ID.
// Remaining tasks keep their IDs and the deleted ID is never reassigned.
func (s *Store) Delete(id int) error {
	i, err := s.index(id)
	if err != nil {
		return err
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return nil
}

// List returns the tasks matching f in store order.
// The returned slice is a copy.
func (s *Store) List(f Filter) []task.Task {
	out := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if f.match(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) index(id int) (int, error) {
	i := slices.IndexFunc(s.tasks, func(t task.Task) bool { return t.ID == id })
	if i < 0 {
		return -1, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return i, nil
}
