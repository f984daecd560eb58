// Package testutil provides testing utilities.
package testutil

import (
	"path/filepath"
	"testing"

	"doru/internal/store"
	"doru/internal/task"
)

// StorePath returns a store file path inside a fresh temp directory.
// The file does not exist yet.
func StorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "todos.json")
}

// SeedStore saves a store at path holding one Open task per description,
// with IDs assigned from 1.
func SeedStore(t *testing.T, path string, descriptions ...string) *store.Store {
	t.Helper()
	st := store.New()
	for _, d := range descriptions {
		if _, err := st.Add(d); err != nil {
			t.Fatalf("failed to seed task %q: %v", d, err)
		}
	}
	if err := st.Save(path); err != nil {
		t.Fatalf("failed to save seeded store: %v", err)
	}
	return st
}

// SetStatus updates a seeded task's status and saves the store.
func SetStatus(t *testing.T, path string, st *store.Store, id int, status task.Status) {
	t.Helper()
	if err := st.SetStatus(id, status); err != nil {
		t.Fatalf("failed to set status of task %d: %v", id, err)
	}
	if err := st.Save(path); err != nil {
		t.Fatalf("failed to save seeded store: %v", err)
	}
}

// LoadStore loads the store at path, failing the test on error.
func LoadStore(t *testing.T, path string) *store.Store {
	t.Helper()
	st, err := store.Load(path)
	if err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	return st
}
