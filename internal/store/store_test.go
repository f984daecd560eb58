package store

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"doru/internal/task"
)

func mustAdd(t *testing.T, s *Store, description string) int {
	t.Helper()
	id, err := s.Add(description)
	if err != nil {
		t.Fatalf("Add(%q): unexpected error: %v", description, err)
	}
	return id
}

func TestAdd_IDsStrictlyIncreasing(t *testing.T) {
	s := New()

	prev := 0
	for _, d := range []string{"Lorem", "Ipsum", "Dolor", "Sit", "Amet"} {
		id := mustAdd(t, s, d)
		if id <= prev {
			t.Errorf("expected id > %d, got %d", prev, id)
		}
		prev = id
	}
	if s.Len() != 5 {
		t.Errorf("expected 5 tasks, got %d", s.Len())
	}
}

func TestAdd_FirstIDIsOne(t *testing.T) {
	s := New()

	if got := mustAdd(t, s, "content"); got != 1 {
		t.Errorf("expected id 1, got %d", got)
	}
	if got := mustAdd(t, s, "another"); got != 2 {
		t.Errorf("expected id 2, got %d", got)
	}
}

func TestAdd_NewTaskIsOpen(t *testing.T) {
	s := New()
	id := mustAdd(t, s, "Lorem Ipsum")

	got, err := s.Get(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := task.Task{ID: id, Description: "Lorem Ipsum", Status: task.Open}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("task mismatch (-want +got):\n%s", diff)
	}
}

func TestAdd_EmptyDescription(t *testing.T) {
	s := New()
	mustAdd(t, s, "Lorem")

	for _, d := range []string{"", "  "} {
		if _, err := s.Add(d); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Add(%q): expected ErrInvalidInput, got %v", d, err)
		}
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 task, got %d", s.Len())
	}
	if s.NextID() != 2 {
		t.Errorf("failed add consumed an id: next id %d", s.NextID())
	}
}

func TestAddEdit_InvalidUTF8(t *testing.T) {
	s := New()
	id := mustAdd(t, s, "Lorem")
	before := s.List(Filter{})

	if _, err := s.Add("caf\xe9"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Add: expected ErrInvalidInput, got %v", err)
	}
	if err := s.Edit(id, "caf\xe9"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Edit: expected ErrInvalidInput, got %v", err)
	}

	if diff := cmp.Diff(before, s.List(Filter{})); diff != "" {
		t.Errorf("store changed (-want +got):\n%s", diff)
	}
	if s.NextID() != 2 {
		t.Errorf("failed add consumed an id: next id %d", s.NextID())
	}
}

func TestDelete_NeverReusesID(t *testing.T) {
	s := New()
	mustAdd(t, s, "Lorem")
	last := mustAdd(t, s, "Ipsum")

	if err := s.Delete(last); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mustAdd(t, s, "Dolor"); got == last {
		t.Errorf("deleted id %d was reused", last)
	}
}

func TestDelete_KeepsRemainingIDs(t *testing.T) {
	s := New()
	mustAdd(t, s, "Lorem")
	mustAdd(t, s, "Ipsum")
	mustAdd(t, s, "Dolor")

	if err := s.Delete(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var ids []int
	for _, tk := range s.List(Filter{}) {
		ids = append(ids, tk.ID)
	}
	if diff := cmp.Diff([]int{1, 3}, ids); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestNotFound_LeavesStoreUnchanged(t *testing.T) {
	s := New()
	mustAdd(t, s, "Lorem")
	mustAdd(t, s, "Ipsum")
	before := s.List(Filter{})

	ops := map[string]func() error{
		"edit":   func() error { return s.Edit(42, "Other") },
		"status": func() error { return s.SetStatus(42, task.Done) },
		"delete": func() error { return s.Delete(42) },
	}
	for name, op := range ops {
		err := op()
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("%s: expected ErrNotFound, got %v", name, err)
		}
		if diff := cmp.Diff(before, s.List(Filter{})); diff != "" {
			t.Errorf("%s changed the store (-want +got):\n%s", name, diff)
		}
	}

	if _, err := s.Get(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("get: expected ErrNotFound, got %v", err)
	}
}

func TestNotFound_Message(t *testing.T) {
	err := New().Delete(7)
	if err == nil || err.Error() != "task not found: 7" {
		t.Errorf("expected %q, got %v", "task not found: 7", err)
	}
}

func TestEdit(t *testing.T) {
	s := New()
	id := mustAdd(t, s, "This is a nice TODO.")

	if err := s.Edit(id, "This is even better!"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := s.Get(id)
	if got.Description != "This is even better!" {
		t.Errorf("expected updated description, got %q", got.Description)
	}
}

func TestEdit_EmptyDescription(t *testing.T) {
	s := New()
	id := mustAdd(t, s, "Lorem")

	if err := s.Edit(id, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	got, _ := s.Get(id)
	if got.Description != "Lorem" {
		t.Errorf("description changed to %q", got.Description)
	}
}

func TestSetStatus(t *testing.T) {
	s := New()
	id := mustAdd(t, s, "Good to do.")

	for _, st := range []task.Status{task.Done, task.Open, task.InProgress} {
		if err := s.SetStatus(id, st); err != nil {
			t.Fatalf("SetStatus(%s): unexpected error: %v", st, err)
		}
		got, _ := s.Get(id)
		if got.Status != st {
			t.Errorf("expected %s, got %s", st, got.Status)
		}
	}
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	s := New()
	id := mustAdd(t, s, "Lorem")

	if err := s.SetStatus(id, task.Status(0)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	got, _ := s.Get(id)
	if got.Status != task.Open {
		t.Errorf("status changed to %s", got.Status)
	}
}

func TestList_Filter(t *testing.T) {
	s := New()
	mustAdd(t, s, "Lorem")
	mustAdd(t, s, "Ipsum")
	mustAdd(t, s, "Dolor")
	mustAdd(t, s, "Sit")
	if err := s.SetStatus(2, task.InProgress); err != nil {
		t.Fatal(err)
	}
	if err := s.SetStatus(4, task.Done); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		filter Filter
		want   []task.Task
	}{
		{
			name:   "all",
			filter: Filter{},
			want: []task.Task{
				{ID: 1, Description: "Lorem", Status: task.Open},
				{ID: 2, Description: "Ipsum", Status: task.InProgress},
				{ID: 3, Description: "Dolor", Status: task.Open},
				{ID: 4, Description: "Sit", Status: task.Done},
			},
		},
		{
			name:   "open",
			filter: Filter{Status: task.Open},
			want: []task.Task{
				{ID: 1, Description: "Lorem", Status: task.Open},
				{ID: 3, Description: "Dolor", Status: task.Open},
			},
		},
		{
			name:   "in progress",
			filter: Filter{Status: task.InProgress},
			want:   []task.Task{{ID: 2, Description: "Ipsum", Status: task.InProgress}},
		},
		{
			name:   "done",
			filter: Filter{Status: task.Done},
			want:   []task.Task{{ID: 4, Description: "Sit", Status: task.Done}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, s.List(tt.filter)); diff != "" {
				t.Errorf("List mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	s := New()
	id := mustAdd(t, s, "Lorem")

	tasks := s.List(Filter{})
	tasks[0].Description = "Mutated"
	tasks[0].Status = task.Done

	got, _ := s.Get(id)
	if got.Description != "Lorem" || got.Status != task.Open {
		t.Errorf("store changed through returned slice: %+v", got)
	}
}

func TestList_EmptyStore(t *testing.T) {
	got := New().List(Filter{Status: task.Open})
	if len(got) != 0 {
		t.Errorf("expected no tasks, got %v", got)
	}
}

func TestEndToEnd(t *testing.T) {
	s := New()

	if id := mustAdd(t, s, "Learn X"); id != 1 {
		t.Fatalf("expected id 1, got %d", id)
	}
	if id := mustAdd(t, s, "Build Y"); id != 2 {
		t.Fatalf("expected id 2, got %d", id)
	}
	if err := s.SetStatus(2, task.InProgress); err != nil {
		t.Fatal(err)
	}

	want := []task.Task{
		{ID: 1, Description: "Learn X", Status: task.Open},
		{ID: 2, Description: "Build Y", Status: task.InProgress},
	}
	if diff := cmp.Diff(want, s.List(Filter{})); diff != "" {
		t.Fatalf("List mismatch (-want +got):\n%s", diff)
	}

	if err := s.Delete(1); err != nil {
		t.Fatal(err)
	}
	want = []task.Task{{ID: 2, Description: "Build Y", Status: task.InProgress}}
	if diff := cmp.Diff(want, s.List(Filter{})); diff != "" {
		t.Fatalf("List mismatch (-want +got):\n%s", diff)
	}

	if id := mustAdd(t, s, "Ship Z"); id != 3 {
		t.Errorf("expected id 3, got %d", id)
	}
}
