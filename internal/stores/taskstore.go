// Package stores holds the authoritative in-memory task collection and
// the derived category/priority matrix built from its snapshots.
package stores

import (
	"fmt"
	"iter"
	"slices"

	"github.com/colonyops/tracker/internal/core/task"
	"github.com/colonyops/tracker/internal/taskjson"
)

// TaskStore owns the ordered task collection. Tasks stay in insertion
// order; IDs are assigned from a counter that only ever goes up, so an
// ID is never reused even after its task is removed.
//
// The store is not safe for concurrent use. Callers never receive a
// reference into the backing slice; reads return copies and writes go
// through Update, so structural mutations cannot invalidate anything a
// caller holds.
type TaskStore struct {
	tasks  []task.Task
	nextID int
}

// NewTaskStore creates an empty store with the ID counter at 1.
func NewTaskStore() *TaskStore {
	return &TaskStore{nextID: 1}
}

// Add creates a new pending task and returns its ID. Titles must be
// non-empty and unique across the store (exact, case-sensitive match).
func (s *TaskStore) Add(title, description string) (int, error) {
	if title == "" {
		return 0, task.ErrEmptyTitle
	}
	for _, t := range s.tasks {
		if t.Title == title {
			return 0, task.ErrDuplicate
		}
	}

	id := s.nextID
	s.nextID++
	s.tasks = append(s.tasks, task.New(id, title, description))
	return id, nil
}

// Remove deletes the task with the given ID, preserving the order of
// the remaining tasks. The ID counter is not decremented.
func (s *TaskStore) Remove(id int) error {
	i, err := s.index(id)
	if err != nil {
		return err
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return nil
}

// Get returns a copy of the task with the given ID.
func (s *TaskStore) Get(id int) (task.Task, error) {
	i, err := s.index(id)
	if err != nil {
		return task.Task{}, err
	}
	return s.tasks[i], nil
}

// Update applies fn to the task with the given ID under the store's
// control. fn receives the authoritative task; if it returns an error
// the store keeps whatever fn already did, mirroring the partial-update
// semantics of the individual setters.
func (s *TaskStore) Update(id int, fn func(*task.Task) error) error {
	i, err := s.index(id)
	if err != nil {
		return err
	}
	return fn(&s.tasks[i])
}

// UpdateStatus sets the status of the task with the given ID.
func (s *TaskStore) UpdateStatus(id int, status task.Status) error {
	return s.Update(id, func(t *task.Task) error {
		return t.SetStatus(status)
	})
}

// UpdatePriority sets the priority of the task with the given ID.
func (s *TaskStore) UpdatePriority(id, priority int) error {
	return s.Update(id, func(t *task.Task) error {
		return t.SetPriority(priority)
	})
}

// UpdateCategory sets the category of the task with the given ID.
func (s *TaskStore) UpdateCategory(id int, category string) error {
	return s.Update(id, func(t *task.Task) error {
		return t.SetCategory(category)
	})
}

// Filter returns a lazy, restartable sequence of copies of the tasks
// matching pred, in store order. The sequence reads the live collection,
// so it should be consumed before the store is mutated again.
func (s *TaskStore) Filter(pred func(task.Task) bool) iter.Seq[task.Task] {
	return func(yield func(task.Task) bool) {
		for _, t := range s.tasks {
			if pred(t) && !yield(t) {
				return
			}
		}
	}
}

// ByStatus returns the tasks in the given status.
func (s *TaskStore) ByStatus(status task.Status) iter.Seq[task.Task] {
	return s.Filter(func(t task.Task) bool {
		return t.Status == status
	})
}

// ByPriorityRange returns the tasks with priority in [min, max].
func (s *TaskStore) ByPriorityRange(min, max int) iter.Seq[task.Task] {
	return s.Filter(func(t task.Task) bool {
		return t.Meta.Priority >= min && t.Meta.Priority <= max
	})
}

// Sorted returns a freshly allocated copy of all tasks ordered by cmp.
// The store's own insertion order is untouched.
func (s *TaskStore) Sorted(cmp func(a, b task.Task) int) []task.Task {
	sorted := slices.Clone(s.tasks)
	slices.SortStableFunc(sorted, cmp)
	return sorted
}

// Snapshot returns a copy of all tasks in insertion order.
func (s *TaskStore) Snapshot() []task.Task {
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks in the store.
func (s *TaskStore) Len() int {
	return len(s.tasks)
}

// CompletedCount returns the number of tasks in StatusCompleted.
func (s *TaskStore) CompletedCount() int {
	n := 0
	for _, t := range s.tasks {
		if t.IsCompleted() {
			n++
		}
	}
	return n
}

// PendingCount returns the number of tasks in StatusPending.
func (s *TaskStore) PendingCount() int {
	n := 0
	for _, t := range s.tasks {
		if t.Status == task.StatusPending {
			n++
		}
	}
	return n
}

// CompletionRate returns completed/total as a percentage, or 0 for an
// empty store.
func (s *TaskStore) CompletionRate() float64 {
	if len(s.tasks) == 0 {
		return 0.0
	}
	return float64(s.CompletedCount()) / float64(len(s.tasks)) * 100.0
}

// NextID reports the ID the next added task will receive.
func (s *TaskStore) NextID() int {
	return s.nextID
}

// SaveFile writes the whole store to path in the task file format.
func (s *TaskStore) SaveFile(path string) error {
	doc := taskjson.Document{
		Version: taskjson.Version,
		NextID:  s.nextID,
		Tasks:   s.Snapshot(),
	}
	if err := taskjson.Save(path, doc); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

// LoadFile replaces the store contents with the document at path. The
// document is decoded and validated in full before the store is touched;
// on any error the store is left exactly as it was. The ID counter is
// restored from the next_id header when present, otherwise kept.
func (s *TaskStore) LoadFile(path string) error {
	doc, err := taskjson.Load(path)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	s.tasks = doc.Tasks
	if doc.HasNextID {
		s.nextID = doc.NextID
	}
	return nil
}

func (s *TaskStore) index(id int) (int, error) {
	if id < 1 {
		return 0, task.ErrInvalidID
	}
	for i, t := range s.tasks {
		if t.ID == id {
			return i, nil
		}
	}
	return 0, task.ErrNotFound
}
