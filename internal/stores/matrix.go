package stores

import (
	"slices"

	"github.com/colonyops/tracker/internal/core/task"
)

// MatrixDefaultCategory is the bucket used for tasks whose category is
// empty. It is intentionally not the same literal as the construction
// default in the task package; the two defaults are independent and
// both observable.
const MatrixDefaultCategory = "Default"

// Matrix is a two-level category -> priority -> tasks index built from a
// snapshot of the store. It holds copies: once built it does not observe
// later store mutations. Callers rebuild it with RebuildFrom whenever
// they need a fresh view; there is no incremental maintenance.
type Matrix struct {
	buckets map[string]map[int][]task.Task
}

// NewMatrix creates an empty matrix.
func NewMatrix() *Matrix {
	return &Matrix{buckets: make(map[string]map[int][]task.Task)}
}

// RebuildFrom clears the matrix and repopulates it from the snapshot,
// preserving the snapshot's order inside each bucket.
func (m *Matrix) RebuildFrom(snapshot []task.Task) {
	m.Clear()
	for _, t := range snapshot {
		m.Add(t)
	}
}

// Add places a copy of the task in its (category, priority) bucket,
// using MatrixDefaultCategory when the task's category is empty.
func (m *Matrix) Add(t task.Task) {
	category := t.Meta.Category
	if category == "" {
		category = MatrixDefaultCategory
	}

	byPriority, ok := m.buckets[category]
	if !ok {
		byPriority = make(map[int][]task.Task)
		m.buckets[category] = byPriority
	}
	byPriority[t.Meta.Priority] = append(byPriority[t.Meta.Priority], t)
}

// Lookup returns a copy of the bucket at (category, priority), or nil if
// either level is absent. It never creates entries.
func (m *Matrix) Lookup(category string, priority int) []task.Task {
	byPriority, ok := m.buckets[category]
	if !ok {
		return nil
	}
	bucket, ok := byPriority[priority]
	if !ok {
		return nil
	}
	return slices.Clone(bucket)
}

// Remove deletes the first task with the given ID found across all
// buckets and reports whether one was found.
func (m *Matrix) Remove(id int) bool {
	for _, byPriority := range m.buckets {
		for priority, bucket := range byPriority {
			for i, t := range bucket {
				if t.ID == id {
					byPriority[priority] = slices.Delete(bucket, i, i+1)
					return true
				}
			}
		}
	}
	return false
}

// Categories returns all category keys in sorted order.
func (m *Matrix) Categories() []string {
	categories := make([]string, 0, len(m.buckets))
	for category := range m.buckets {
		categories = append(categories, category)
	}
	slices.Sort(categories)
	return categories
}

// Priorities returns the priority keys under a category in ascending
// order, or nil if the category is absent.
func (m *Matrix) Priorities(category string) []int {
	byPriority, ok := m.buckets[category]
	if !ok {
		return nil
	}
	priorities := make([]int, 0, len(byPriority))
	for priority := range byPriority {
		priorities = append(priorities, priority)
	}
	slices.Sort(priorities)
	return priorities
}

// HasCategory reports whether the category has a bucket.
func (m *Matrix) HasCategory(category string) bool {
	_, ok := m.buckets[category]
	return ok
}

// Count returns the number of tasks at (category, priority).
func (m *Matrix) Count(category string, priority int) int {
	byPriority, ok := m.buckets[category]
	if !ok {
		return 0
	}
	return len(byPriority[priority])
}

// TotalCount returns the number of tasks across all buckets.
func (m *Matrix) TotalCount() int {
	total := 0
	for _, byPriority := range m.buckets {
		for _, bucket := range byPriority {
			total += len(bucket)
		}
	}
	return total
}

// Clear drops every bucket.
func (m *Matrix) Clear() {
	m.buckets = make(map[string]map[int][]task.Task)
}
