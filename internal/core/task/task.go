// Package task defines the task domain model and its lifecycle rules.
package task

import (
	"fmt"
	"strings"
	"time"
)

// Priority bounds accepted by SetPriority.
const (
	MinPriority = 0
	MaxPriority = 10
)

// DefaultCategory is assigned to every task at construction.
const DefaultCategory = "General"

// Metadata carries the lifecycle timestamps and classification of a task.
//
// CreatedAt is set once at construction and never changes. UpdatedAt is
// stamped by every successful mutation. CompletedAt is set when the task
// first transitions to StatusCompleted and is deliberately never cleared,
// even if the status later moves away from Completed.
type Metadata struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt time.Time // zero value means the task never completed
	Category    string
	Priority    int
}

// Task is a single tracked work item.
//
// Fields are exported for read access; all mutation goes through the
// Set* methods so that UpdatedAt stays accurate. The store hands out
// copies, so holding a Task never aliases store internals.
type Task struct {
	ID          int
	Title       string
	Description string
	Status      Status
	Meta        Metadata
}

// New creates a task in StatusPending with the default category and
// priority zero. Both timestamps are set to the current time.
func New(id int, title, description string) Task {
	now := time.Now()
	return Task{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      StatusPending,
		Meta: Metadata{
			CreatedAt: now,
			UpdatedAt: now,
			Category:  DefaultCategory,
		},
	}
}

// SetTitle replaces the title. Returns ErrEmptyTitle for an empty string.
// Duplicate detection is a store concern, not checked here.
func (t *Task) SetTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	t.Title = title
	t.touch()
	return nil
}

// SetDescription replaces the description. Empty is allowed.
func (t *Task) SetDescription(description string) error {
	t.Description = description
	t.touch()
	return nil
}

// SetStatus moves the task to the given status. Transitioning to
// StatusCompleted stamps CompletedAt; other transitions leave it alone.
func (t *Task) SetStatus(status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	t.Status = status
	t.touch()
	if status == StatusCompleted {
		t.Meta.CompletedAt = time.Now()
	}
	return nil
}

// SetPriority sets the priority. Returns ErrInvalidPriority outside
// [MinPriority, MaxPriority].
func (t *Task) SetPriority(priority int) error {
	if priority < MinPriority || priority > MaxPriority {
		return ErrInvalidPriority
	}
	t.Meta.Priority = priority
	t.touch()
	return nil
}

// SetCategory replaces the category. Empty is allowed; the matrix index
// maps empty categories to its own default bucket.
func (t *Task) SetCategory(category string) error {
	t.Meta.Category = category
	t.touch()
	return nil
}

// MarkCompleted is shorthand for SetStatus(StatusCompleted).
func (t *Task) MarkCompleted() {
	_ = t.SetStatus(StatusCompleted)
}

// IsCompleted reports whether the task is in StatusCompleted.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// Age returns the time elapsed since the task was created.
func (t Task) Age() time.Duration {
	return time.Since(t.Meta.CreatedAt)
}

// Completed reports whether the task has ever reached StatusCompleted.
func (t Task) Completed() bool {
	return !t.Meta.CompletedAt.IsZero()
}

func (t *Task) touch() {
	t.Meta.UpdatedAt = time.Now()
}

// String renders a multi-line human-readable summary of the task.
func (t Task) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task [ID: %d]\n", t.ID)
	fmt.Fprintf(&b, "  Title: %s\n", t.Title)
	desc := t.Description
	if desc == "" {
		desc = "None"
	}
	fmt.Fprintf(&b, "  Description: %s\n", desc)
	fmt.Fprintf(&b, "  Status: %s\n", t.Status)
	fmt.Fprintf(&b, "  Category: %s\n", t.Meta.Category)
	fmt.Fprintf(&b, "  Priority: %d\n", t.Meta.Priority)
	fmt.Fprintf(&b, "  Created: %s\n", t.Meta.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "  Updated: %s\n", t.Meta.UpdatedAt.Format("2006-01-02 15:04:05"))
	if t.Completed() {
		fmt.Fprintf(&b, "  Completed: %s\n", t.Meta.CompletedAt.Format("2006-01-02 15:04:05"))
	}
	return b.String()
}
