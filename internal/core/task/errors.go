package task

import "errors"

var (
	// ErrInvalidID is returned for a non-positive task ID.
	ErrInvalidID = errors.New("invalid task ID")
	// ErrNotFound is returned when a task does not exist in the store.
	ErrNotFound = errors.New("task not found")
	// ErrInvalidStatus is returned for an unrecognized status value.
	ErrInvalidStatus = errors.New("invalid task status")
	// ErrEmptyTitle is returned when a title is empty.
	ErrEmptyTitle = errors.New("task title cannot be empty")
	// ErrDuplicate is returned when a task with the same title already exists.
	ErrDuplicate = errors.New("task with this title already exists")
	// ErrInvalidPriority is returned for a priority outside [MinPriority, MaxPriority].
	ErrInvalidPriority = errors.New("priority value is outside the valid range")
)
