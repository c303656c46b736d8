package task

// Status represents the lifecycle state of a task.
//
// The string values are the display strings and double as the on-file
// representation, including the space in "In Progress".
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// String returns the display string for the status.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a string into a Status. Besides the canonical
// display strings it accepts the short lowercase aliases that older
// task files and CLI input used. Returns ErrInvalidStatus for anything
// else, including the empty string.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "pending", "Pending":
		return StatusPending, nil
	case "progress", "in-progress", "In Progress":
		return StatusInProgress, nil
	case "completed", "Completed":
		return StatusCompleted, nil
	case "cancelled", "Cancelled":
		return StatusCancelled, nil
	}
	return "", ErrInvalidStatus
}
