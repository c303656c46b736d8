package commands

import (
	"time"

	"github.com/colonyops/tracker/internal/core/task"
)

// taskView is the JSON output shape for a single task. It flattens the
// metadata and formats timestamps as RFC 3339 for machine consumers;
// the task file format is separate and owned by taskjson.
type taskView struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Category    string `json:"category"`
	Priority    int    `json:"priority"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}

func toView(t task.Task) taskView {
	v := taskView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status.String(),
		Category:    t.Meta.Category,
		Priority:    t.Meta.Priority,
		CreatedAt:   t.Meta.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.Meta.UpdatedAt.Format(time.RFC3339),
	}
	if t.Completed() {
		v.CompletedAt = t.Meta.CompletedAt.Format(time.RFC3339)
	}
	return v
}
