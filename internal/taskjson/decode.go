// Package taskjson implements the textual task file format: a minimal
// JSON-like grammar of flat objects, one level of array nesting for the
// task list, and nothing else. The codec is self-contained on purpose;
// the format predates this implementation and existing files must keep
// reading back byte-compatible.
package taskjson

import (
	"fmt"
	"strconv"

	"github.com/colonyops/tracker/internal/core/task"
)

// Version is the format version written into every document header.
const Version = "1.0"

// Document is the decoded form of a whole task file.
type Document struct {
	Version string
	NextID  int
	// HasNextID distinguishes a document without a next_id header from
	// one carrying zero; loaders leave their counter unchanged when the
	// header is absent.
	HasNextID bool
	Tasks     []task.Task
}

// DecodeDocument parses a complete task file. The entire input is
// validated before anything is returned: one bad task fails the whole
// decode.
func DecodeDocument(input string) (Document, error) {
	p, err := newParser(input)
	if err != nil {
		return Document{}, err
	}

	fields, rawTasks, err := p.object(true)
	if err != nil {
		return Document{}, err
	}
	if rawTasks == nil {
		return Document{}, fmt.Errorf("%w: missing tasks array", ErrInvalidFormat)
	}

	doc := Document{Version: fields["version"]}

	if raw, ok := fields["next_id"]; ok && raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return Document{}, fmt.Errorf("%w: bad next_id %q: %v", ErrParse, raw, err)
		}
		doc.NextID = id
		doc.HasNextID = true
	}

	doc.Tasks = make([]task.Task, 0, len(rawTasks))
	for _, fields := range rawTasks {
		t, err := taskFromFields(fields)
		if err != nil {
			return Document{}, err
		}
		doc.Tasks = append(doc.Tasks, t)
	}

	return doc, nil
}

// DecodeTask parses a single task object.
func DecodeTask(input string) (task.Task, error) {
	p, err := newParser(input)
	if err != nil {
		return task.Task{}, err
	}

	fields, _, err := p.object(false)
	if err != nil {
		return task.Task{}, err
	}

	return taskFromFields(fields)
}

// taskFromFields rebuilds a task from a decoded key/value map. Lookup is
// by key only; the order fields appeared in the file does not matter.
func taskFromFields(fields map[string]string) (task.Task, error) {
	idStr := fields["id"]
	title := fields["title"]
	if idStr == "" || title == "" {
		return task.Task{}, fmt.Errorf("%w: task is missing id or title", ErrInvalidFormat)
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return task.Task{}, fmt.Errorf("%w: bad task id %q: %v", ErrParse, idStr, err)
	}

	status, err := task.ParseStatus(fields["status"])
	if err != nil {
		return task.Task{}, fmt.Errorf("%w: unrecognized status %q", ErrInvalidFormat, fields["status"])
	}

	t := task.New(id, title, fields["description"])
	t.Status = status

	if category := fields["category"]; category != "" {
		t.Meta.Category = category
	}

	if raw := fields["priority"]; raw != "" {
		priority, err := strconv.Atoi(raw)
		if err != nil {
			return task.Task{}, fmt.Errorf("%w: bad priority %q: %v", ErrParse, raw, err)
		}
		// Assigned directly: files written before the range check existed
		// may carry out-of-range priorities and must still load.
		t.Meta.Priority = priority
	}

	// Timestamps overwrite the construction defaults only when present.
	if raw := fields["created_at"]; raw != "" {
		if t.Meta.CreatedAt, err = parseTime(raw); err != nil {
			return task.Task{}, err
		}
	}
	if raw := fields["updated_at"]; raw != "" {
		if t.Meta.UpdatedAt, err = parseTime(raw); err != nil {
			return task.Task{}, err
		}
	}
	if raw := fields["completed_at"]; raw != "" {
		if t.Meta.CompletedAt, err = parseTime(raw); err != nil {
			return task.Task{}, err
		}
	}

	return t, nil
}
