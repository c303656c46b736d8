package taskjson

import (
	"fmt"
	"strings"

	"github.com/colonyops/tracker/internal/core/task"
)

// EncodeTask renders one task as a flat object. Field order is fixed:
// id, title, description, status, category, priority, created_at,
// updated_at, and completed_at only for tasks that have ever completed.
func EncodeTask(t task.Task) string {
	var b strings.Builder
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  %q: %d,\n", "id", t.ID)
	fmt.Fprintf(&b, "  %q: \"%s\",\n", "title", escapeString(t.Title))
	fmt.Fprintf(&b, "  %q: \"%s\",\n", "description", escapeString(t.Description))
	fmt.Fprintf(&b, "  %q: \"%s\",\n", "status", t.Status)
	fmt.Fprintf(&b, "  %q: \"%s\",\n", "category", escapeString(t.Meta.Category))
	fmt.Fprintf(&b, "  %q: %d,\n", "priority", t.Meta.Priority)
	fmt.Fprintf(&b, "  %q: \"%s\",\n", "created_at", formatTime(t.Meta.CreatedAt))
	fmt.Fprintf(&b, "  %q: \"%s\"", "updated_at", formatTime(t.Meta.UpdatedAt))
	if t.Completed() {
		fmt.Fprintf(&b, ",\n  %q: \"%s\"", "completed_at", formatTime(t.Meta.CompletedAt))
	}
	b.WriteString("\n}")
	return b.String()
}

// EncodeDocument renders a whole task file: version and next_id headers
// followed by the tasks array, each task indented one array level.
func EncodeDocument(doc Document) string {
	var b strings.Builder
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  %q: %q,\n", "version", doc.Version)
	fmt.Fprintf(&b, "  %q: %d,\n", "next_id", doc.NextID)
	fmt.Fprintf(&b, "  %q: [\n", "tasks")

	for i, t := range doc.Tasks {
		for j, line := range strings.Split(EncodeTask(t), "\n") {
			if j > 0 {
				b.WriteString("\n")
			}
			b.WriteString("    ")
			b.WriteString(line)
		}
		if i < len(doc.Tasks)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}

	b.WriteString("  ]\n}")
	return b.String()
}

// escapeString escapes for the quoted-string form. Control characters
// below 0x20 become \u00XX on this path even though the scanner never
// interprets them back; see the package tests for the round-trip caveat.
func escapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	return b.String()
}
