package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tracker/internal/core/task"
	"github.com/colonyops/tracker/internal/stores"
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true)
	styleMuted    = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	styleSuccess  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	styleWarning  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))
	styleError    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e"))
	styleCategory = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7"))
)

func statusStyle(s task.Status) lipgloss.Style {
	switch s {
	case task.StatusCompleted:
		return styleSuccess
	case task.StatusInProgress:
		return styleWarning
	case task.StatusCancelled:
		return styleError
	default:
		return styleMuted
	}
}

// renderTaskLine renders one task as a single list row.
func renderTaskLine(t task.Task) string {
	return fmt.Sprintf("%s %s - %s %s",
		styleMuted.Render(fmt.Sprintf("[%d]", t.ID)),
		styleTitle.Render(t.Title),
		statusStyle(t.Status).Render(t.Status.String()),
		styleMuted.Render(fmt.Sprintf("(Priority: %d, Category: %s)", t.Meta.Priority, t.Meta.Category)),
	)
}

// renderTaskList renders a list header and one row per task.
func renderTaskList(tasks []task.Task) string {
	if len(tasks) == 0 {
		return styleMuted.Render("No tasks available.")
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("Task List (%d tasks)", len(tasks))))
	b.WriteString("\n")
	for _, t := range tasks {
		b.WriteString(renderTaskLine(t))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderMatrix renders the category/priority hierarchy of the matrix.
func renderMatrix(m *stores.Matrix) string {
	categories := m.Categories()
	if len(categories) == 0 {
		return styleMuted.Render("Matrix is empty.")
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("Task Matrix (%d tasks)", m.TotalCount())))
	b.WriteString("\n")
	for _, category := range categories {
		b.WriteString(styleCategory.Render("Category: " + category))
		b.WriteString("\n")
		for _, priority := range m.Priorities(category) {
			bucket := m.Lookup(category, priority)
			b.WriteString(fmt.Sprintf("  Priority %d: %s\n", priority, styleMuted.Render(fmt.Sprintf("%d task(s)", len(bucket)))))
			for _, t := range bucket {
				b.WriteString(fmt.Sprintf("    %s %s\n", styleMuted.Render(fmt.Sprintf("[%d]", t.ID)), t.Title))
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderStats renders the store statistics summary.
func renderStats(s statsView) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Task Statistics"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Total:      %d\n", s.Total)
	fmt.Fprintf(&b, "  Completed:  %s\n", styleSuccess.Render(fmt.Sprintf("%d", s.Completed)))
	fmt.Fprintf(&b, "  Pending:    %s\n", styleWarning.Render(fmt.Sprintf("%d", s.Pending)))
	fmt.Fprintf(&b, "  Completion: %.1f%%", s.CompletionRate)
	return b.String()
}
