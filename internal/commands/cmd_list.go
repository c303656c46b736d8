package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tracker/internal/core/task"
	"github.com/colonyops/tracker/pkg/iojson"
)

// ListCmd implements the tracker list, find, and recent commands.
type ListCmd struct {
	flags *Flags
	app   *App

	status   string
	category string
	sortKey  string
	minPrio  int
	maxPrio  int
	jsonOut  bool

	recentCount int
}

// NewListCmd creates a new list command.
func NewListCmd(flags *Flags, app *App) *ListCmd {
	return &ListCmd{flags: flags, app: app}
}

// Register adds the list, find, and recent commands to the application.
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:      "list",
			Aliases:   []string{"ls"},
			Usage:     "List tasks",
			UsageText: "tracker list [--status <status>] [--category <glob>] [--sort priority|created|title]",
			Description: `Lists tasks, optionally filtered and sorted.

The category filter accepts glob patterns, so "work/*" matches every
sub-category of work.

Examples:
  tracker list
  tracker list --status pending --sort priority
  tracker list --category "work/*" --json`,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:        "status",
					Aliases:     []string{"s"},
					Usage:       "filter by status (pending, progress, completed, cancelled)",
					Destination: &cmd.status,
				},
				&cli.StringFlag{
					Name:        "category",
					Aliases:     []string{"C"},
					Usage:       "filter by category (glob pattern)",
					Destination: &cmd.category,
				},
				&cli.StringFlag{
					Name:        "sort",
					Usage:       "sort order: priority, created, or title",
					Destination: &cmd.sortKey,
				},
				&cli.IntFlag{
					Name:        "min-priority",
					Usage:       "minimum priority (inclusive)",
					Value:       task.MinPriority,
					Destination: &cmd.minPrio,
				},
				&cli.IntFlag{
					Name:        "max-priority",
					Usage:       "maximum priority (inclusive)",
					Value:       task.MaxPriority,
					Destination: &cmd.maxPrio,
				},
				&cli.BoolFlag{
					Name:        "json",
					Usage:       "output JSON lines instead of the rendered list",
					Destination: &cmd.jsonOut,
				},
			},
			Action: cmd.runList,
		},
		&cli.Command{
			Name:      "find",
			Usage:     "Find tasks by title substring",
			UsageText: "tracker find <substring>",
			Action:    cmd.runFind,
		},
		&cli.Command{
			Name:      "recent",
			Usage:     "Show the most recently created tasks",
			UsageText: "tracker recent [-n <count>]",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:        "count",
					Aliases:     []string{"n"},
					Usage:       "number of tasks to show",
					Destination: &cmd.recentCount,
				},
			},
			Action: cmd.runRecent,
		},
	)

	return app
}

func (cmd *ListCmd) runList(ctx context.Context, c *cli.Command) error {
	store := cmd.app.Store

	var status task.Status
	if cmd.status != "" {
		parsed, err := task.ParseStatus(cmd.status)
		if err != nil {
			return fmt.Errorf("%w: %q", err, cmd.status)
		}
		status = parsed
	}

	tasks := store.Sorted(sortComparator(cmd.sortKey))
	filtered := tasks[:0:0]
	for _, t := range tasks {
		if status != "" && t.Status != status {
			continue
		}
		if t.Meta.Priority < cmd.minPrio || t.Meta.Priority > cmd.maxPrio {
			continue
		}
		if cmd.category != "" {
			ok, err := doublestar.Match(cmd.category, t.Meta.Category)
			if err != nil {
				return fmt.Errorf("bad category pattern %q: %w", cmd.category, err)
			}
			if !ok {
				continue
			}
		}
		filtered = append(filtered, t)
	}

	return cmd.write(c, filtered)
}

func (cmd *ListCmd) runFind(ctx context.Context, c *cli.Command) error {
	needle := c.Args().First()
	if needle == "" {
		return fmt.Errorf("usage: tracker find <substring>")
	}

	var matches []task.Task
	for t := range cmd.app.Store.Filter(func(t task.Task) bool {
		return strings.Contains(t.Title, needle)
	}) {
		matches = append(matches, t)
	}

	return cmd.write(c, matches)
}

func (cmd *ListCmd) runRecent(ctx context.Context, c *cli.Command) error {
	n := cmd.recentCount
	if n <= 0 {
		n = cmd.flags.Config.Recent
	}

	tasks := cmd.app.Store.Sorted(task.ByCreatedDesc)
	if len(tasks) > n {
		tasks = tasks[:n]
	}

	return cmd.write(c, tasks)
}

func (cmd *ListCmd) write(c *cli.Command, tasks []task.Task) error {
	if cmd.jsonOut {
		for _, t := range tasks {
			if err := iojson.WriteLine(c.Root().Writer, toView(t)); err != nil {
				return err
			}
		}
		return nil
	}

	_, err := fmt.Fprintln(c.Root().Writer, renderTaskList(tasks))
	return err
}

// sortComparator maps a --sort key to a task comparator. The zero key
// keeps insertion order.
func sortComparator(key string) func(a, b task.Task) int {
	switch key {
	case "priority":
		return task.ByPriorityDesc
	case "created":
		return task.ByCreatedDesc
	case "title":
		return task.ByTitle
	default:
		return func(a, b task.Task) int { return 0 }
	}
}
