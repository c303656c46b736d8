package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tracker/internal/core/task"
	"github.com/colonyops/tracker/pkg/iojson"
)

// TaskCmd implements the single-task commands: get, remove, complete,
// status, priority, and category.
type TaskCmd struct {
	flags *Flags
	app   *App
}

// NewTaskCmd creates a new task command set.
func NewTaskCmd(flags *Flags, app *App) *TaskCmd {
	return &TaskCmd{flags: flags, app: app}
}

// Register adds the single-task commands to the application.
func (cmd *TaskCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:      "get",
			Usage:     "Show a task by ID",
			UsageText: "tracker get <id>",
			Action:    cmd.runGet,
		},
		&cli.Command{
			Name:      "remove",
			Aliases:   []string{"rm"},
			Usage:     "Remove a task by ID",
			UsageText: "tracker remove <id>",
			Action:    cmd.runRemove,
		},
		&cli.Command{
			Name:      "complete",
			Aliases:   []string{"done"},
			Usage:     "Mark a task as completed",
			UsageText: "tracker complete <id>",
			Action:    cmd.runComplete,
		},
		&cli.Command{
			Name:      "status",
			Usage:     "Change a task's status",
			UsageText: "tracker status <id> <pending|progress|completed|cancelled>",
			Action:    cmd.runStatus,
		},
		&cli.Command{
			Name:      "priority",
			Usage:     "Change a task's priority",
			UsageText: "tracker priority <id> <0-10>",
			Action:    cmd.runPriority,
		},
		&cli.Command{
			Name:      "category",
			Usage:     "Change a task's category",
			UsageText: "tracker category <id> <name>",
			Action:    cmd.runCategory,
		},
	)

	return app
}

func (cmd *TaskCmd) runGet(ctx context.Context, c *cli.Command) error {
	id, err := argID(c)
	if err != nil {
		return err
	}

	t, err := cmd.app.Store.Get(id)
	if err != nil {
		return err
	}
	return iojson.WriteLine(c.Root().Writer, toView(t))
}

func (cmd *TaskCmd) runRemove(ctx context.Context, c *cli.Command) error {
	id, err := argID(c)
	if err != nil {
		return err
	}

	if err := cmd.app.Store.Remove(id); err != nil {
		return err
	}
	if err := cmd.app.Flush(); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(c.Root().Writer, "removed")
	return nil
}

func (cmd *TaskCmd) runComplete(ctx context.Context, c *cli.Command) error {
	id, err := argID(c)
	if err != nil {
		return err
	}

	if err := cmd.app.Store.UpdateStatus(id, task.StatusCompleted); err != nil {
		return err
	}
	if err := cmd.app.Flush(); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(c.Root().Writer, "completed")
	return nil
}

func (cmd *TaskCmd) runStatus(ctx context.Context, c *cli.Command) error {
	id, err := argID(c)
	if err != nil {
		return err
	}

	status, err := task.ParseStatus(c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("%w: %q", err, c.Args().Get(1))
	}

	if err := cmd.app.Store.UpdateStatus(id, status); err != nil {
		return err
	}
	if err := cmd.app.Flush(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "status set to %s\n", status)
	return nil
}

func (cmd *TaskCmd) runPriority(ctx context.Context, c *cli.Command) error {
	id, err := argID(c)
	if err != nil {
		return err
	}

	priority, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("%w: %q", task.ErrInvalidPriority, c.Args().Get(1))
	}

	if err := cmd.app.Store.UpdatePriority(id, priority); err != nil {
		return err
	}
	if err := cmd.app.Flush(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "priority set to %d\n", priority)
	return nil
}

func (cmd *TaskCmd) runCategory(ctx context.Context, c *cli.Command) error {
	id, err := argID(c)
	if err != nil {
		return err
	}

	category := c.Args().Get(1)
	if category == "" {
		return fmt.Errorf("usage: tracker category <id> <name>")
	}

	if err := cmd.app.Store.UpdateCategory(id, category); err != nil {
		return err
	}
	if err := cmd.app.Flush(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "category set to %s\n", category)
	return nil
}

// argID parses the leading positional argument as a task ID.
func argID(c *cli.Command) (int, error) {
	raw := c.Args().First()
	if raw == "" {
		return 0, fmt.Errorf("%w: missing task ID argument", task.ErrInvalidID)
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", task.ErrInvalidID, raw)
	}
	return id, nil
}
