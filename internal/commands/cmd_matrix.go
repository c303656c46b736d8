package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tracker/pkg/iojson"
)

// MatrixCmd implements the tracker matrix command.
type MatrixCmd struct {
	flags *Flags
	app   *App

	category string
	priority int
	jsonOut  bool
}

// NewMatrixCmd creates a new matrix command.
func NewMatrixCmd(flags *Flags, app *App) *MatrixCmd {
	return &MatrixCmd{flags: flags, app: app}
}

// Register adds the matrix command to the application.
func (cmd *MatrixCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "matrix",
		Usage:     "Show tasks grouped by category and priority",
		UsageText: "tracker matrix [--category <name> --priority <n>]",
		Description: `Builds the category/priority matrix from the current tasks and
displays it. With both --category and --priority set, shows only the
tasks in that one bucket.

The matrix is rebuilt from scratch on every invocation; it is a
point-in-time view, never a cache.

Examples:
  tracker matrix
  tracker matrix --category Work --priority 8`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "category",
				Aliases:     []string{"C"},
				Usage:       "category to look up",
				Destination: &cmd.category,
			},
			&cli.IntFlag{
				Name:        "priority",
				Aliases:     []string{"p"},
				Usage:       "priority to look up",
				Destination: &cmd.priority,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output JSON lines instead of the rendered matrix",
				Destination: &cmd.jsonOut,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *MatrixCmd) run(ctx context.Context, c *cli.Command) error {
	matrix := cmd.app.Matrix
	matrix.RebuildFrom(cmd.app.Store.Snapshot())

	if cmd.category != "" {
		if !c.IsSet("priority") {
			return fmt.Errorf("--category requires --priority for a bucket lookup")
		}
		bucket := matrix.Lookup(cmd.category, cmd.priority)
		if cmd.jsonOut {
			for _, t := range bucket {
				if err := iojson.WriteLine(c.Root().Writer, toView(t)); err != nil {
					return err
				}
			}
			return nil
		}
		_, err := fmt.Fprintln(c.Root().Writer, renderTaskList(bucket))
		return err
	}

	if cmd.jsonOut {
		for _, category := range matrix.Categories() {
			for _, priority := range matrix.Priorities(category) {
				for _, t := range matrix.Lookup(category, priority) {
					if err := iojson.WriteLine(c.Root().Writer, toView(t)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}

	_, err := fmt.Fprintln(c.Root().Writer, renderMatrix(matrix))
	return err
}
