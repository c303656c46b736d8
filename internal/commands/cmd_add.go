package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tracker/pkg/iojson"
)

// AddCmd implements the tracker add command.
type AddCmd struct {
	flags *Flags
	app   *App

	title       string
	description string
	priority    int
	category    string
}

// NewAddCmd creates a new add command.
func NewAddCmd(flags *Flags, app *App) *AddCmd {
	return &AddCmd{flags: flags, app: app}
}

// Register adds the add command to the application.
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a new task",
		UsageText: "tracker add --title <title> [--description <desc>] [--priority <0-10>] [--category <name>]",
		Description: `Creates a new pending task and prints it as JSON.

Titles must be unique across the task file.

Examples:
  tracker add --title "Buy milk"
  tracker add -t "Ship release" -d "tag and push" -p 8 -C Work`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "title for the task",
				Required:    true,
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "optional description",
				Destination: &cmd.description,
			},
			&cli.IntFlag{
				Name:        "priority",
				Aliases:     []string{"p"},
				Usage:       "priority from 0 to 10",
				Destination: &cmd.priority,
			},
			&cli.StringFlag{
				Name:        "category",
				Aliases:     []string{"C"},
				Usage:       "category name",
				Destination: &cmd.category,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	store := cmd.app.Store

	id, err := store.Add(cmd.title, cmd.description)
	if err != nil {
		return fmt.Errorf("add task: %w", err)
	}

	if c.IsSet("priority") {
		if err := store.UpdatePriority(id, cmd.priority); err != nil {
			return fmt.Errorf("set priority: %w", err)
		}
	}
	if c.IsSet("category") {
		if err := store.UpdateCategory(id, cmd.category); err != nil {
			return fmt.Errorf("set category: %w", err)
		}
	}

	if err := cmd.app.Flush(); err != nil {
		return err
	}

	created, err := store.Get(id)
	if err != nil {
		return err
	}
	return iojson.WriteLine(c.Root().Writer, toView(created))
}
