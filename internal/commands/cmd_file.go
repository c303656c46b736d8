package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// FileCmd implements the explicit save and load commands. The default
// task file is read and written automatically; these exist for moving
// tasks between files.
type FileCmd struct {
	flags *Flags
	app   *App
}

// NewFileCmd creates a new file command set.
func NewFileCmd(flags *Flags, app *App) *FileCmd {
	return &FileCmd{flags: flags, app: app}
}

// Register adds the save and load commands to the application.
func (cmd *FileCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:      "save",
			Usage:     "Save tasks to a file",
			UsageText: "tracker save [path]",
			Action:    cmd.runSave,
		},
		&cli.Command{
			Name:      "load",
			Usage:     "Load tasks from a file, replacing the current set",
			UsageText: "tracker load [path]",
			Description: `Replaces the in-memory task set with the given file's contents.
The file is validated in full first; on any error the current tasks are
kept untouched.`,
			Action: cmd.runLoad,
		},
	)

	return app
}

func (cmd *FileCmd) runSave(ctx context.Context, c *cli.Command) error {
	path := c.Args().First()
	if path == "" {
		path = cmd.flags.Config.TaskFile
	}

	if err := cmd.app.Store.SaveFile(path); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "saved %d task(s) to %s\n", cmd.app.Store.Len(), path)
	return nil
}

func (cmd *FileCmd) runLoad(ctx context.Context, c *cli.Command) error {
	path := c.Args().First()
	if path == "" {
		path = cmd.flags.Config.TaskFile
	}

	if err := cmd.app.Store.LoadFile(path); err != nil {
		return err
	}

	// Persist the newly loaded set to the default file so subsequent
	// commands see it.
	if path != cmd.flags.Config.TaskFile {
		if err := cmd.app.Flush(); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "loaded %d task(s) from %s\n", cmd.app.Store.Len(), path)
	return nil
}
