package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tracker/internal/core/task"
	"github.com/colonyops/tracker/pkg/iojson"
)

// Import stops attempting new tasks once this many have failed; the
// remainder are reported as skipped.
const maxImportFailures = 3

// ImportInput is the JSON schema read by tracker import.
type ImportInput struct {
	Tasks []ImportTask `json:"tasks"`
}

// ImportTask is a single task in the import input.
type ImportTask struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Priority    *int   `json:"priority,omitempty"`
	Status      string `json:"status,omitempty"`
}

// Import result statuses.
const (
	ImportStatusCreated = "created"
	ImportStatusFailed  = "failed"
	ImportStatusSkipped = "skipped"
)

// ImportResult reports the outcome for one input task.
type ImportResult struct {
	Title  string `json:"title"`
	ID     int    `json:"id,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ImportOutput is the JSON result written by tracker import.
type ImportOutput struct {
	Total   int            `json:"total"`
	Created int            `json:"created"`
	Failed  int            `json:"failed"`
	Skipped int            `json:"skipped"`
	Results []ImportResult `json:"results"`
}

// ImportCmd implements the tracker import command.
type ImportCmd struct {
	flags *Flags
	app   *App
	fr    *iojson.FileReader[ImportInput]
}

// NewImportCmd creates a new import command.
func NewImportCmd(flags *Flags, app *App) *ImportCmd {
	return &ImportCmd{
		flags: flags,
		app:   app,
		fr:    &iojson.FileReader[ImportInput]{},
	}
}

// Register adds the import command to the application.
func (cmd *ImportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "import",
		Usage: "Create multiple tasks from JSON input",
		UsageText: `tracker import [options]

Read from stdin:
  echo '{"tasks":[{"title":"Buy milk"}]}' | tracker import

Read from file:
  tracker import -i tasks.json`,
		Description: `Creates multiple tasks from a JSON document.

Each task in the input array is created sequentially. Processing stops
after 3 failures; tasks not attempted are marked as skipped.

Input JSON schema:
  {
    "tasks": [
      {
        "title": "task title",
        "description": "optional description",
        "category": "optional category",
        "priority": 5,
        "status": "optional status"
      }
    ]
  }

Output is JSON with per-task results and overall counts.`,
		Flags: []cli.Flag{
			cmd.fr.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ImportCmd) run(ctx context.Context, c *cli.Command) error {
	input, err := cmd.fr.Read()
	if err != nil {
		cmd.app.log.Error().Err(err).Msg("failed to read import input")
		return iojson.WriteError(fmt.Sprintf("read input: %s", err), nil)
	}
	if len(input.Tasks) == 0 {
		return iojson.WriteError("input has no tasks", nil)
	}

	output := ImportOutput{
		Total:   len(input.Tasks),
		Results: make([]ImportResult, 0, len(input.Tasks)),
	}

	for i, in := range input.Tasks {
		if output.Failed >= maxImportFailures {
			for j := i; j < len(input.Tasks); j++ {
				output.Results = append(output.Results, ImportResult{
					Title:  input.Tasks[j].Title,
					Status: ImportStatusSkipped,
				})
				output.Skipped++
			}
			break
		}

		result := cmd.createTask(in)
		output.Results = append(output.Results, result)

		if result.Status == ImportStatusFailed {
			output.Failed++
			cmd.app.log.Error().Str("title", in.Title).Str("error", result.Error).Msg("import task failed")
		} else {
			output.Created++
			cmd.app.log.Debug().Str("title", in.Title).Int("id", result.ID).Msg("imported task")
		}
	}

	if output.Created > 0 {
		if err := cmd.app.Flush(); err != nil {
			return iojson.WriteError(fmt.Sprintf("save tasks: %s", err), nil)
		}
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, output)
}

func (cmd *ImportCmd) createTask(in ImportTask) ImportResult {
	fail := func(err error) ImportResult {
		return ImportResult{Title: in.Title, Status: ImportStatusFailed, Error: err.Error()}
	}

	id, err := cmd.app.Store.Add(in.Title, in.Description)
	if err != nil {
		return fail(err)
	}

	err = cmd.app.Store.Update(id, func(t *task.Task) error {
		if in.Category != "" {
			if err := t.SetCategory(in.Category); err != nil {
				return err
			}
		}
		if in.Priority != nil {
			if err := t.SetPriority(*in.Priority); err != nil {
				return err
			}
		}
		if in.Status != "" {
			status, err := task.ParseStatus(in.Status)
			if err != nil {
				return fmt.Errorf("%w: %q", err, in.Status)
			}
			return t.SetStatus(status)
		}
		return nil
	})
	if err != nil {
		// The task was created but one of its fields was bad; drop it so
		// the input either imports cleanly or reports the failure.
		_ = cmd.app.Store.Remove(id)
		return fail(err)
	}

	return ImportResult{Title: in.Title, ID: id, Status: ImportStatusCreated}
}
