package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tracker/pkg/iojson"
)

// statsView is the JSON output shape for the stats command.
type statsView struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	CompletionRate float64 `json:"completion_rate"`
}

// StatsCmd implements the tracker stats command.
type StatsCmd struct {
	flags *Flags
	app   *App

	jsonOut bool
}

// NewStatsCmd creates a new stats command.
func NewStatsCmd(flags *Flags, app *App) *StatsCmd {
	return &StatsCmd{flags: flags, app: app}
}

// Register adds the stats command to the application.
func (cmd *StatsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "stats",
		Usage:     "Show task statistics",
		UsageText: "tracker stats [--json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output JSON instead of the rendered summary",
				Destination: &cmd.jsonOut,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *StatsCmd) run(ctx context.Context, c *cli.Command) error {
	store := cmd.app.Store
	stats := statsView{
		Total:          store.Len(),
		Completed:      store.CompletedCount(),
		Pending:        store.PendingCount(),
		CompletionRate: store.CompletionRate(),
	}

	if cmd.jsonOut {
		return iojson.WriteLine(c.Root().Writer, stats)
	}

	_, err := fmt.Fprintln(c.Root().Writer, renderStats(stats))
	return err
}
