// Command docgen generates CLI reference documentation from the tracker
// command definitions. Output is written to docs/cli-reference.md.
package main

import (
	"fmt"
	"os"

	docs "github.com/urfave/cli-docs/v3"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tracker/internal/commands"
)

func main() {
	flags := &commands.Flags{}
	app := commands.NewApp()

	root := &cli.Command{
		Name:      "tracker",
		Usage:     "Track tasks from the command line",
		UsageText: "tracker [global options] command [command options]",
		Description: `Tracker keeps a set of tasks in a plain text file and offers
filtered, sorted, and category/priority views over them.

Run 'tracker add' to create a task and 'tracker list' to see them.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("TRACKER_LOG_LEVEL"),
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "path to log file (defaults to <data-dir>/tracker.log)",
				Sources: cli.EnvVars("TRACKER_LOG_FILE"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
				Sources: cli.EnvVars("TRACKER_CONFIG"),
				Value:   commands.DefaultConfigPath(),
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "path to data directory",
				Sources: cli.EnvVars("TRACKER_DATA_DIR"),
				Value:   commands.DefaultDataDir(),
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "path to task file (overrides config)",
				Sources: cli.EnvVars("TRACKER_FILE"),
			},
		},
	}

	root = commands.NewAddCmd(flags, app).Register(root)
	root = commands.NewListCmd(flags, app).Register(root)
	root = commands.NewTaskCmd(flags, app).Register(root)
	root = commands.NewStatsCmd(flags, app).Register(root)
	root = commands.NewMatrixCmd(flags, app).Register(root)
	root = commands.NewImportCmd(flags, app).Register(root)
	root = commands.NewFileCmd(flags, app).Register(root)

	md, err := docs.ToMarkdown(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}

	outPath := "docs/cli-reference.md"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", outPath)
}
