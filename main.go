package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tracker/internal/commands"
	"github.com/colonyops/tracker/internal/core/config"
	"github.com/colonyops/tracker/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser  func()
		trackerApp = commands.NewApp()
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "tracker",
		Usage:     "Track tasks from the command line",
		UsageText: "tracker [global options] command [command options]",
		Description: `Tracker keeps a set of tasks in a plain text file and offers
filtered, sorted, and category/priority views over them.

Run 'tracker add' to create a task and 'tracker list' to see them.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TRACKER_LOG_LEVEL"),
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/tracker.log)",
				Sources:     cli.EnvVars("TRACKER_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TRACKER_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("TRACKER_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "path to task file (overrides config)",
				Sources:     cli.EnvVars("TRACKER_FILE"),
				Destination: &flags.TaskFile,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			if flags.TaskFile != "" {
				cfg.TaskFile = flags.TaskFile
			}
			flags.Config = cfg

			// Always log to a file; explicit flags win over the config file
			logFile := flags.LogFile
			if logFile == "" {
				logFile = cfg.Log.File
			}
			logLevel := flags.LogLevel
			if logLevel == "" {
				logLevel = cfg.Log.Level
			}

			logger, closer, err := logutils.New(logLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			trackerApp.Configure(cfg)
			if err := trackerApp.LoadTasks(); err != nil {
				return ctx, fmt.Errorf("load tasks from %s: %w", cfg.TaskFile, err)
			}

			return ctx, nil
		},
	}

	app = commands.NewAddCmd(flags, trackerApp).Register(app)
	app = commands.NewListCmd(flags, trackerApp).Register(app)
	app = commands.NewTaskCmd(flags, trackerApp).Register(app)
	app = commands.NewStatsCmd(flags, trackerApp).Register(app)
	app = commands.NewMatrixCmd(flags, trackerApp).Register(app)
	app = commands.NewImportCmd(flags, trackerApp).Register(app)
	app = commands.NewFileCmd(flags, trackerApp).Register(app)

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Println()
		fmt.Println(err.Error())
		exitCode = 1
	}

	if logCloser != nil {
		logCloser()
	}

	os.Exit(exitCode)
}
