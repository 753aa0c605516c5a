package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/actionshrimp/gitlad/internal/commands"
	"github.com/actionshrimp/gitlad/internal/core/config"
	"github.com/actionshrimp/gitlad/internal/core/logging"
	"github.com/actionshrimp/gitlad/internal/core/styles"
	"github.com/actionshrimp/gitlad/pkg/executil"
	"github.com/actionshrimp/gitlad/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() populates
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

	var logCloser func()

	flags := &commands.Flags{}
	gitladApp := &commands.App{}

	app := &cli.Command{
		Name:      "gitlad",
		Usage:     "Review git diffs side by side, with PR comment threads inline",
		UsageText: "gitlad [global options] command [command options]",
		Description: `Gitlad renders diffs as aligned side-by-side panes in the terminal and
overlays GitHub pull request review threads on the lines they discuss.

Run 'gitlad' with no arguments to review the working tree against HEAD.
Run 'gitlad staging' for the three-pane HEAD/INDEX/WORKTREE view.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("GITLAD_LOG_LEVEL"),
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to the state dir, e.g. ~/.local/state/gitlad/gitlad.log)",
				Sources:     cli.EnvVars("GITLAD_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("GITLAD_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "repo",
				Aliases:     []string{"C"},
				Usage:       "path to the git repository",
				Value:       ".",
				Destination: &flags.Repo,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// Flags win over config for log settings. Always log to a file;
			// the alternate screen owns stdout.
			logLevel := flags.LogLevel
			if logLevel == "" {
				logLevel = cfg.Log.Level
			}
			logFile := flags.LogFile
			if logFile == "" {
				logFile = cfg.Log.File
			}
			if logFile == "" {
				logFile = commands.DefaultLogFile()
			}

			logger, closer, err := logutils.New(logLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			// events logged with .Ctx(ctx) pick up repo and pr fields
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			styles.Init(cfg.Theme)

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*gitladApp = *commands.NewApp(flags, &executil.RealExecutor{})

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	reviewCmd := commands.NewReviewCmd(flags, gitladApp)

	app = reviewCmd.Register(app)
	app = commands.NewStagingCmd(flags, gitladApp).Register(app)
	app = commands.NewThreadsCmd(flags, gitladApp).Register(app)
	app = commands.NewCommentCmd(flags, gitladApp).Register(app)
	app = commands.NewConfigCmd(flags).Register(app)

	// Reviewing the worktree is the default action when no subcommand is given
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'gitlad --help' for usage", c.Args().First())
		}
		return reviewCmd.Run(ctx)
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Println()
		fmt.Println(err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
