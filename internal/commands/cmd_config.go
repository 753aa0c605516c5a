package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/actionshrimp/gitlad/pkg/iojson"
)

type ConfigCmd struct {
	flags *Flags

	jsonOutput bool
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate the configuration file",
				UsageText:   "gitlad config validate",
				Description: "Checks tool paths, ignore glob patterns, and the log level.",
				Action:      cmd.runValidate,
			},
			{
				Name:      "show",
				Usage:     "Print the effective configuration",
				UsageText: "gitlad config show",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runShow,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) runValidate(ctx context.Context, c *cli.Command) error {
	if err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath); err != nil {
		return err
	}

	_, err := fmt.Fprintln(c.Root().Writer, "configuration is valid")
	return err
}

func (cmd *ConfigCmd) runShow(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config

	if cmd.jsonOutput {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, cfg)
	}

	w := c.Root().Writer
	fmt.Fprintf(w, "git_path:        %s\n", cfg.GitPath)
	fmt.Fprintf(w, "gh_path:         %s\n", cfg.GhPath)
	fmt.Fprintf(w, "context_lines:   %d\n", cfg.ContextLines)
	fmt.Fprintf(w, "ignore:          %v\n", cfg.Ignore)
	fmt.Fprintf(w, "collapse_threads: %t\n", cfg.Review.CollapseThreads)
	fmt.Fprintf(w, "hide_resolved:   %t\n", cfg.Review.HideResolved)
	fmt.Fprintf(w, "log.level:       %s\n", cfg.Log.Level)
	fmt.Fprintf(w, "log.file:        %s\n", cfg.Log.File)
	return nil
}
