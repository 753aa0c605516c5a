package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/actionshrimp/gitlad/internal/core/diff"
	"github.com/actionshrimp/gitlad/internal/core/logging"
	"github.com/actionshrimp/gitlad/internal/tui"
)

type StagingCmd struct {
	flags *Flags
	app   *App
}

// NewStagingCmd creates a new staging command.
func NewStagingCmd(flags *Flags, app *App) *StagingCmd {
	return &StagingCmd{flags: flags, app: app}
}

// Register adds the staging command to the application.
func (cmd *StagingCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "staging",
		Usage:     "Open the three-pane HEAD/INDEX/WORKTREE staging view",
		UsageText: "gitlad staging",
		Action:    cmd.run,
	})

	return app
}

func (cmd *StagingCmd) run(ctx context.Context, c *cli.Command) error {
	log := logging.Component("staging")

	staged, unstaged, err := cmd.app.Git.StagingDiffs(ctx, cmd.flags.Repo)
	if err != nil {
		return fmt.Errorf("load staging diffs: %w", err)
	}

	merged := diff.MergeFileLists(staged, unstaged)
	merged = cmd.filterIgnored(merged)

	branch, err := cmd.app.Git.Branch(ctx, cmd.flags.Repo)
	if err != nil {
		log.Debug().Err(err).Msg("branch lookup failed")
	}

	log.Debug().Int("files", len(merged)).Msg("staging view loaded")

	return tui.Run(tui.Options{
		Mode:    tui.ModeStaging,
		Staging: merged,
		Branch:  branch,
	})
}

func (cmd *StagingCmd) filterIgnored(files []diff.ThreeWayFileDiff) []diff.ThreeWayFileDiff {
	if len(cmd.flags.Config.Ignore) == 0 {
		return files
	}
	kept := files[:0]
	for _, f := range files {
		if !cmd.flags.Config.Ignored(f.Path) {
			kept = append(kept, f)
		}
	}
	return kept
}
