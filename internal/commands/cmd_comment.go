package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/actionshrimp/gitlad/internal/core/logging"
	"github.com/actionshrimp/gitlad/internal/core/review"
	"github.com/actionshrimp/gitlad/pkg/iojson"
)

type CommentCmd struct {
	flags *Flags
	app   *App

	pr     int
	reader iojson.FileReader[[]review.PendingComment]
}

// NewCommentCmd creates a new comment command.
func NewCommentCmd(flags *Flags, app *App) *CommentCmd {
	return &CommentCmd{flags: flags, app: app}
}

// Register adds the comment command to the application.
func (cmd *CommentCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "comment",
		Usage:     "Post review comments from a JSON file or stdin",
		UsageText: "gitlad comment [options]",
		Description: `Reads a JSON array of pending comments and posts each one to the
pull request. Each entry carries path, line, side (LEFT or RIGHT), and body.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "pr",
				Usage:       "pull request number (detected from the current branch when omitted)",
				Destination: &cmd.pr,
			},
			cmd.reader.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *CommentCmd) run(ctx context.Context, c *cli.Command) error {
	pending, err := cmd.reader.Read()
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return fmt.Errorf("no comments in input")
	}
	for i, p := range pending {
		if p.Path == "" || p.Line <= 0 || p.Body == "" {
			return fmt.Errorf("comment %d: path, line, and body are required", i)
		}
	}

	pr := cmd.pr
	if pr == 0 {
		pr, err = cmd.app.GitHub.CurrentPR(ctx)
		if err != nil {
			return err
		}
	}

	ctx = logging.WithPR(ctx, pr)
	if err := cmd.app.GitHub.SubmitPending(ctx, pr, pending); err != nil {
		return err
	}

	logger := logging.Component("comment")
	logger.Info().Ctx(ctx).Int("comments", len(pending)).Msg("comments posted")
	_, err = fmt.Fprintf(c.Root().Writer, "posted %d comment(s) to #%d\n", len(pending), pr)
	return err
}
