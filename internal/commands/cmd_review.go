package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/actionshrimp/gitlad/internal/core/diff"
	"github.com/actionshrimp/gitlad/internal/core/logging"
	"github.com/actionshrimp/gitlad/internal/core/review"
	"github.com/actionshrimp/gitlad/internal/tui"
)

type ReviewCmd struct {
	flags *Flags
	app   *App

	source    string
	pr        int
	noThreads bool
}

// NewReviewCmd creates a new review command.
func NewReviewCmd(flags *Flags, app *App) *ReviewCmd {
	return &ReviewCmd{flags: flags, app: app}
}

// Register adds the review command to the application.
func (cmd *ReviewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "review",
		Usage:     "Open the side-by-side diff review view",
		UsageText: "gitlad review [options]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "source",
				Aliases:     []string{"s"},
				Usage:       "diff to review: worktree, staged, unstaged, commit:<ref>, stash[:<n>], range:<a..b>",
				Value:       "worktree",
				Destination: &cmd.source,
			},
			&cli.IntFlag{
				Name:        "pr",
				Usage:       "pull request number (detected from the current branch when omitted)",
				Destination: &cmd.pr,
			},
			&cli.BoolFlag{
				Name:        "no-threads",
				Usage:       "skip loading review threads from GitHub",
				Destination: &cmd.noThreads,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ReviewCmd) run(ctx context.Context, c *cli.Command) error {
	return cmd.Run(ctx)
}

// Run loads the diff and threads and starts the review TUI. It is also
// the root action when gitlad is invoked with no subcommand.
func (cmd *ReviewCmd) Run(ctx context.Context) error {
	log := logging.Component("review")

	src, err := ParseSource(cmd.source)
	if err != nil {
		return err
	}

	// Identify the repo by its origin URL in log events; fall back to the
	// local path when there is no remote.
	repoID := cmd.flags.Repo
	if remote, err := cmd.app.Git.RemoteURL(ctx, cmd.flags.Repo); err == nil {
		repoID = remote
	}
	ctx = logging.WithRepo(ctx, repoID)

	files, err := cmd.app.Git.Diff(ctx, cmd.flags.Repo, src)
	if err != nil {
		return fmt.Errorf("load diff: %w", err)
	}
	files = cmd.filterIgnored(files)

	branch, err := cmd.app.Git.Branch(ctx, cmd.flags.Repo)
	if err != nil {
		log.Debug().Ctx(ctx).Err(err).Msg("branch lookup failed")
	}

	pr, threads := cmd.loadThreads(ctx, log)

	return tui.Run(tui.Options{
		Mode:          tui.ModeReview,
		Files:         files,
		Threads:       threads,
		PR:            pr,
		Branch:        branch,
		Formatter:     tui.NewMarkdownFormatter(80).Format,
		ExpandThreads: !cmd.flags.Config.Review.CollapseThreads,
	})
}

// loadThreads fetches review threads for the PR, or returns nothing when
// threads are disabled, gh is unavailable, or no PR exists for the branch.
func (cmd *ReviewCmd) loadThreads(ctx context.Context, log zerolog.Logger) (int, []*review.Thread) {
	if cmd.noThreads {
		return 0, nil
	}
	if !cmd.app.GitHub.IsAvailable(ctx) {
		log.Debug().Ctx(ctx).Msg("gh unavailable, skipping threads")
		return 0, nil
	}

	pr := cmd.pr
	if pr == 0 {
		var err error
		pr, err = cmd.app.GitHub.CurrentPR(ctx)
		if err != nil {
			if !errors.Is(err, review.ErrNoPullRequest) {
				log.Warn().Ctx(ctx).Err(err).Msg("pull request lookup failed")
			}
			return 0, nil
		}
	}
	ctx = logging.WithPR(ctx, pr)

	threads, err := cmd.app.GitHub.ListThreads(ctx, pr)
	if err != nil {
		log.Warn().Ctx(ctx).Err(err).Msg("loading threads failed")
		return pr, nil
	}

	if cmd.flags.Config.Review.HideResolved {
		kept := threads[:0]
		for _, t := range threads {
			if !t.IsResolved {
				kept = append(kept, t)
			}
		}
		threads = kept
	}

	log.Debug().Ctx(ctx).Int("threads", len(threads)).Msg("threads loaded")
	return pr, threads
}

func (cmd *ReviewCmd) filterIgnored(files []diff.FileDiff) []diff.FileDiff {
	if len(cmd.flags.Config.Ignore) == 0 {
		return files
	}
	kept := files[:0]
	for _, f := range files {
		if !cmd.flags.Config.Ignored(f.Path()) {
			kept = append(kept, f)
		}
	}
	return kept
}

// ParseSource parses the --source flag into a diff source.
func ParseSource(s string) (diff.DiffSource, error) {
	kind, ref, _ := strings.Cut(s, ":")
	switch kind {
	case "", "worktree":
		return diff.DiffSource{Kind: diff.SourceWorktree}, nil
	case "staged":
		return diff.DiffSource{Kind: diff.SourceStaged}, nil
	case "unstaged":
		return diff.DiffSource{Kind: diff.SourceUnstaged}, nil
	case "commit":
		if ref == "" {
			return diff.DiffSource{}, fmt.Errorf("commit source requires a ref, e.g. commit:abc123")
		}
		return diff.DiffSource{Kind: diff.SourceCommit, Ref: ref}, nil
	case "stash":
		if ref == "" {
			ref = "stash@{0}"
		} else {
			ref = fmt.Sprintf("stash@{%s}", ref)
		}
		return diff.DiffSource{Kind: diff.SourceStash, Ref: ref}, nil
	case "range":
		if ref == "" {
			return diff.DiffSource{}, fmt.Errorf("range source requires a range, e.g. range:main..feature")
		}
		return diff.DiffSource{Kind: diff.SourceRange, Ref: ref}, nil
	case "conflict":
		return diff.DiffSource{Kind: diff.SourceConflict}, nil
	default:
		return diff.DiffSource{}, fmt.Errorf("unknown diff source %q", s)
	}
}
