package commands

import (
	"context"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/actionshrimp/gitlad/internal/core/review"
	"github.com/actionshrimp/gitlad/pkg/iojson"
)

type ThreadsCmd struct {
	flags *Flags
	app   *App

	pr         int
	jsonOutput bool
	all        bool
}

// NewThreadsCmd creates a new threads command.
func NewThreadsCmd(flags *Flags, app *App) *ThreadsCmd {
	return &ThreadsCmd{flags: flags, app: app}
}

// Register adds the threads command to the application.
func (cmd *ThreadsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "threads",
		Usage:     "List review threads on the current pull request",
		UsageText: "gitlad threads [options]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "pr",
				Usage:       "pull request number (detected from the current branch when omitted)",
				Destination: &cmd.pr,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
			&cli.BoolFlag{
				Name:        "all",
				Aliases:     []string{"a"},
				Usage:       "include resolved threads",
				Destination: &cmd.all,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ThreadsCmd) run(ctx context.Context, c *cli.Command) error {
	pr := cmd.pr
	if pr == 0 {
		var err error
		pr, err = cmd.app.GitHub.CurrentPR(ctx)
		if err != nil {
			return err
		}
	}

	threads, err := cmd.app.GitHub.ListThreads(ctx, pr)
	if err != nil {
		return err
	}

	if !cmd.all {
		kept := threads[:0]
		for _, t := range threads {
			if !t.IsResolved {
				kept = append(kept, t)
			}
		}
		threads = kept
	}

	if cmd.jsonOutput {
		out := struct {
			PR      int              `json:"pr"`
			Threads []*review.Thread `json:"threads"`
		}{PR: pr, Threads: threads}
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, out)
	}

	return cmd.printText(c, pr, threads)
}

func (cmd *ThreadsCmd) printText(c *cli.Command, pr int, threads []*review.Thread) error {
	w := c.Root().Writer
	if len(threads) == 0 {
		_, err := fmt.Fprintf(w, "no threads on #%d\n", pr)
		return err
	}

	byPath := review.GroupThreadsByPath(threads)
	paths := make([]string, 0, len(byPath))
	for path := range byPath {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, path := range paths {
		for _, t := range byPath[path] {
			state := "open"
			switch {
			case t.IsResolved:
				state = "resolved"
			case t.IsOutdated:
				state = "outdated"
			}
			summary := ""
			if len(t.Comments) > 0 {
				summary = fmt.Sprintf("%s: %s", t.Comments[0].Author, review.FirstLine(t.Comments[0].Body))
			}
			fmt.Fprintf(tw, "%s:%d\t%s\t(%d)\t%s\n", path, t.Line, state, len(t.Comments), summary)
		}
	}
	return tw.Flush()
}
