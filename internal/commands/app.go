package commands

import (
	"github.com/actionshrimp/gitlad/internal/core/git"
	"github.com/actionshrimp/gitlad/internal/core/github"
	"github.com/actionshrimp/gitlad/pkg/executil"
)

// App holds the collaborators that commands share. It is constructed in
// the Before hook, after config is loaded.
type App struct {
	Git    *git.Executor
	GitHub *github.Client
}

func NewApp(flags *Flags, exec executil.Executor) *App {
	cfg := flags.Config
	return &App{
		Git:    git.NewExecutor(cfg.GitPath, cfg.ContextLines, exec),
		GitHub: github.NewClient(cfg.GhPath, flags.Repo, exec),
	}
}
