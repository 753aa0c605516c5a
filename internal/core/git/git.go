// Package git runs the git command-line tool and converts its diff output
// into the classified hunk model consumed by the aligners.
package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/actionshrimp/gitlad/pkg/executil"
)

// Executor runs git operations using the git command-line tool.
type Executor struct {
	gitPath      string
	contextLines int
	exec         executil.Executor
}

// NewExecutor creates a git executor. contextLines is the -U value used for
// diffs.
func NewExecutor(gitPath string, contextLines int, exec executil.Executor) *Executor {
	if gitPath == "" {
		gitPath = "git"
	}
	return &Executor{gitPath: gitPath, contextLines: contextLines, exec: exec}
}

// Branch returns the current branch name, or the short commit SHA in
// detached HEAD state.
func (e *Executor) Branch(ctx context.Context, dir string) (string, error) {
	out, err := e.exec.RunDir(ctx, dir, e.gitPath, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("git branch: %w", err)
	}

	branch := strings.TrimSpace(string(out))
	if branch != "" {
		return branch, nil
	}

	out, err = e.exec.RunDir(ctx, dir, e.gitPath, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// RemoteURL returns the origin remote URL for dir.
func (e *Executor) RemoteURL(ctx context.Context, dir string) (string, error) {
	out, err := e.exec.RunDir(ctx, dir, e.gitPath, "remote", "get-url", "origin")
	if err != nil {
		return "", fmt.Errorf("get remote url: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
