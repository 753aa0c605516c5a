package logging

import "context"

type contextKey string

const (
	repoKey contextKey = "repo"
	prKey   contextKey = "pr"
)

// WithRepo adds the repository directory to the context.
func WithRepo(ctx context.Context, repo string) context.Context {
	return context.WithValue(ctx, repoKey, repo)
}

// WithPR adds a pull request number to the context.
func WithPR(ctx context.Context, pr int) context.Context {
	return context.WithValue(ctx, prKey, pr)
}

// GetRepo retrieves the repository directory from the context.
// Returns empty string if not present.
func GetRepo(ctx context.Context) string {
	if repo, ok := ctx.Value(repoKey).(string); ok {
		return repo
	}
	return ""
}

// GetPR retrieves the pull request number from the context.
// Returns 0 if not present.
func GetPR(ctx context.Context) int {
	if pr, ok := ctx.Value(prKey).(int); ok {
		return pr
	}
	return 0
}
