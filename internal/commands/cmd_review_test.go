package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actionshrimp/gitlad/internal/core/config"
	"github.com/actionshrimp/gitlad/internal/core/diff"
)

func TestParseSource(t *testing.T) {
	cases := []struct {
		input string
		want  diff.DiffSource
	}{
		{"worktree", diff.DiffSource{Kind: diff.SourceWorktree}},
		{"", diff.DiffSource{Kind: diff.SourceWorktree}},
		{"staged", diff.DiffSource{Kind: diff.SourceStaged}},
		{"unstaged", diff.DiffSource{Kind: diff.SourceUnstaged}},
		{"commit:abc123", diff.DiffSource{Kind: diff.SourceCommit, Ref: "abc123"}},
		{"stash", diff.DiffSource{Kind: diff.SourceStash, Ref: "stash@{0}"}},
		{"stash:2", diff.DiffSource{Kind: diff.SourceStash, Ref: "stash@{2}"}},
		{"range:main..feature", diff.DiffSource{Kind: diff.SourceRange, Ref: "main..feature"}},
		{"conflict", diff.DiffSource{Kind: diff.SourceConflict}},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseSource(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseSource_Errors(t *testing.T) {
	for _, input := range []string{"commit", "commit:", "range", "range:", "bogus"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseSource(input)
			assert.Error(t, err)
		})
	}
}

func TestReviewCmd_FilterIgnored(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Ignore = []string{"vendor/**", "**/*.lock"}

	cmd := &ReviewCmd{flags: &Flags{Config: &cfg}}

	files := []diff.FileDiff{
		{NewPath: "internal/app.go"},
		{NewPath: "vendor/lib/lib.go"},
		{NewPath: "go.lock"},
	}

	kept := cmd.filterIgnored(files)
	require.Len(t, kept, 1)
	assert.Equal(t, "internal/app.go", kept[0].Path())
}
