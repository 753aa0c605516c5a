package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/actionshrimp/gitlad/internal/core/review"
)

func TestThreadsCmd_PrintText(t *testing.T) {
	cmd := &ThreadsCmd{}

	threads := []*review.Thread{
		{
			ID:   "RT_1",
			Path: "internal/app.go",
			Line: 12,
			Comments: []review.Comment{
				{Author: "alice", Body: "rename this\nand split it up"},
			},
		},
		{
			ID:         "RT_2",
			Path:       "README.md",
			Line:       3,
			IsResolved: true,
			Comments:   []review.Comment{{Author: "bob", Body: "typo"}},
		},
	}

	var buf bytes.Buffer
	root := &cli.Command{Writer: &buf}

	require.NoError(t, cmd.printText(root, 42, threads))

	out := buf.String()
	assert.Contains(t, out, "internal/app.go:12")
	assert.Contains(t, out, "alice: rename this")
	assert.NotContains(t, out, "and split it up")
	assert.Contains(t, out, "README.md:3")
	assert.Contains(t, out, "resolved")
}

func TestThreadsCmd_PrintText_Empty(t *testing.T) {
	cmd := &ThreadsCmd{}

	var buf bytes.Buffer
	root := &cli.Command{Writer: &buf}

	require.NoError(t, cmd.printText(root, 7, nil))
	assert.Equal(t, "no threads on #7\n", buf.String())
}
