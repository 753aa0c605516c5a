package git

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"

	"github.com/actionshrimp/gitlad/internal/core/diff"
)

// Diff runs the diff a source resolves to and returns classified file diffs.
// Three-pane sources are not a single git invocation; use StagingDiffs for
// those.
func (e *Executor) Diff(ctx context.Context, dir string, src diff.DiffSource) ([]diff.FileDiff, error) {
	refs, err := diff.RefsForSource(src)
	if err != nil {
		return nil, err
	}
	if refs.IsThreeWay() {
		return nil, fmt.Errorf("source resolves to three refs; use StagingDiffs")
	}

	args, err := e.diffArgs(refs)
	if err != nil {
		return nil, err
	}

	out, err := e.exec.RunDir(ctx, dir, e.gitPath, args...)
	if err != nil {
		return nil, fmt.Errorf("git diff: %w", err)
	}

	return parseDiff(out)
}

// StagingDiffs returns the HEAD→INDEX and INDEX→WORKTREE diffs for the
// three-pane staging view.
func (e *Executor) StagingDiffs(ctx context.Context, dir string) (staged, unstaged []diff.FileDiff, err error) {
	staged, err = e.Diff(ctx, dir, diff.DiffSource{Kind: diff.SourceStaged})
	if err != nil {
		return nil, nil, err
	}
	unstaged, err = e.Diff(ctx, dir, diff.DiffSource{Kind: diff.SourceUnstaged})
	if err != nil {
		return nil, nil, err
	}
	return staged, unstaged, nil
}

// diffArgs translates resolved refs into git diff arguments. The INDEX and
// WORKTREE pseudo-refs select the --cached and plain diff forms.
func (e *Executor) diffArgs(refs diff.Refs) ([]string, error) {
	args := []string{"diff", "--no-color", fmt.Sprintf("-U%d", e.contextLines)}

	switch {
	case refs.Left == diff.RefHead && refs.Right == diff.RefWorktree:
		args = append(args, "HEAD")
	case refs.Left == diff.RefHead && refs.Right == diff.RefIndex:
		args = append(args, "--cached")
	case refs.Left == diff.RefIndex && refs.Right == diff.RefWorktree:
		// plain `git diff`
	case refs.Right == diff.RefWorktree:
		args = append(args, refs.Left)
	case refs.Left == diff.RefIndex || refs.Left == diff.RefWorktree || refs.Right == diff.RefIndex:
		return nil, fmt.Errorf("unsupported ref combination %q..%q", refs.Left, refs.Right)
	default:
		args = append(args, refs.Left, refs.Right)
	}

	return args, nil
}

// parseDiff parses raw unified-diff output and classifies every hunk's lines
// into aligned pairs.
func parseDiff(raw []byte) ([]diff.FileDiff, error) {
	files, _, err := gitdiff.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse diff: %w", err)
	}

	out := make([]diff.FileDiff, 0, len(files))
	for _, f := range files {
		out = append(out, convertFile(f))
	}
	return out, nil
}

func convertFile(f *gitdiff.File) diff.FileDiff {
	fd := diff.FileDiff{
		OldPath:  f.OldName,
		NewPath:  f.NewName,
		Status:   fileStatus(f),
		IsBinary: f.IsBinary,
	}

	for _, frag := range f.TextFragments {
		fd.Hunks = append(fd.Hunks, classifyFragment(frag))
		fd.Additions += int(frag.LinesAdded)
		fd.Deletions += int(frag.LinesDeleted)
	}

	return fd
}

func fileStatus(f *gitdiff.File) string {
	switch {
	case f.IsNew:
		return "A"
	case f.IsDelete:
		return "D"
	case f.IsRename:
		return "R"
	case f.IsCopy:
		return "C"
	default:
		return "M"
	}
}

// classifyFragment turns one hunk's lines into classified line pairs.
// Deletions queue up and pair with subsequent additions as change rows;
// surplus deletions become delete/filler rows and surplus additions
// filler/add rows. Context flushes the queue.
func classifyFragment(frag *gitdiff.TextFragment) diff.Hunk {
	h := diff.Hunk{Header: fragmentHeader(frag)}

	type delLine struct {
		text   string
		lineno int
	}

	oldNo := int(frag.OldPosition)
	newNo := int(frag.NewPosition)
	var pending []delLine

	flush := func() {
		for _, d := range pending {
			h.Pairs = append(h.Pairs, diff.LinePair{
				LeftText: d.text, LeftType: diff.LineDelete, LeftLineno: d.lineno,
				RightType: diff.LineFiller,
			})
		}
		pending = nil
	}

	for _, line := range frag.Lines {
		text := strings.TrimSuffix(line.Line, "\n")

		switch line.Op {
		case gitdiff.OpContext:
			flush()
			h.Pairs = append(h.Pairs, diff.LinePair{
				LeftText: text, RightText: text,
				LeftType: diff.LineContext, RightType: diff.LineContext,
				LeftLineno: oldNo, RightLineno: newNo,
			})
			oldNo++
			newNo++

		case gitdiff.OpDelete:
			pending = append(pending, delLine{text: text, lineno: oldNo})
			oldNo++

		case gitdiff.OpAdd:
			if len(pending) > 0 {
				d := pending[0]
				pending = pending[1:]
				h.Pairs = append(h.Pairs, diff.LinePair{
					LeftText: d.text, RightText: text,
					LeftType: diff.LineChange, RightType: diff.LineChange,
					LeftLineno: d.lineno, RightLineno: newNo,
				})
			} else {
				h.Pairs = append(h.Pairs, diff.LinePair{
					RightText: text,
					LeftType:  diff.LineFiller, RightType: diff.LineAdd,
					RightLineno: newNo,
				})
			}
			newNo++
		}
	}
	flush()

	return h
}

func fragmentHeader(frag *gitdiff.TextFragment) diff.HunkHeader {
	raw := fmt.Sprintf("@@ -%s +%s @@",
		formatRange(frag.OldPosition, frag.OldLines),
		formatRange(frag.NewPosition, frag.NewLines))
	if frag.Comment != "" {
		raw += " " + frag.Comment
	}

	return diff.HunkHeader{
		OldStart: int(frag.OldPosition),
		OldCount: int(frag.OldLines),
		NewStart: int(frag.NewPosition),
		NewCount: int(frag.NewLines),
		Raw:      raw,
	}
}

// formatRange formats one side of a @@ header; single-line ranges omit the
// count.
func formatRange(pos, length int64) string {
	if length == 1 {
		return fmt.Sprintf("%d", pos)
	}
	return fmt.Sprintf("%d,%d", pos, length)
}
