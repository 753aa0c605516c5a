package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/actionshrimp/gitlad/internal/core/diff"
	"github.com/actionshrimp/gitlad/pkg/tuitest"
)

func threeWayFixture() diff.AlignedThreeWayDiff {
	f := diff.ThreeWayFileDiff{
		Path: "main.go",
		StagedHunks: []diff.Hunk{{
			Header: diff.HunkHeader{OldStart: 1, OldCount: 2, NewStart: 1, NewCount: 2},
			Pairs: []diff.LinePair{
				{LeftText: "a", RightText: "a", LeftType: diff.LineContext, RightType: diff.LineContext, LeftLineno: 1, RightLineno: 1},
				{LeftText: "b", RightText: "B", LeftType: diff.LineChange, RightType: diff.LineChange, LeftLineno: 2, RightLineno: 2},
			},
		}},
		UnstagedHunks:  []diff.Hunk{},
		StatusStaged:   "M",
		Additions:      1,
		Deletions:      1,
	}
	return diff.AlignThreeWay(f)
}

func TestThreePane_ViewShowsTitlesAndContent(t *testing.T) {
	m := NewThreePane()
	m.SetSize(120, 20)
	m.SetFile("main.go", threeWayFixture())

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "HEAD")
	assert.Contains(t, out, "INDEX")
	assert.Contains(t, out, "WORKTREE")
	assert.Contains(t, out, "B")
}

func TestThreePane_CursorMovement(t *testing.T) {
	m := NewThreePane()
	m.SetSize(120, 20)
	m.SetFile("main.go", threeWayFixture())

	m, _ = m.Update(tuitest.KeyPress('j'))
	assert.Equal(t, 1, m.cursor)

	m, _ = m.Update(tuitest.KeyPress('j'))
	assert.Equal(t, 1, m.cursor, "clamped at last row")

	m, _ = m.Update(tuitest.KeyPress('g'))
	assert.Equal(t, 0, m.cursor)
}

func TestThreePane_EmptyView(t *testing.T) {
	m := NewThreePane()
	m.SetSize(60, 10)
	assert.Contains(t, tuitest.StripANSI(m.View()), "No staged or unstaged changes")
}
