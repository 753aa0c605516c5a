package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actionshrimp/gitlad/internal/core/diff"
	"github.com/actionshrimp/gitlad/internal/core/review"
	"github.com/actionshrimp/gitlad/pkg/tuitest"
)

// paneFixture aligns a single-hunk file: one context row, one change row,
// one added row, one trailing context row.
func paneFixture() diff.AlignedDiff {
	fd := diff.FileDiff{
		NewPath: "main.go",
		Status:  "M",
		Hunks: []diff.Hunk{{
			Header: diff.HunkHeader{OldStart: 1, OldCount: 3, NewStart: 1, NewCount: 4},
			Pairs: []diff.LinePair{
				{LeftText: "package main", RightText: "package main", LeftType: diff.LineContext, RightType: diff.LineContext, LeftLineno: 1, RightLineno: 1},
				{LeftText: "func old() {}", RightText: "func new() {}", LeftType: diff.LineChange, RightType: diff.LineChange, LeftLineno: 2, RightLineno: 2},
				{RightText: "func extra() {}", LeftType: diff.LineFiller, RightType: diff.LineAdd, RightLineno: 3},
				{LeftText: "func main() {}", RightText: "func main() {}", LeftType: diff.LineContext, RightType: diff.LineContext, LeftLineno: 3, RightLineno: 4},
			},
		}},
	}
	return diff.Align(fd)
}

func paneThread(id string, line int, side diff.Side) *review.Thread {
	return &review.Thread{
		ID:   id,
		Path: "main.go",
		Line: line,
		Side: side,
		Comments: []review.Comment{
			{Author: "alice", Body: "looks wrong"},
		},
	}
}

func TestDiffPane_ViewShowsBothPanes(t *testing.T) {
	m := NewDiffPane(nil)
	m.SetSize(90, 20)
	m.SetFile("main.go", paneFixture(), nil, nil)

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "func old() {}")
	assert.Contains(t, out, "func new() {}")
	assert.Contains(t, out, "func extra() {}")
}

func TestDiffPane_CursorMovement(t *testing.T) {
	m := NewDiffPane(nil)
	m.SetSize(90, 20)
	m.SetFile("main.go", paneFixture(), nil, nil)

	assert.Equal(t, 0, m.cursor)

	m, _ = m.Update(tuitest.KeyPress('j'))
	m, _ = m.Update(tuitest.KeyPress('j'))
	assert.Equal(t, 2, m.cursor)

	m, _ = m.Update(tuitest.KeyPress('G'))
	assert.Equal(t, 3, m.cursor)

	m, _ = m.Update(tuitest.KeyPress('j'))
	assert.Equal(t, 3, m.cursor, "clamped at last row")

	m, _ = m.Update(tuitest.KeyPress('g'))
	assert.Equal(t, 0, m.cursor)
}

func TestDiffPane_CommentAnchor(t *testing.T) {
	m := NewDiffPane(nil)
	m.SetSize(90, 20)
	m.SetFile("main.go", paneFixture(), nil, nil)

	// change row anchors on the right
	m.cursor = 1
	path, line, side, ok := m.CommentAnchor()
	require.True(t, ok)
	assert.Equal(t, "main.go", path)
	assert.Equal(t, 2, line)
	assert.Equal(t, diff.SideRight, side)

	// added row has no left line
	m.cursor = 2
	_, line, side, ok = m.CommentAnchor()
	require.True(t, ok)
	assert.Equal(t, 3, line)
	assert.Equal(t, diff.SideRight, side)
}

func TestDiffPane_CommentAnchorLeftOnlyRow(t *testing.T) {
	fd := diff.FileDiff{
		OldPath: "gone.go",
		Status:  "D",
		Hunks: []diff.Hunk{{
			Pairs: []diff.LinePair{
				{LeftText: "bye", LeftType: diff.LineDelete, RightType: diff.LineFiller, LeftLineno: 1},
			},
		}},
	}
	m := NewDiffPane(nil)
	m.SetFile("gone.go", diff.Align(fd), nil, nil)

	_, line, side, ok := m.CommentAnchor()
	require.True(t, ok)
	assert.Equal(t, 1, line)
	assert.Equal(t, diff.SideLeft, side)
}

func TestDiffPane_ThreadNavigation(t *testing.T) {
	threads := []*review.Thread{
		paneThread("t1", 2, diff.SideRight),
		paneThread("t2", 4, diff.SideRight),
	}

	m := NewDiffPane(nil)
	m.SetSize(90, 20)
	m.SetFile("main.go", paneFixture(), threads, nil)

	require.True(t, m.NextThread())
	assert.Equal(t, 1, m.cursor, "row whose right lineno is 2")

	require.True(t, m.NextThread())
	assert.Equal(t, 3, m.cursor, "row whose right lineno is 4")

	assert.False(t, m.NextThread(), "no thread past the last one")

	require.True(t, m.PrevThread())
	assert.Equal(t, 1, m.cursor)
}

func TestDiffPane_ThreadAtCursor(t *testing.T) {
	threads := []*review.Thread{paneThread("t1", 2, diff.SideRight)}

	m := NewDiffPane(nil)
	m.SetSize(90, 20)
	m.SetFile("main.go", paneFixture(), threads, nil)

	m.cursor = 1
	require.NotNil(t, m.ThreadAtCursor())
	assert.Equal(t, "t1", m.ThreadAtCursor().ID)
}

func TestDiffPane_OverlayBalancesPanes(t *testing.T) {
	threads := []*review.Thread{paneThread("t1", 2, diff.SideRight)}

	m := NewDiffPane(nil)
	m.SetSize(90, 20)
	m.SetFile("main.go", paneFixture(), threads, nil)

	lines, rowStarts := m.visualLines()
	// 4 rows + 1 collapsed thread line = 5 visual lines
	assert.Len(t, lines, 5)
	// the thread sits under row 1, pushing row 2's start down
	assert.Equal(t, []int{0, 1, 3, 4}, rowStarts)

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "alice", "collapsed summary names the author")
}

func TestDiffPane_ExpandToggleGrowsOverlay(t *testing.T) {
	threads := []*review.Thread{paneThread("t1", 2, diff.SideRight)}

	m := NewDiffPane(nil)
	m.SetSize(90, 40)
	m.SetFile("main.go", paneFixture(), threads, nil)

	collapsedLines, _ := m.visualLines()

	m.cursor = 1
	m, _ = m.Update(tuitest.KeyPress('v'))
	expandedLines, _ := m.visualLines()
	assert.Greater(t, len(expandedLines), len(collapsedLines))

	m, _ = m.Update(tuitest.KeyPress('v'))
	backLines, _ := m.visualLines()
	assert.Len(t, backLines, len(collapsedLines))
}

func TestDiffPane_PendingCommentRenders(t *testing.T) {
	pending := []review.PendingComment{
		{Path: "main.go", Line: 3, Side: diff.SideRight, Body: "add a test"},
	}

	m := NewDiffPane(nil)
	m.SetSize(90, 20)
	m.SetFile("main.go", paneFixture(), nil, pending)

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "add a test")
}

func TestDiffPane_EmptyView(t *testing.T) {
	m := NewDiffPane(nil)
	m.SetSize(60, 10)
	assert.Contains(t, tuitest.StripANSI(m.View()), "No changes")
}
