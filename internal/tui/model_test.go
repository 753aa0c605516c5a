package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actionshrimp/gitlad/internal/core/diff"
	"github.com/actionshrimp/gitlad/internal/core/review"
	"github.com/actionshrimp/gitlad/pkg/tuitest"
)

func modelFixture() Options {
	fd := diff.FileDiff{
		NewPath: "main.go",
		Status:  "M",
		Hunks: []diff.Hunk{{
			Header: diff.HunkHeader{OldStart: 1, OldCount: 2, NewStart: 1, NewCount: 2},
			Pairs: []diff.LinePair{
				{LeftText: "a", RightText: "a", LeftType: diff.LineContext, RightType: diff.LineContext, LeftLineno: 1, RightLineno: 1},
				{LeftText: "b", RightText: "B", LeftType: diff.LineChange, RightType: diff.LineChange, LeftLineno: 2, RightLineno: 2},
			},
		}},
		Additions: 1,
		Deletions: 1,
	}
	return Options{
		Mode:   ModeReview,
		Files:  []diff.FileDiff{fd},
		Branch: "feature",
		PR:     42,
		Threads: []*review.Thread{{
			ID:   "t1",
			Path: "main.go",
			Line: 2,
			Side: diff.SideRight,
			Comments: []review.Comment{
				{Author: "alice", Body: "why?"},
			},
		}},
	}
}

func press(m tea.Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestModel_InitialState(t *testing.T) {
	m := NewModel(modelFixture())

	assert.Equal(t, FocusFileList, m.focused)
	assert.Equal(t, 1, m.fileList.Len())
	assert.Equal(t, "main.go", m.diffPane.Path(), "first file loads eagerly")
}

func TestModel_TabSwitchesFocus(t *testing.T) {
	m := NewModel(modelFixture())
	m.setSize(100, 30)

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusDiff, m.focused)

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusFileList, m.focused)
}

func TestModel_BracketSequenceJumpsToThread(t *testing.T) {
	m := NewModel(modelFixture())
	m.setSize(100, 30)

	m = press(m, tuitest.KeyPress(']'))
	assert.Equal(t, "]", m.bracket)

	m = press(m, tuitest.KeyPress('c'))
	assert.Empty(t, m.bracket)
	assert.Equal(t, FocusDiff, m.focused)
	assert.Equal(t, 1, m.diffPane.cursor, "cursor lands on the thread anchor row")

	// no further threads below
	m = press(m, tuitest.KeyPress(']'))
	m = press(m, tuitest.KeyPress('c'))
	assert.Equal(t, "no more threads", m.statusMsg)
}

func TestModel_CommentFlowAddsPending(t *testing.T) {
	m := NewModel(modelFixture())
	m.setSize(100, 30)

	// focus the diff pane and open the modal on row 0 (line 1, right side)
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	m = press(m, tuitest.KeyPress('c'))
	require.NotNil(t, m.modal)

	m = press(m, tuitest.KeyPressString("ship it"))
	m = press(m, tuitest.KeyCtrl('s'))

	assert.Nil(t, m.modal)
	pending := m.session.All()
	require.Len(t, pending, 1)
	assert.Equal(t, "main.go", pending[0].Path)
	assert.Equal(t, 1, pending[0].Line)
	assert.Equal(t, "ship it", pending[0].Body)
}

func TestModel_CommentModalEscDiscards(t *testing.T) {
	m := NewModel(modelFixture())
	m.setSize(100, 30)

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	m = press(m, tuitest.KeyPress('c'))
	require.NotNil(t, m.modal)

	m = press(m, tuitest.KeyEsc())
	assert.Nil(t, m.modal)
	assert.Empty(t, m.session.All())
}

func TestModel_QuitKeys(t *testing.T) {
	m := NewModel(modelFixture())
	m.setSize(100, 30)

	_, cmd := m.Update(tuitest.KeyPress('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_ViewRendersStatusBar(t *testing.T) {
	m := NewModel(modelFixture())
	m.setSize(120, 30)

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "review #42")
	assert.Contains(t, out, "feature")
	assert.Contains(t, out, "main.go")
}

func TestModel_StagingMode(t *testing.T) {
	opts := Options{
		Mode: ModeStaging,
		Staging: []diff.ThreeWayFileDiff{{
			Path: "main.go",
			StagedHunks: []diff.Hunk{{
				Header: diff.HunkHeader{OldStart: 1, OldCount: 1, NewStart: 1, NewCount: 1},
				Pairs: []diff.LinePair{
					{LeftText: "x", RightText: "X", LeftType: diff.LineChange, RightType: diff.LineChange, LeftLineno: 1, RightLineno: 1},
				},
			}},
			UnstagedHunks: []diff.Hunk{},
			StatusStaged:  "M",
		}},
		Branch: "main",
	}
	m := NewModel(opts)
	m.setSize(140, 30)

	assert.Equal(t, "main.go", m.threePane.Path())

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "staging")
	assert.Contains(t, out, "WORKTREE")
}

func TestModel_ZeroSizeViewIsEmpty(t *testing.T) {
	m := NewModel(modelFixture())
	assert.Empty(t, m.View())
}
