package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actionshrimp/gitlad/pkg/tuitest"
)

func testEntries() []FileEntry {
	return []FileEntry{
		{Path: "main.go", Status: "M", Additions: 3, Deletions: 1, Threads: 2},
		{Path: "internal/app/app.go", Status: "A", Additions: 40, Deletions: 0},
		{Path: "old.go", Status: "D", Additions: 0, Deletions: 12},
	}
}

func TestFileList_Navigation(t *testing.T) {
	m := NewFileList(testEntries())
	m.SetSize(40, 10)

	assert.Equal(t, 0, m.SelectedIndex())

	m, _ = m.Update(tuitest.KeyPress('j'))
	assert.Equal(t, 1, m.SelectedIndex())

	m, _ = m.Update(tuitest.KeyPress('G'))
	assert.Equal(t, 2, m.SelectedIndex())

	// clamped at bottom
	m, _ = m.Update(tuitest.KeyPress('j'))
	assert.Equal(t, 2, m.SelectedIndex())

	m, _ = m.Update(tuitest.KeyPress('g'))
	assert.Equal(t, 0, m.SelectedIndex())

	m, _ = m.Update(tuitest.KeyPress('k'))
	assert.Equal(t, 0, m.SelectedIndex())
}

func TestFileList_Selected(t *testing.T) {
	m := NewFileList(testEntries())

	e, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "main.go", e.Path)

	empty := NewFileList(nil)
	_, ok = empty.Selected()
	assert.False(t, ok)
}

func TestFileList_View(t *testing.T) {
	m := NewFileList(testEntries())
	m.SetSize(50, 10)

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "main.go")
	assert.Contains(t, out, "+3 -1")
	assert.Contains(t, out, "●2", "thread count marker")
	assert.Contains(t, out, "internal/app/app.go")
}

func TestFileList_EmptyView(t *testing.T) {
	m := NewFileList(nil)
	assert.Contains(t, tuitest.StripANSI(m.View()), "No files changed")
}

func TestFileList_ScrollKeepsSelectionVisible(t *testing.T) {
	entries := make([]FileEntry, 20)
	for i := range entries {
		entries[i] = FileEntry{Path: string(rune('a'+i)) + ".go", Status: "M"}
	}
	m := NewFileList(entries)
	m.SetSize(30, 5)

	m, _ = m.Update(tuitest.KeyPress('G'))
	assert.Equal(t, 19, m.SelectedIndex())
	assert.Equal(t, 15, m.offset)

	m, _ = m.Update(tuitest.KeyPress('g'))
	assert.Equal(t, 0, m.offset)
}

func TestFileList_SetEntriesClampsSelection(t *testing.T) {
	m := NewFileList(testEntries())
	m, _ = m.Update(tuitest.KeyPress('G'))

	m.SetEntries(testEntries()[:1])
	assert.Equal(t, 0, m.SelectedIndex())
}
