package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/actionshrimp/gitlad/internal/core/styles"
)

// FileEntry is one row of the changed-file list.
type FileEntry struct {
	Path      string
	Status    string // A, M, D, R, C
	Additions int
	Deletions int
	Threads   int // review threads anchored in this file
}

// FileListModel displays a flat list of changed files with their stats.
type FileListModel struct {
	entries  []FileEntry
	selected int
	width    int
	height   int
	offset   int
}

// NewFileList creates a file list over the given entries.
func NewFileList(entries []FileEntry) FileListModel {
	return FileListModel{entries: entries}
}

// Update handles key messages for list navigation.
func (m FileListModel) Update(msg tea.Msg) (FileListModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "j", "down":
			if m.selected < len(m.entries)-1 {
				m.selected++
			}
		case "k", "up":
			if m.selected > 0 {
				m.selected--
			}
		case "g":
			m.selected = 0
		case "G":
			if len(m.entries) > 0 {
				m.selected = len(m.entries) - 1
			}
		}
		m.scrollToSelection()
	}
	return m, nil
}

// scrollToSelection keeps the selected entry inside the visible window.
func (m *FileListModel) scrollToSelection() {
	if m.height <= 0 {
		return
	}
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+m.height {
		m.offset = m.selected - m.height + 1
	}
}

// View renders the file list.
func (m FileListModel) View() string {
	if len(m.entries) == 0 {
		return styles.TextMutedStyle.Render("No files changed")
	}

	end := len(m.entries)
	if m.height > 0 && m.offset+m.height < end {
		end = m.offset + m.height
	}

	var lines []string
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderEntry(m.entries[i], i == m.selected))
	}

	content := strings.Join(lines, "\n")
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Render(content)
}

// renderEntry renders one file row: status letter, path, stats, thread count.
func (m FileListModel) renderEntry(e FileEntry, selected bool) string {
	status := statusStyle(e.Status).Render(e.Status)
	stats := styles.TextMutedStyle.Render(fmt.Sprintf("+%d -%d", e.Additions, e.Deletions))

	name := e.Path
	if selected {
		name = styles.TextPrimaryBoldStyle.Render(name)
	} else {
		name = styles.TextForegroundStyle.Render(name)
	}

	line := fmt.Sprintf("%s %s %s", status, name, stats)
	if e.Threads > 0 {
		line += " " + styles.ThreadSummaryStyle.Render(fmt.Sprintf("●%d", e.Threads))
	}
	return line
}

func statusStyle(status string) lipgloss.Style {
	switch status {
	case "A":
		return styles.DiffAddStyle
	case "D":
		return styles.DiffDeleteStyle
	default:
		return styles.DiffChangeStyle
	}
}

// Selected returns the currently selected entry and whether one exists.
func (m FileListModel) Selected() (FileEntry, bool) {
	if m.selected < 0 || m.selected >= len(m.entries) {
		return FileEntry{}, false
	}
	return m.entries[m.selected], true
}

// SelectedIndex returns the index of the selected entry.
func (m FileListModel) SelectedIndex() int {
	return m.selected
}

// Len returns the number of entries.
func (m FileListModel) Len() int {
	return len(m.entries)
}

// SetEntries replaces the entries, clamping the selection.
func (m *FileListModel) SetEntries(entries []FileEntry) {
	m.entries = entries
	if m.selected >= len(entries) {
		m.selected = len(entries) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.scrollToSelection()
}

// SetSize updates the dimensions of the list.
func (m *FileListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.scrollToSelection()
}
