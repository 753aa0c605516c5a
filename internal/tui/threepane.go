package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/actionshrimp/gitlad/internal/core/diff"
	"github.com/actionshrimp/gitlad/internal/core/styles"
)

// ThreePaneModel renders a HEAD/INDEX/WORKTREE aligned grid. Review
// overlays do not apply here: staging state is local and has no threads.
type ThreePaneModel struct {
	path    string
	aligned diff.AlignedThreeWayDiff

	cursor int
	offset int
	width  int
	height int
}

// NewThreePane creates an empty three-pane view.
func NewThreePane() ThreePaneModel {
	return ThreePaneModel{}
}

// SetFile loads a file's three-way aligned diff.
func (m *ThreePaneModel) SetFile(path string, aligned diff.AlignedThreeWayDiff) {
	m.path = path
	m.aligned = aligned
	m.cursor = 0
	m.offset = 0
}

// Path returns the file currently shown.
func (m ThreePaneModel) Path() string {
	return m.path
}

// Update handles cursor movement.
func (m ThreePaneModel) Update(msg tea.Msg) (ThreePaneModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	maxRow := len(m.aligned.LineMap) - 1
	if maxRow < 0 {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		if m.cursor < maxRow {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "ctrl+d":
		m.cursor = min(m.cursor+m.contentHeight()/2, maxRow)
	case "ctrl+u":
		m.cursor = max(m.cursor-m.contentHeight()/2, 0)
	case "g":
		m.cursor = 0
	case "G":
		m.cursor = maxRow
	}

	m.scrollToCursor()
	return m, nil
}

func (m ThreePaneModel) contentHeight() int {
	// one line reserved for the pane titles
	if m.height < 2 {
		return 1
	}
	return m.height - 1
}

func (m *ThreePaneModel) scrollToCursor() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.contentHeight() {
		m.offset = m.cursor - m.contentHeight() + 1
	}
}

// View renders the three panes with a title row.
func (m ThreePaneModel) View() string {
	if len(m.aligned.LineMap) == 0 {
		return lipgloss.Place(m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			styles.TextMutedStyle.Render("No staged or unstaged changes"))
	}

	paneWidth := (m.width - linenoWidth*3 - 5) / 3
	if paneWidth < 1 {
		paneWidth = 1
	}

	lines := []string{m.renderTitles(paneWidth)}
	end := min(m.offset+m.contentHeight(), len(m.aligned.LineMap))
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(i, paneWidth))
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Render(strings.Join(lines, "\n"))
}

func (m ThreePaneModel) renderTitles(paneWidth int) string {
	cell := func(s string) string {
		return padTo(styles.TextPrimaryBoldStyle.Render(s), linenoWidth+1+paneWidth)
	}
	sep := styles.TextMutedStyle.Render("│")
	return " " + cell("HEAD") + sep + cell("INDEX") + sep + cell("WORKTREE")
}

func (m ThreePaneModel) renderRow(i, paneWidth int) string {
	info := m.aligned.LineMap[i]

	cell := func(text string, t diff.LineType, no int) string {
		if t == diff.LineFiller {
			return padTo(lineno(no), linenoWidth) + " " + padTo(styles.DiffFillerStyle.Render("·"), paneWidth)
		}
		styled := styleFor(t).Render(ansi.Truncate(text, paneWidth, "…"))
		return padTo(lineno(no), linenoWidth) + " " + padTo(styled, paneWidth)
	}

	sep := styles.TextMutedStyle.Render("│")
	gutter := " "
	if info.IsHunkBoundary {
		gutter = styles.HunkBoundary.Render("─")
	}

	line := gutter +
		cell(m.aligned.LeftLines[i], info.LeftType, info.LeftLineno) + sep +
		cell(m.aligned.MidLines[i], info.MidType, info.MidLineno) + sep +
		cell(m.aligned.RightLines[i], info.RightType, info.RightLineno)

	if i == m.cursor {
		line = styles.CursorLineStyle.Render(ansi.Strip(line))
	}
	return line
}

// SetSize updates the pane dimensions.
func (m *ThreePaneModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.scrollToCursor()
}
