package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/actionshrimp/gitlad/internal/core/diff"
	"github.com/actionshrimp/gitlad/internal/core/review"
	"github.com/actionshrimp/gitlad/internal/core/styles"
)

const linenoWidth = 4

// DiffPaneModel renders an aligned two-pane diff with review overlays. The
// cursor addresses buffer rows (1-based, matching the overlay positioner);
// overlay blocks render beneath their anchor rows and do not take cursor
// focus.
type DiffPaneModel struct {
	path    string
	aligned diff.AlignedDiff

	threads   []*review.Thread
	pending   []review.PendingComment
	plan      review.OverlayPlan
	positions map[int]*review.Thread
	format    review.BlockFormatter

	expandDefault bool            // threads start expanded instead of collapsed
	toggled       map[string]bool // per-thread override of the default

	cursor int // 0-based row index into aligned.LineMap
	offset int // scroll offset in visual lines
	width  int
	height int
}

// NewDiffPane creates an empty diff pane. format may be nil, in which case
// the plain-text block layout is used.
func NewDiffPane(format review.BlockFormatter) DiffPaneModel {
	if format == nil {
		format = review.FormatThreadBlock
	}
	return DiffPaneModel{
		toggled: make(map[string]bool),
		format:  format,
	}
}

// SetFile loads a file's aligned diff and its review state into the pane.
func (m *DiffPaneModel) SetFile(path string, aligned diff.AlignedDiff, threads []*review.Thread, pending []review.PendingComment) {
	m.path = path
	m.aligned = aligned
	m.threads = threads
	m.pending = pending
	m.cursor = 0
	m.offset = 0
	m.rebuildPlan()
}

// SetPending replaces the pending comments, keeping cursor position.
func (m *DiffPaneModel) SetPending(pending []review.PendingComment) {
	m.pending = pending
	m.rebuildPlan()
}

func (m *DiffPaneModel) rebuildPlan() {
	m.plan = review.BuildOverlayPlan(m.threads, m.pending, m.aligned.LineMap, m.format, m.isCollapsed)
	m.positions = review.PositionIndex(review.MapThreadsToLines(m.threads, m.aligned.LineMap))
}

func (m *DiffPaneModel) isCollapsed(threadID string) bool {
	expanded := m.expandDefault != m.toggled[threadID]
	return !expanded
}

// SetExpandDefault makes threads render expanded until collapsed with "v".
func (m *DiffPaneModel) SetExpandDefault(expand bool) {
	m.expandDefault = expand
	if m.aligned.LineMap != nil {
		m.rebuildPlan()
	}
}

// Update handles cursor movement, thread navigation, and expansion toggling.
func (m DiffPaneModel) Update(msg tea.Msg) (DiffPaneModel, tea.Cmd) {
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
	case "]":
		// handled by the two-key sequence in the root model
	case "v":
		if t, _ := review.ThreadAtCursor(m.positions, m.cursor+1); t != nil {
			m.toggled[t.ID] = !m.toggled[t.ID]
			m.rebuildPlan()
		}
	}

	m.scrollToCursor()
	return m, nil
}

// NextThread moves the cursor to the next thread anchor below it.
func (m *DiffPaneModel) NextThread() bool {
	next := review.NextThreadLine(m.positions, m.cursor+1)
	if next == 0 {
		return false
	}
	m.cursor = next - 1
	m.scrollToCursor()
	return true
}

// PrevThread moves the cursor to the previous thread anchor above it.
func (m *DiffPaneModel) PrevThread() bool {
	prev := review.PrevThreadLine(m.positions, m.cursor+1)
	if prev == 0 {
		return false
	}
	m.cursor = prev - 1
	m.scrollToCursor()
	return true
}

// ThreadAtCursor returns the thread the cursor is on or near, if any.
func (m DiffPaneModel) ThreadAtCursor() *review.Thread {
	t, _ := review.ThreadAtCursor(m.positions, m.cursor+1)
	return t
}

// CommentAnchor returns the anchor for a new comment at the cursor: the
// file path, source line number, and side. New lines anchor on the right;
// rows that only exist on the left anchor there.
func (m DiffPaneModel) CommentAnchor() (path string, line int, side diff.Side, ok bool) {
	if m.cursor < 0 || m.cursor >= len(m.aligned.LineMap) {
		return "", 0, diff.SideRight, false
	}
	info := m.aligned.LineMap[m.cursor]
	if info.RightLineno > 0 {
		return m.path, info.RightLineno, diff.SideRight, true
	}
	if info.LeftLineno > 0 {
		return m.path, info.LeftLineno, diff.SideLeft, true
	}
	return "", 0, diff.SideRight, false
}

// Path returns the file currently shown.
func (m DiffPaneModel) Path() string {
	return m.path
}

// contentHeight is the pane height available for diff lines.
func (m DiffPaneModel) contentHeight() int {
	if m.height < 1 {
		return 1
	}
	return m.height
}

// visualLines renders the full buffer: every aligned row as one visual
// line, with overlay blocks and filler interleaved after their anchor
// rows. rowStarts[i] is the visual index of row i.
func (m DiffPaneModel) visualLines() (lines []string, rowStarts []int) {
	paneWidth := (m.width - linenoWidth*2 - 3) / 2
	if paneWidth < 1 {
		paneWidth = 1
	}

	for i := range m.aligned.LineMap {
		rowStarts = append(rowStarts, len(lines))
		lines = append(lines, m.renderRow(i, paneWidth))

		lo, ok := m.plan.Lines[i+1]
		if !ok {
			continue
		}
		left, right := m.overlayColumns(lo, paneWidth)
		for j := 0; j < len(left) || j < len(right); j++ {
			var l, r string
			if j < len(left) {
				l = left[j]
			}
			if j < len(right) {
				r = right[j]
			}
			lines = append(lines, m.joinPanes(" ", "", l, "", r, paneWidth, false))
		}
	}
	return lines, rowStarts
}

// overlayColumns renders the overlay blocks of one anchor line into
// per-side line lists, already filler-balanced by the plan.
func (m DiffPaneModel) overlayColumns(lo *review.LineOverlays, paneWidth int) (left, right []string) {
	appendSide := func(side diff.Side, block []string) {
		if side == diff.SideLeft {
			left = append(left, block...)
		} else {
			right = append(right, block...)
		}
	}

	for _, t := range lo.Threads {
		block := m.format(t, m.isCollapsed(t.ID))
		styled := make([]string, len(block))
		style := styles.ThreadSummaryStyle
		if t.IsResolved {
			style = styles.ThreadResolvedStyle
		}
		for i, b := range block {
			styled[i] = style.Render(ansi.Truncate(b, paneWidth, "…"))
		}
		appendSide(t.Side, styled)
	}
	for _, p := range lo.Pending {
		text := "✎ " + review.FirstLine(p.Body)
		appendSide(p.Side, []string{styles.PendingStyle.Render(ansi.Truncate(text, paneWidth, "…"))})
	}
	for i := 0; i < lo.FillerLeft; i++ {
		left = append(left, styles.DiffFillerStyle.Render("·"))
	}
	for i := 0; i < lo.FillerRight; i++ {
		right = append(right, styles.DiffFillerStyle.Render("·"))
	}
	return left, right
}

// renderRow renders one aligned row as a two-pane visual line.
func (m DiffPaneModel) renderRow(i, paneWidth int) string {
	info := m.aligned.LineMap[i]

	leftText := styleFor(info.LeftType).Render(ansi.Truncate(m.aligned.LeftLines[i], paneWidth, "…"))
	rightText := styleFor(info.RightType).Render(ansi.Truncate(m.aligned.RightLines[i], paneWidth, "…"))

	if info.LeftType == diff.LineFiller {
		leftText = styles.DiffFillerStyle.Render("·")
	}
	if info.RightType == diff.LineFiller {
		rightText = styles.DiffFillerStyle.Render("·")
	}

	gutter := " "
	if info.IsHunkBoundary {
		gutter = styles.HunkBoundary.Render("─")
	}
	return m.joinPanes(gutter, lineno(info.LeftLineno), leftText, lineno(info.RightLineno), rightText, paneWidth, i == m.cursor)
}

// joinPanes pads both panes to equal width and joins them with a separator.
func (m DiffPaneModel) joinPanes(gutter, leftNo, leftText, rightNo, rightText string, paneWidth int, isCursor bool) string {
	left := padTo(leftNo, linenoWidth) + " " + padTo(leftText, paneWidth)
	right := padTo(rightNo, linenoWidth) + " " + padTo(rightText, paneWidth)
	sep := styles.TextMutedStyle.Render("│")

	line := gutter + left + sep + right
	if isCursor {
		line = styles.CursorLineStyle.Render(ansi.Strip(line))
	}
	return line
}

func lineno(n int) string {
	if n == 0 {
		return ""
	}
	return styles.LinenoStyle.Render(fmt.Sprintf("%*d", linenoWidth, n))
}

func padTo(s string, w int) string {
	gap := w - lipgloss.Width(s)
	if gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func styleFor(t diff.LineType) lipgloss.Style {
	switch t {
	case diff.LineAdd:
		return styles.DiffAddStyle
	case diff.LineDelete:
		return styles.DiffDeleteStyle
	case diff.LineChange:
		return styles.DiffChangeStyle
	case diff.LineFiller:
		return styles.DiffFillerStyle
	default:
		return styles.DiffContextStyle
	}
}

// scrollToCursor keeps the cursor row inside the visible window.
func (m *DiffPaneModel) scrollToCursor() {
	_, rowStarts := m.visualLines()
	if len(rowStarts) == 0 {
		return
	}
	pos := rowStarts[min(m.cursor, len(rowStarts)-1)]
	if pos < m.offset {
		m.offset = pos
	}
	if pos >= m.offset+m.contentHeight() {
		m.offset = pos - m.contentHeight() + 1
	}
}

// View renders the visible portion of the diff.
func (m DiffPaneModel) View() string {
	if len(m.aligned.LineMap) == 0 {
		return lipgloss.Place(m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			styles.TextMutedStyle.Render("No changes"))
	}

	lines, _ := m.visualLines()
	end := min(m.offset+m.contentHeight(), len(lines))
	visible := lines[m.offset:end]

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Render(strings.Join(visible, "\n"))
}

// SetSize updates the pane dimensions.
func (m *DiffPaneModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.scrollToCursor()
}
