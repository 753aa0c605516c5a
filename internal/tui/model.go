// Package tui implements the terminal interface: a changed-file list, the
// side-by-side and staging diff panes, review overlays, and the comment
// modal.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/actionshrimp/gitlad/internal/core/diff"
	"github.com/actionshrimp/gitlad/internal/core/logging"
	"github.com/actionshrimp/gitlad/internal/core/review"
	"github.com/actionshrimp/gitlad/internal/core/styles"
)

// ViewMode selects which diff surface the right pane shows.
type ViewMode int

const (
	// ModeReview shows a two-pane diff with review overlays.
	ModeReview ViewMode = iota
	// ModeStaging shows the HEAD/INDEX/WORKTREE three-pane grid.
	ModeStaging
)

// FocusedPanel represents which panel has keyboard focus.
type FocusedPanel int

const (
	FocusFileList FocusedPanel = iota
	FocusDiff
)

// Model is the root TUI model.
type Model struct {
	mode    ViewMode
	focused FocusedPanel

	fileList  FileListModel
	diffPane  DiffPaneModel
	threePane ThreePaneModel
	modal     *CommentModal

	files          []diff.FileDiff
	aligned        map[string]diff.AlignedDiff
	staging        []diff.ThreeWayFileDiff
	stagingAligned map[string]diff.AlignedThreeWayDiff
	threadsByPath  map[string][]*review.Thread
	session        *review.Session

	pr     int
	branch string

	// two-key sequences: "]c" / "[c"
	bracket string

	statusMsg string
	width     int
	height    int
}

// Options carries everything the model needs at construction.
type Options struct {
	Mode    ViewMode
	Files   []diff.FileDiff
	Staging []diff.ThreeWayFileDiff
	Threads []*review.Thread
	Session *review.Session
	PR      int
	Branch  string
	// Formatter renders thread overlay blocks; nil uses the plain layout.
	Formatter review.BlockFormatter
	// ExpandThreads starts every thread expanded instead of collapsed.
	ExpandThreads bool
}

// NewModel creates the root model.
func NewModel(opts Options) Model {
	byPath := review.GroupThreadsByPath(opts.Threads)

	session := opts.Session
	if session == nil {
		session = review.NewSession()
	}

	m := Model{
		mode:           opts.Mode,
		focused:        FocusFileList,
		diffPane:       NewDiffPane(opts.Formatter),
		threePane:      NewThreePane(),
		files:          opts.Files,
		aligned:        make(map[string]diff.AlignedDiff),
		staging:        opts.Staging,
		stagingAligned: make(map[string]diff.AlignedThreeWayDiff),
		threadsByPath:  byPath,
		session:        session,
		pr:             opts.PR,
		branch:         opts.Branch,
	}

	m.diffPane.SetExpandDefault(opts.ExpandThreads)
	m.fileList = NewFileList(m.buildEntries())
	m.syncSelection()
	return m
}

// buildEntries flattens the current mode's files into list entries.
func (m *Model) buildEntries() []FileEntry {
	var entries []FileEntry
	if m.mode == ModeStaging {
		for _, f := range m.staging {
			status := f.StatusStaged
			if status == "" {
				status = f.StatusUnstaged
			}
			entries = append(entries, FileEntry{
				Path:      f.Path,
				Status:    status,
				Additions: f.Additions,
				Deletions: f.Deletions,
			})
		}
		return entries
	}
	for _, f := range m.files {
		entries = append(entries, FileEntry{
			Path:      f.Path(),
			Status:    f.Status,
			Additions: f.Additions,
			Deletions: f.Deletions,
			Threads:   len(m.threadsByPath[f.Path()]),
		})
	}
	return entries
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// modal captures all input while open
	if m.modal != nil {
		modal, cmd := m.modal.Update(msg)
		m.modal = &modal
		if modal.Cancelled() {
			m.modal = nil
			return m, nil
		}
		if modal.Submitted() {
			p := modal.Pending()
			m.session.Add(p)
			m.diffPane.SetPending(m.session.ForPath(p.Path))
			m.modal = nil
			m.statusMsg = fmt.Sprintf("comment noted on %s:%d", p.Path, p.Line)
			logger := logging.Component("tui")
			logger.Debug().Str("path", p.Path).Int("line", p.Line).Msg("pending comment added")
		}
		return m, cmd
	}

	key := msg.String()
	m.statusMsg = ""

	// second half of a "]c" / "[c" sequence
	if m.bracket != "" {
		dir := m.bracket
		m.bracket = ""
		if key == "c" && m.mode == ModeReview {
			moved := false
			if dir == "]" {
				moved = m.diffPane.NextThread()
			} else {
				moved = m.diffPane.PrevThread()
			}
			if moved {
				m.focused = FocusDiff
			} else {
				m.statusMsg = "no more threads"
			}
			return m, nil
		}
		// fall through: the bracket was not a prefix after all
	}

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		if m.focused == FocusFileList {
			m.focused = FocusDiff
		} else {
			m.focused = FocusFileList
		}
		return m, nil

	case "]", "[":
		m.bracket = key
		return m, nil

	case "c":
		if m.mode == ModeReview && m.focused == FocusDiff {
			if path, line, side, ok := m.diffPane.CommentAnchor(); ok {
				modal := NewCommentModal(path, line, side, m.width, m.height)
				m.modal = &modal
			}
		}
		return m, nil

	case "y":
		if m.mode == ModeReview {
			m.yankThread()
		}
		return m, nil
	}

	// route to focused panel
	var cmd tea.Cmd
	switch m.focused {
	case FocusFileList:
		m.fileList, cmd = m.fileList.Update(msg)
		switch key {
		case "j", "k", "up", "down", "g", "G", "enter":
			m.syncSelection()
		}
	case FocusDiff:
		if m.mode == ModeStaging {
			m.threePane, cmd = m.threePane.Update(msg)
		} else {
			m.diffPane, cmd = m.diffPane.Update(msg)
		}
	}
	return m, cmd
}

// syncSelection loads the selected file into the active diff pane,
// aligning it on first visit.
func (m *Model) syncSelection() {
	entry, ok := m.fileList.Selected()
	if !ok {
		return
	}

	if m.mode == ModeStaging {
		if m.threePane.Path() == entry.Path {
			return
		}
		ad, ok := m.stagingAligned[entry.Path]
		if !ok {
			for _, f := range m.staging {
				if f.Path == entry.Path {
					ad = diff.AlignThreeWay(f)
					break
				}
			}
			m.stagingAligned[entry.Path] = ad
		}
		m.threePane.SetFile(entry.Path, ad)
		return
	}

	if m.diffPane.Path() == entry.Path {
		return
	}
	ad, ok := m.aligned[entry.Path]
	if !ok {
		for _, f := range m.files {
			if f.Path() == entry.Path {
				ad = diff.Align(f)
				break
			}
		}
		m.aligned[entry.Path] = ad
	}
	m.diffPane.SetFile(entry.Path, ad, m.threadsByPath[entry.Path], m.session.ForPath(entry.Path))
}

// yankThread copies the focused thread's conversation to the clipboard.
func (m *Model) yankThread() {
	t := m.diffPane.ThreadAtCursor()
	if t == nil {
		m.statusMsg = "no thread under cursor"
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:%d\n", t.Path, t.Line)
	for _, c := range t.Comments {
		fmt.Fprintf(&sb, "%s: %s\n", c.Author, c.Body)
	}

	if err := clipboard.WriteAll(sb.String()); err != nil {
		m.statusMsg = "clipboard unavailable"
		return
	}
	m.statusMsg = "thread copied"
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.modal != nil {
		return lipgloss.Place(m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.modal.View())
	}

	listWidth := m.width * 30 / 100
	diffWidth := m.width - listWidth - 1
	panelHeight := m.height - 1

	var diffView string
	if m.mode == ModeStaging {
		diffView = m.threePane.View()
	} else {
		diffView = m.diffPane.View()
	}

	separator := lipgloss.NewStyle().
		Width(1).
		Height(panelHeight).
		Render(styles.TextMutedStyle.Render("│"))

	listStyle := lipgloss.NewStyle().Width(listWidth).Height(panelHeight)
	diffStyle := lipgloss.NewStyle().Width(diffWidth).Height(panelHeight)

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		listStyle.Render(m.fileList.View()),
		separator,
		diffStyle.Render(diffView),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderStatusBar())
}

// renderStatusBar renders the bottom bar: mode and branch on the left,
// pending count and help on the right.
func (m Model) renderStatusBar() string {
	var mode string
	switch m.mode {
	case ModeStaging:
		mode = "staging"
	default:
		if m.pr > 0 {
			mode = fmt.Sprintf("review #%d", m.pr)
		} else {
			mode = "review"
		}
	}

	left := styles.TextPrimaryBoldStyle.Render(mode)
	if m.branch != "" {
		left += " " + styles.TextMutedStyle.Render(m.branch)
	}
	if m.statusMsg != "" {
		left += "  " + styles.TextForegroundStyle.Render(m.statusMsg)
	}

	help := "j/k move • tab panel • ]c/[c threads • c comment • v expand • y yank • q quit"
	if m.mode == ModeStaging {
		help = "j/k move • tab panel • q quit"
	}
	if pending := len(m.session.All()); pending > 0 {
		help = fmt.Sprintf("%d pending • %s", pending, help)
	}
	right := styles.TextMutedStyle.Render(help)

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if spacing < 0 {
		spacing = 0
	}

	return styles.StatusBarStyle.
		Width(m.width).
		Render(left + strings.Repeat(" ", spacing) + right)
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height

	listWidth := width * 30 / 100
	diffWidth := width - listWidth - 1
	panelHeight := height - 1

	m.fileList.SetSize(listWidth, panelHeight)
	m.diffPane.SetSize(diffWidth, panelHeight)
	m.threePane.SetSize(diffWidth, panelHeight)
}
