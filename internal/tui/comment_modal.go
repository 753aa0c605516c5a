package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/actionshrimp/gitlad/internal/core/diff"
	"github.com/actionshrimp/gitlad/internal/core/review"
	"github.com/actionshrimp/gitlad/internal/core/styles"
)

// CommentModal handles comment entry for a diff line.
type CommentModal struct {
	textarea  textarea.Model
	path      string
	line      int
	side      diff.Side
	width     int
	height    int
	submitted bool
	cancelled bool
}

// NewCommentModal creates a comment modal anchored at the given line.
func NewCommentModal(path string, line int, side diff.Side, width, height int) CommentModal {
	ta := textarea.New()
	ta.Placeholder = "Leave a comment..."
	ta.Focus()
	ta.SetWidth(width - 10)
	ta.SetHeight(5)

	return CommentModal{
		textarea: ta,
		path:     path,
		line:     line,
		side:     side,
		width:    width,
		height:   height,
	}
}

// Update handles messages.
func (m CommentModal) Update(msg tea.Msg) (CommentModal, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+s":
			if strings.TrimSpace(m.textarea.Value()) != "" {
				m.submitted = true
				return m, nil
			}
		case "esc":
			m.cancelled = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// View renders the modal.
func (m CommentModal) View() string {
	anchor := fmt.Sprintf("%s:%d", m.path, m.line)
	if m.side == diff.SideLeft {
		anchor += " (old)"
	}

	content := strings.Join([]string{
		styles.ModalTitleStyle.Render("Add Review Comment"),
		styles.TextMutedStyle.Render(anchor),
		m.textarea.View(),
		styles.ModalHelpStyle.Render("ctrl+s: save • esc: cancel"),
	}, "\n")

	return styles.ModalStyle.Render(content)
}

// Submitted returns true if the comment was submitted.
func (m CommentModal) Submitted() bool {
	return m.submitted
}

// Cancelled returns true if the modal was cancelled.
func (m CommentModal) Cancelled() bool {
	return m.cancelled
}

// Pending returns the entered comment as a pending comment.
func (m CommentModal) Pending() review.PendingComment {
	return review.PendingComment{
		Path: m.path,
		Line: m.line,
		Side: m.side,
		Body: m.textarea.Value(),
	}
}
