package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/actionshrimp/gitlad/internal/core/review"
)

// MarkdownFormatter renders expanded thread bodies through glamour.
// Collapsed threads and failures fall back to the plain-text block layout,
// so overlay heights stay consistent with what the positioner measured.
type MarkdownFormatter struct {
	renderer *glamour.TermRenderer
}

// NewMarkdownFormatter creates a formatter wrapping bodies at width.
func NewMarkdownFormatter(width int) *MarkdownFormatter {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		r = nil
	}
	return &MarkdownFormatter{renderer: r}
}

// Format implements review.BlockFormatter.
func (f *MarkdownFormatter) Format(t *review.Thread, collapsed bool) []string {
	if collapsed || f.renderer == nil {
		return review.FormatThreadBlock(t, collapsed)
	}

	rendered := *t
	rendered.Comments = make([]review.Comment, len(t.Comments))
	for i, c := range t.Comments {
		body := c.Body
		if out, err := f.renderer.Render(body); err == nil {
			body = strings.Trim(out, "\n")
		}
		rendered.Comments[i] = review.Comment{
			Author:    c.Author,
			Body:      body,
			CreatedAt: c.CreatedAt,
		}
	}
	return review.FormatThreadBlock(&rendered, false)
}
