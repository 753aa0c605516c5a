package review

import (
	"strings"

	"github.com/actionshrimp/gitlad/internal/core/diff"
)

// BlockFormatter renders one thread as overlay lines. The positioner only
// consumes the rendered height; visual content belongs to the renderer.
type BlockFormatter func(t *Thread, collapsed bool) []string

// LineOverlays is everything anchored at one buffer line, plus the filler
// each pane needs to stay level with the other.
type LineOverlays struct {
	Threads     []*Thread
	Pending     []PendingComment
	FillerLeft  int
	FillerRight int
}

// OverlayPlan maps buffer lines to their overlays. Derived per render, never
// persisted.
type OverlayPlan struct {
	Lines map[int]*LineOverlays
}

// pendingBlockHeight is the rendered height of a pending comment. Pending
// comments have no collapse concept and always render as one line.
const pendingBlockHeight = 1

// BuildOverlayPlan positions threads and pending comments on an aligned
// diff and computes per-side filler counts. A block anchored on one side
// contributes its height to that side only; the shorter side at each line
// receives filler so that both panes end up the same height. collapsed
// reports whether a thread is currently collapsed; a nil collapsed treats
// every thread as collapsed.
func BuildOverlayPlan(
	threads []*Thread,
	pending []PendingComment,
	lineMap []diff.AlignedLineInfo,
	format BlockFormatter,
	collapsed func(threadID string) bool,
) OverlayPlan {
	if collapsed == nil {
		collapsed = func(string) bool { return true }
	}

	plan := OverlayPlan{Lines: make(map[int]*LineOverlays)}

	for line, ts := range MapThreadsToLines(threads, lineMap) {
		plan.line(line).Threads = ts
	}
	for line, ps := range MapPendingToLines(pending, lineMap) {
		plan.line(line).Pending = append(plan.line(line).Pending, ps...)
	}

	for _, lo := range plan.Lines {
		var left, right int
		for _, t := range lo.Threads {
			h := len(format(t, collapsed(t.ID)))
			if t.Side == diff.SideLeft {
				left += h
			} else {
				right += h
			}
		}
		for _, p := range lo.Pending {
			if p.Side == diff.SideLeft {
				left += pendingBlockHeight
			} else {
				right += pendingBlockHeight
			}
		}
		if left < right {
			lo.FillerLeft = right - left
		} else if right < left {
			lo.FillerRight = left - right
		}
	}

	return plan
}

func (p OverlayPlan) line(n int) *LineOverlays {
	lo, ok := p.Lines[n]
	if !ok {
		lo = &LineOverlays{}
		p.Lines[n] = lo
	}
	return lo
}

// FormatThreadBlock is the canonical plain-text block layout: a collapsed
// thread is a single summary line; an expanded thread is an author/time
// header, each comment's body lines, a separator between comments, and a
// bottom border. Renderers may substitute richer formatters; heights follow
// the same shape.
func FormatThreadBlock(t *Thread, collapsed bool) []string {
	if collapsed {
		return []string{threadSummary(t)}
	}

	var lines []string
	for i, c := range t.Comments {
		if i > 0 {
			lines = append(lines, "  ───")
		}
		lines = append(lines, "  "+c.Author+" · "+c.CreatedAt.Format("2006-01-02 15:04"))
		lines = append(lines, splitBody(c.Body)...)
	}
	lines = append(lines, "  └──")
	return lines
}

func threadSummary(t *Thread) string {
	marker := "●"
	if t.IsResolved {
		marker = "✓"
	}
	summary := marker + " "
	if len(t.Comments) > 0 {
		summary += t.Comments[0].Author + ": " + FirstLine(t.Comments[0].Body)
	}
	return summary
}

// FirstLine returns the text before the first newline. Summaries and
// single-line listings use it to reduce a comment body to one line.
func FirstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func splitBody(body string) []string {
	raw := strings.Split(body, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = "  " + l
	}
	return lines
}
