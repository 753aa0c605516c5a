package review

import (
	"github.com/actionshrimp/gitlad/internal/core/diff"
)

// MapThreadsToLines maps threads onto 1-based buffer lines of an aligned
// diff: the row whose left (or right, per the thread's side) lineno equals
// the thread's anchor line. Threads with no anchor, and threads whose line is
// not present in the diff window, are silently dropped. Threads resolving to
// the same buffer line accumulate in input order.
func MapThreadsToLines(threads []*Thread, lineMap []diff.AlignedLineInfo) map[int][]*Thread {
	out := make(map[int][]*Thread)
	for _, t := range threads {
		if t.Line == 0 {
			continue
		}
		if row, ok := findAnchorRow(lineMap, t.Line, t.Side); ok {
			out[row] = append(out[row], t)
		}
	}
	return out
}

// MapPendingToLines maps pending comments onto buffer lines using the same
// anchor rule as MapThreadsToLines.
func MapPendingToLines(pending []PendingComment, lineMap []diff.AlignedLineInfo) map[int][]PendingComment {
	out := make(map[int][]PendingComment)
	for _, p := range pending {
		if p.Line == 0 {
			continue
		}
		if row, ok := findAnchorRow(lineMap, p.Line, p.Side); ok {
			out[row] = append(out[row], p)
		}
	}
	return out
}

// findAnchorRow returns the 1-based row whose lineno on the given side equals
// line.
func findAnchorRow(lineMap []diff.AlignedLineInfo, line int, side diff.Side) (int, bool) {
	for i, info := range lineMap {
		lineno := info.RightLineno
		if side == diff.SideLeft {
			lineno = info.LeftLineno
		}
		if lineno == line {
			return i + 1, true
		}
	}
	return 0, false
}

// GroupThreadsByPath partitions threads by file path, preserving input order
// within each group.
func GroupThreadsByPath(threads []*Thread) map[string][]*Thread {
	out := make(map[string][]*Thread)
	for _, t := range threads {
		out[t.Path] = append(out[t.Path], t)
	}
	return out
}

// PositionIndex reduces a grouped line map to one representative thread per
// buffer line, for navigation queries. The first thread anchored at a line
// represents it.
func PositionIndex(byLine map[int][]*Thread) map[int]*Thread {
	out := make(map[int]*Thread, len(byLine))
	for line, threads := range byLine {
		if len(threads) > 0 {
			out[line] = threads[0]
		}
	}
	return out
}
