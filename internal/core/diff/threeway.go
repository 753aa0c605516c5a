package diff

// The three-pane aligner reconciles two diffs that share the INDEX snapshot
// without re-diffing. INDEX is the canonical coordinate: every output row has
// a definite mid value, and a pane not touched by its own diff at that row
// mirrors mid. The merge is a two-pointer walk over both pair streams sorted
// by INDEX position, so ordering is a structural property of the loop rather
// than a side effect of repeated insertion.

// paneSource records where a pane's value came from while a row is being
// built. It is collapsed away before the grid is handed to the renderer.
type paneSource int

const (
	sourceOwn paneSource = iota
	sourceMirrored
)

// threeWayRow is the construction-time form of one output row. newHunk is
// true when this row is the first to consume a hunk not seen in any earlier
// row; boundary detection resets its context tracker there.
type threeWayRow struct {
	left, mid, right  string
	leftType          LineType
	midType           LineType
	rightType         LineType
	leftNo, midNo     int
	rightNo           int
	leftSrc, rightSrc paneSource
	hunkIndex         int
	newHunk           bool
}

// indexedPair is a hunk pair annotated with its position in INDEX space.
// idx is the pair's own INDEX lineno, 0 when the index side is filler (a
// staged deletion or an unstaged addition); such rows attach after the
// stream's most recent INDEX line, held in anchor.
type indexedPair struct {
	pair    LinePair
	hunkOrd int
	idx     int
	anchor  int
}

// sortKey orders pairs in INDEX space: a row owning index line n sorts as
// (n, 0); an attachment anchored at n sorts as (n, 1), i.e. just after it.
func (p indexedPair) sortKey() (int, int) {
	if p.idx > 0 {
		return p.idx, 0
	}
	return p.anchor, 1
}

// flattenIndexed flattens hunks into an INDEX-annotated pair stream.
// indexOnRight is true for staged hunks (HEAD→INDEX: index is the new side)
// and false for unstaged hunks (INDEX→WORKTREE: index is the old side).
func flattenIndexed(hunks []Hunk, indexOnRight bool) []indexedPair {
	var out []indexedPair
	for hi, h := range hunks {
		// A zero-count @@ range names the line before the insertion point,
		// not the first line of the range.
		anchor := h.Header.OldStart - 1
		if h.Header.OldCount == 0 {
			anchor = h.Header.OldStart
		}
		if indexOnRight {
			anchor = h.Header.NewStart - 1
			if h.Header.NewCount == 0 {
				anchor = h.Header.NewStart
			}
		}
		for _, p := range h.Pairs {
			idx := p.LeftLineno
			if indexOnRight {
				idx = p.RightLineno
			}
			if idx > 0 {
				anchor = idx
			}
			out = append(out, indexedPair{pair: p, hunkOrd: hi, idx: idx, anchor: anchor})
		}
	}
	return out
}

// hunkIndexer assigns one global 1-based hunk index per contributing hunk,
// in the order hunks are first encountered during the merged walk.
type hunkIndexer struct {
	next   int
	staged map[int]int
	unst   map[int]int
}

func newHunkIndexer() *hunkIndexer {
	return &hunkIndexer{staged: make(map[int]int), unst: make(map[int]int)}
}

// id returns the hunk's global index and whether this call first assigned it.
func (x *hunkIndexer) id(staged bool, hunkOrd int) (int, bool) {
	m := x.unst
	if staged {
		m = x.staged
	}
	if id, ok := m[hunkOrd]; ok {
		return id, false
	}
	x.next++
	m[hunkOrd] = x.next
	return x.next, true
}

// AlignThreeWay merges a file's staged and unstaged hunks into one
// HEAD/INDEX/WORKTREE grid. Rows touched by only one diff mirror the INDEX
// pane on the untouched side (same text, type, and lineno); rows where both
// diffs own the same INDEX line take all three values independently.
func AlignThreeWay(f ThreeWayFileDiff) AlignedThreeWayDiff {
	s := flattenIndexed(f.StagedHunks, true)
	u := flattenIndexed(f.UnstagedHunks, false)

	idx := newHunkIndexer()
	var rows []threeWayRow

	si, ui := 0, 0
	for si < len(s) || ui < len(u) {
		switch {
		case ui >= len(u):
			id, fresh := idx.id(true, s[si].hunkOrd)
			rows = append(rows, stagedRow(s[si], id, fresh))
			si++
		case si >= len(s):
			id, fresh := idx.id(false, u[ui].hunkOrd)
			rows = append(rows, unstagedRow(u[ui], id, fresh))
			ui++
		default:
			sk1, sk2 := s[si].sortKey()
			uk1, uk2 := u[ui].sortKey()
			switch {
			case sk1 == uk1 && sk2 == 0 && uk2 == 0:
				// Both diffs own this INDEX line. Both hunks count as
				// encountered here; the row reports the staged one.
				id, sfresh := idx.id(true, s[si].hunkOrd)
				_, ufresh := idx.id(false, u[ui].hunkOrd)
				rows = append(rows, overlapRow(s[si], u[ui], id, sfresh || ufresh))
				si++
				ui++
			case sk1 < uk1 || (sk1 == uk1 && sk2 <= uk2):
				// Tie between two attachments at the same anchor emits the
				// staged (HEAD-deletion) row first, keeping the delete-then-add
				// ordering of the two-pane aligner.
				id, fresh := idx.id(true, s[si].hunkOrd)
				rows = append(rows, stagedRow(s[si], id, fresh))
				si++
			default:
				id, fresh := idx.id(false, u[ui].hunkOrd)
				rows = append(rows, unstagedRow(u[ui], id, fresh))
				ui++
			}
		}
	}

	return collapseRows(rows)
}

// stagedRow builds a row touched only by the HEAD→INDEX diff: left and mid
// take the hunk's own sides, right mirrors mid.
func stagedRow(p indexedPair, hunkIndex int, newHunk bool) threeWayRow {
	return threeWayRow{
		left: p.pair.LeftText, leftType: p.pair.LeftType, leftNo: p.pair.LeftLineno,
		mid: p.pair.RightText, midType: p.pair.RightType, midNo: p.pair.RightLineno,
		right: p.pair.RightText, rightType: p.pair.RightType, rightNo: p.pair.RightLineno,
		leftSrc: sourceOwn, rightSrc: sourceMirrored,
		hunkIndex: hunkIndex, newHunk: newHunk,
	}
}

// unstagedRow builds a row touched only by the INDEX→WORKTREE diff: mid and
// right take the hunk's own sides, left mirrors mid.
func unstagedRow(p indexedPair, hunkIndex int, newHunk bool) threeWayRow {
	return threeWayRow{
		left: p.pair.LeftText, leftType: p.pair.LeftType, leftNo: p.pair.LeftLineno,
		mid: p.pair.LeftText, midType: p.pair.LeftType, midNo: p.pair.LeftLineno,
		right: p.pair.RightText, rightType: p.pair.RightType, rightNo: p.pair.RightLineno,
		leftSrc: sourceMirrored, rightSrc: sourceOwn,
		hunkIndex: hunkIndex, newHunk: newHunk,
	}
}

// overlapRow builds a row where both diffs own the same INDEX line: every
// pane takes its own value. The INDEX text is read from the staged pair; both
// pairs carry the same snapshot there. Its type prefers whichever diff marks
// the line as involved in a change.
func overlapRow(sp, up indexedPair, hunkIndex int, newHunk bool) threeWayRow {
	midType := sp.pair.RightType
	if midType == LineContext {
		midType = up.pair.LeftType
	}
	return threeWayRow{
		left: sp.pair.LeftText, leftType: sp.pair.LeftType, leftNo: sp.pair.LeftLineno,
		mid: sp.pair.RightText, midType: midType, midNo: sp.pair.RightLineno,
		right: up.pair.RightText, rightType: up.pair.RightType, rightNo: up.pair.RightLineno,
		leftSrc: sourceOwn, rightSrc: sourceOwn,
		hunkIndex: hunkIndex, newHunk: newHunk,
	}
}

// collapseRows strips the construction-time source tags and computes hunk
// boundaries over the merged rows: a row is a boundary when any pane is
// non-context and the previous merged row was all context. The rule runs over
// the merged sequence, not per pane, since interleaved hunks share rows — but
// the tracker resets where a row first consumes a new hunk, so a hunk's first
// change is a boundary even when the previous hunk ended mid-change.
func collapseRows(rows []threeWayRow) AlignedThreeWayDiff {
	var out AlignedThreeWayDiff

	prevContext := true
	for _, r := range rows {
		if r.newHunk {
			prevContext = true
		}
		nonContext := r.leftType != LineContext || r.midType != LineContext || r.rightType != LineContext

		out.LeftLines = append(out.LeftLines, r.left)
		out.MidLines = append(out.MidLines, r.mid)
		out.RightLines = append(out.RightLines, r.right)
		out.LineMap = append(out.LineMap, ThreeWayLineInfo{
			LeftType:       r.leftType,
			MidType:        r.midType,
			RightType:      r.rightType,
			LeftLineno:     r.leftNo,
			MidLineno:      r.midNo,
			RightLineno:    r.rightNo,
			HunkIndex:      r.hunkIndex,
			IsHunkBoundary: nonContext && prevContext,
		})

		prevContext = !nonContext
	}

	return out
}
