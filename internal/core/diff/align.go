package diff

// Align flattens a file's hunks, in order, into two equal-length line arrays
// plus a line map. Filler sides contribute an empty string to their pane so
// the renderer can paint rows verbatim.
//
// A row is a hunk boundary when it is non-context and either starts its hunk
// or follows a context row. One hunk can contain several disjoint change
// regions (large context windows merge otherwise-separate hunks); each region
// gets its own boundary row.
func Align(fd FileDiff) AlignedDiff {
	var out AlignedDiff

	for hi, hunk := range fd.Hunks {
		prevContext := true
		for _, p := range hunk.Pairs {
			nonContext := p.LeftType != LineContext || p.RightType != LineContext

			out.LeftLines = append(out.LeftLines, p.LeftText)
			out.RightLines = append(out.RightLines, p.RightText)
			out.LineMap = append(out.LineMap, AlignedLineInfo{
				LeftType:       p.LeftType,
				RightType:      p.RightType,
				LeftLineno:     p.LeftLineno,
				RightLineno:    p.RightLineno,
				HunkIndex:      hi + 1,
				IsHunkBoundary: nonContext && prevContext,
			})

			prevContext = !nonContext
		}
	}

	return out
}
