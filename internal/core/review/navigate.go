package review

// threadCursorProximity is how many lines below an anchor the cursor may sit
// and still resolve to that anchor's thread. An expanded thread renders as
// virtual lines below its anchor, so a cursor inside that region should pick
// up the thread; a cursor far below should not.
const threadCursorProximity = 3

// NextThreadLine returns the smallest anchored buffer line strictly greater
// than cursor, or 0 when there is none.
func NextThreadLine(positions map[int]*Thread, cursor int) int {
	best := 0
	for line := range positions {
		if line > cursor && (best == 0 || line < best) {
			best = line
		}
	}
	return best
}

// PrevThreadLine returns the largest anchored buffer line strictly less than
// cursor, or 0 when there is none.
func PrevThreadLine(positions map[int]*Thread, cursor int) int {
	best := 0
	for line := range positions {
		if line < cursor && line > best {
			best = line
		}
	}
	return best
}

// ThreadAtCursor resolves the thread under the cursor: an exact anchor hit,
// or the nearest anchor at most threadCursorProximity lines above the cursor.
// Returns (nil, 0) when nothing is within range.
func ThreadAtCursor(positions map[int]*Thread, cursor int) (*Thread, int) {
	if t, ok := positions[cursor]; ok {
		return t, cursor
	}
	for line := cursor - 1; line >= cursor-threadCursorProximity && line > 0; line-- {
		if t, ok := positions[line]; ok {
			return t, line
		}
	}
	return nil, 0
}
