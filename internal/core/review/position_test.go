package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actionshrimp/gitlad/internal/core/diff"
)

// lineMapFixture builds a window of context rows with matching linenos on
// both sides, starting at startLine.
func lineMapFixture(startLine, n int) []diff.AlignedLineInfo {
	out := make([]diff.AlignedLineInfo, n)
	for i := range out {
		out[i] = diff.AlignedLineInfo{
			LeftType:    diff.LineContext,
			RightType:   diff.LineContext,
			LeftLineno:  startLine + i,
			RightLineno: startLine + i,
			HunkIndex:   1,
		}
	}
	return out
}

func TestMapThreadsToLines_RightSide(t *testing.T) {
	lineMap := lineMapFixture(3, 5) // right linenos 3..7
	th := &Thread{ID: "t1", Path: "a.go", Line: 5, Side: diff.SideRight}

	out := MapThreadsToLines([]*Thread{th}, lineMap)

	require.Len(t, out, 1)
	// Lineno 5 sits on the third row, buffer line 3.
	assert.Same(t, th, out[3][0])
}

func TestMapThreadsToLines_LeftSide(t *testing.T) {
	lineMap := []diff.AlignedLineInfo{
		{LeftType: diff.LineDelete, RightType: diff.LineFiller, LeftLineno: 10},
		{LeftType: diff.LineFiller, RightType: diff.LineAdd, RightLineno: 10},
	}
	th := &Thread{ID: "t1", Line: 10, Side: diff.SideLeft}

	out := MapThreadsToLines([]*Thread{th}, lineMap)

	require.Len(t, out, 1)
	assert.Same(t, th, out[1][0])
}

func TestMapThreadsToLines_DropsUnanchored(t *testing.T) {
	lineMap := lineMapFixture(1, 3)
	threads := []*Thread{
		{ID: "outdated", Line: 0, Side: diff.SideRight},
		{ID: "out-of-window", Line: 99, Side: diff.SideRight},
	}

	out := MapThreadsToLines(threads, lineMap)
	assert.Empty(t, out)
}

func TestMapThreadsToLines_SameLinePreservesOrder(t *testing.T) {
	lineMap := lineMapFixture(1, 3)
	a := &Thread{ID: "a", Line: 2, Side: diff.SideRight}
	b := &Thread{ID: "b", Line: 2, Side: diff.SideRight}

	out := MapThreadsToLines([]*Thread{a, b}, lineMap)

	require.Len(t, out[2], 2)
	assert.Same(t, a, out[2][0])
	assert.Same(t, b, out[2][1])
}

func TestGroupThreadsByPath(t *testing.T) {
	a1 := &Thread{ID: "1", Path: "a.go"}
	b1 := &Thread{ID: "2", Path: "b.go"}
	a2 := &Thread{ID: "3", Path: "a.go"}

	out := GroupThreadsByPath([]*Thread{a1, b1, a2})

	require.Len(t, out, 2)
	assert.Equal(t, []*Thread{a1, a2}, out["a.go"])
	assert.Equal(t, []*Thread{b1}, out["b.go"])
}

func TestGroupThreadsByPath_Empty(t *testing.T) {
	assert.Empty(t, GroupThreadsByPath(nil))
}

func TestPositionIndex(t *testing.T) {
	a := &Thread{ID: "a"}
	b := &Thread{ID: "b"}

	out := PositionIndex(map[int][]*Thread{
		5:  {a, b},
		12: {b},
	})

	require.Len(t, out, 2)
	assert.Same(t, a, out[5])
	assert.Same(t, b, out[12])
}

func TestMapPendingToLines(t *testing.T) {
	lineMap := lineMapFixture(1, 4)
	pending := []PendingComment{
		{Path: "a.go", Line: 3, Side: diff.SideRight, Body: "fix this"},
		{Path: "a.go", Line: 0, Side: diff.SideRight, Body: "unanchored"},
	}

	out := MapPendingToLines(pending, lineMap)

	require.Len(t, out, 1)
	require.Len(t, out[3], 1)
	assert.Equal(t, "fix this", out[3][0].Body)
}
