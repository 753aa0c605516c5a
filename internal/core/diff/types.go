// Package diff holds the data model and alignment algorithms that turn
// hunk-based git diffs into coordinate-consistent line grids for rendering.
package diff

import (
	"encoding/json"
	"fmt"
)

// LineType classifies one side of a diff row.
type LineType int

const (
	LineContext LineType = iota // Line unchanged on this side
	LineChange                  // Line modified (paired with a change on the other side)
	LineDelete                  // Line removed from this side
	LineAdd                     // Line added on this side
	LineFiller                  // No line exists on this side
)

// String returns a short name for the line type.
func (t LineType) String() string {
	switch t {
	case LineContext:
		return "context"
	case LineChange:
		return "change"
	case LineDelete:
		return "delete"
	case LineAdd:
		return "add"
	case LineFiller:
		return "filler"
	default:
		return "unknown"
	}
}

// Side identifies a pane of an aligned diff. Two-pane views use Left and
// Right; the staging view additionally uses Mid for the INDEX pane.
type Side int

const (
	SideLeft Side = iota
	SideMid
	SideRight
)

// String returns the pane name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideMid:
		return "mid"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the side as the GitHub API strings LEFT, MID, RIGHT.
func (s Side) MarshalJSON() ([]byte, error) {
	switch s {
	case SideLeft:
		return json.Marshal("LEFT")
	case SideMid:
		return json.Marshal("MID")
	case SideRight:
		return json.Marshal("RIGHT")
	default:
		return nil, fmt.Errorf("unknown side %d", int(s))
	}
}

// UnmarshalJSON accepts LEFT, MID, or RIGHT.
func (s *Side) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "LEFT":
		*s = SideLeft
	case "MID":
		*s = SideMid
	case "RIGHT":
		*s = SideRight
	default:
		return fmt.Errorf("unknown side %q", name)
	}
	return nil
}

// LinePair is one row of a hunk before flattening. On a side whose type is
// LineFiller no line exists there: its text is empty and its lineno is 0.
// Linenos are 1-based file coordinates; 0 means "not applicable", matching
// unified-diff semantics for lines absent from one file.
type LinePair struct {
	LeftText    string
	RightText   string
	LeftType    LineType
	RightType   LineType
	LeftLineno  int
	RightLineno int
}

// HunkHeader carries the metadata of a unified-diff @@ header. It is
// descriptive only; alignment never consumes the counts beyond ordering.
type HunkHeader struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Raw      string
}

// Hunk is a contiguous block of classified line pairs sharing one header.
type Hunk struct {
	Header HunkHeader
	Pairs  []LinePair
}

// FileDiff is the diff of a single file between two snapshots.
type FileDiff struct {
	OldPath   string
	NewPath   string
	Status    string // git status letter: M, A, D, R, C, ...
	Hunks     []Hunk
	Additions int
	Deletions int
	IsBinary  bool
}

// Path returns the file's current path, falling back to the old path for
// deletions.
func (f FileDiff) Path() string {
	if f.NewPath != "" {
		return f.NewPath
	}
	return f.OldPath
}

// ThreeWayFileDiff is one file's entry in the staging view: the file's
// HEAD→INDEX hunks and INDEX→WORKTREE hunks side by side. Either hunk slice
// may be empty (never nil) when the corresponding diff does not touch the
// file.
type ThreeWayFileDiff struct {
	Path           string
	StagedHunks    []Hunk
	UnstagedHunks  []Hunk
	StatusStaged   string // empty when not in the staged diff
	StatusUnstaged string // empty when not in the unstaged diff
	Additions      int
	Deletions      int
}

// AlignedLineInfo describes one row of an aligned two-pane diff.
type AlignedLineInfo struct {
	LeftType       LineType
	RightType      LineType
	LeftLineno     int // 0 when the left pane has no line here
	RightLineno    int // 0 when the right pane has no line here
	HunkIndex      int // 1-based ordinal of the hunk that produced this row
	IsHunkBoundary bool
}

// AlignedDiff is the renderer-facing form of a two-pane diff: two
// equal-length line arrays plus per-row metadata. For every input,
// len(LeftLines) == len(RightLines) == len(LineMap).
type AlignedDiff struct {
	LeftLines  []string
	RightLines []string
	LineMap    []AlignedLineInfo
}

// ThreeWayLineInfo describes one row of an aligned HEAD/INDEX/WORKTREE grid.
type ThreeWayLineInfo struct {
	LeftType       LineType
	MidType        LineType
	RightType      LineType
	LeftLineno     int
	MidLineno      int
	RightLineno    int
	HunkIndex      int
	IsHunkBoundary bool
}

// AlignedThreeWayDiff is the renderer-facing form of the staging view. All
// four slices always have equal length.
type AlignedThreeWayDiff struct {
	LeftLines  []string
	MidLines   []string
	RightLines []string
	LineMap    []ThreeWayLineInfo
}
