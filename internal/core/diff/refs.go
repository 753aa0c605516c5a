package diff

import (
	"fmt"
	"strings"
)

// SourceKind selects which snapshots a diff compares.
type SourceKind int

const (
	// SourceWorktree compares HEAD against the working tree.
	SourceWorktree SourceKind = iota
	// SourceStaged compares HEAD against the index.
	SourceStaged
	// SourceUnstaged compares the index against the working tree.
	SourceUnstaged
	// SourceCommit compares a commit against its first parent.
	SourceCommit
	// SourceStash compares a stash entry against its parent.
	SourceStash
	// SourceRange compares the two ends of an explicit a..b or a...b range.
	SourceRange
	// SourceThreeWay is the HEAD/INDEX/WORKTREE staging view.
	SourceThreeWay
	// SourceConflict is the ours/worktree/theirs merge-conflict view.
	SourceConflict
)

// DiffSource names a diff to display: a kind plus, for commit, stash, and
// range kinds, the ref or range expression it applies to.
type DiffSource struct {
	Kind SourceKind
	Ref  string
}

// Pseudo-refs understood by the git layer. INDEX and WORKTREE are not real
// git references; they select the --cached and plain diff forms.
const (
	RefHead     = "HEAD"
	RefIndex    = "INDEX"
	RefWorktree = "WORKTREE"
)

// Refs are the git references a source resolves to. Mid is empty for
// two-pane sources.
type Refs struct {
	Left  string
	Mid   string
	Right string
}

// IsThreeWay reports whether the resolved refs describe a three-pane view.
func (r Refs) IsThreeWay() bool {
	return r.Mid != ""
}

// RefsForSource maps a diff source onto the references that should be
// diffed. Pure string logic; it never consults the repository.
func RefsForSource(src DiffSource) (Refs, error) {
	switch src.Kind {
	case SourceWorktree:
		return Refs{Left: RefHead, Right: RefWorktree}, nil

	case SourceStaged:
		return Refs{Left: RefHead, Right: RefIndex}, nil

	case SourceUnstaged:
		return Refs{Left: RefIndex, Right: RefWorktree}, nil

	case SourceCommit, SourceStash:
		if src.Ref == "" {
			return Refs{}, fmt.Errorf("diff source requires a ref")
		}
		return Refs{Left: src.Ref + "^", Right: src.Ref}, nil

	case SourceRange:
		sep := ".."
		if strings.Contains(src.Ref, "...") {
			sep = "..."
		}
		left, right, ok := strings.Cut(src.Ref, sep)
		if !ok || left == "" || right == "" {
			return Refs{}, fmt.Errorf("invalid ref range %q", src.Ref)
		}
		return Refs{Left: left, Right: right}, nil

	case SourceThreeWay:
		return Refs{Left: RefHead, Mid: RefIndex, Right: RefWorktree}, nil

	case SourceConflict:
		// Stage 2 is "ours", stage 3 is "theirs"; the worktree holds the
		// conflicted merge result between them.
		return Refs{Left: ":2:", Mid: RefWorktree, Right: ":3:"}, nil

	default:
		return Refs{}, fmt.Errorf("unknown diff source kind: %d", src.Kind)
	}
}
