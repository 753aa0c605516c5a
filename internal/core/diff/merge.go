package diff

// MergeFileLists merges the file lists of two independently computed diffs
// (HEAD→INDEX and INDEX→WORKTREE) into one list keyed by path.
//
// Output order: the staged list in its own order (each entry merged with
// unstaged data when the file appears in both), then every unstaged-only
// file in unstaged order. Addition and deletion counts are summed across
// both entries for files present in both.
func MergeFileLists(staged, unstaged []FileDiff) []ThreeWayFileDiff {
	unstagedByPath := make(map[string]*FileDiff, len(unstaged))
	for i := range unstaged {
		unstagedByPath[unstaged[i].Path()] = &unstaged[i]
	}

	seen := make(map[string]bool, len(staged))
	out := make([]ThreeWayFileDiff, 0, len(staged)+len(unstaged))

	for _, sf := range staged {
		path := sf.Path()
		seen[path] = true

		tw := ThreeWayFileDiff{
			Path:          path,
			StagedHunks:   orEmptyHunks(sf.Hunks),
			UnstagedHunks: []Hunk{},
			StatusStaged:  sf.Status,
			Additions:     sf.Additions,
			Deletions:     sf.Deletions,
		}
		if uf, ok := unstagedByPath[path]; ok {
			tw.UnstagedHunks = orEmptyHunks(uf.Hunks)
			tw.StatusUnstaged = uf.Status
			tw.Additions += uf.Additions
			tw.Deletions += uf.Deletions
		}
		out = append(out, tw)
	}

	for _, uf := range unstaged {
		if seen[uf.Path()] {
			continue
		}
		out = append(out, ThreeWayFileDiff{
			Path:           uf.Path(),
			StagedHunks:    []Hunk{},
			UnstagedHunks:  orEmptyHunks(uf.Hunks),
			StatusUnstaged: uf.Status,
			Additions:      uf.Additions,
			Deletions:      uf.Deletions,
		})
	}

	return out
}

// orEmptyHunks normalizes a nil hunk slice to an empty one so ThreeWayFileDiff
// consumers never see nil.
func orEmptyHunks(hunks []Hunk) []Hunk {
	if hunks == nil {
		return []Hunk{}
	}
	return hunks
}
