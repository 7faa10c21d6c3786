package holiday

// DiffResult contains the differences between two builds of the same year
type DiffResult struct {
	Added   []Holiday
	Removed []Holiday
}

// Changed reports whether anything was added or removed
func (d *DiffResult) Changed() bool {
	return len(d.Added) > 0 || len(d.Removed) > 0
}

// Diff compares a previous holiday set against the current one by fingerprint.
// Added and Removed keep the order of the set they come from.
func Diff(previous, current []Holiday) *DiffResult {
	result := &DiffResult{
		Added:   make([]Holiday, 0),
		Removed: make([]Holiday, 0),
	}

	before := make(map[string]bool, len(previous))
	for _, h := range previous {
		before[h.SourceHash] = true
	}

	after := make(map[string]bool, len(current))
	for _, h := range current {
		after[h.SourceHash] = true
		if !before[h.SourceHash] {
			result.Added = append(result.Added, h)
		}
	}

	for _, h := range previous {
		if !after[h.SourceHash] {
			result.Removed = append(result.Removed, h)
		}
	}

	return result
}
