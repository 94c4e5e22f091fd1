package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines diffs two texts line by line. Each returned Diff holds whole
// lines, newline included.
func Lines(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToRunes(from, to)
	diffs := dmp.DiffMainRunes(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}
