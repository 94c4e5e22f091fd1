package libdiff

import (
	"strconv"
	"strings"

	"github.com/dnakit/athena/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffSequence aligns the elements of from and to by diffing one rune per
// element. Elements with equal summaries are compared recursively; the
// rest are deletions and insertions. A deletion directly followed by an
// insertion at the same index becomes a replacement.
func diffSequence(path string, from, to *ir.Node, res *[]Change) {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	var pending []int
	flush := func() {
		for _, i := range pending {
			*res = append(*res, Change{Op: Delete, Path: index(path, i), From: from.Values[i]})
		}
		pending = pending[:0]
	}
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				pending = append(pending, fi)
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				if len(pending) > 0 {
					j := pending[0]
					pending = pending[1:]
					diff(index(path, j), from.Values[j], to.Values[ti], res)
				} else {
					*res = append(*res, Change{Op: Insert, Path: index(path, ti), To: to.Values[ti]})
				}
				ti++
			}
			flush()
		case diffpatch.DiffEqual:
			flush()
			for range n {
				diff(index(path, ti), from.Values[fi], to.Values[ti], res)
				fi++
				ti++
			}
		}
	}
	flush()
}

func index(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			// stay clear of the surrogate range, which DiffMainRunes
			// cannot carry through its string conversion
			r = rune(len(m)) + 0xE000
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

// summaryStr is equal for elements worth comparing field by field:
// scalars with the same text, or collections of the same kind.
func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.ScalarType:
		if strings.Contains(node.String, "\n") {
			return "s/m"
		}
		return "s-" + node.String
	default:
		return node.Type.String()
	}
}
