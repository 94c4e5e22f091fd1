package libdiff

import (
	"fmt"

	"github.com/dnakit/athena/ir"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Replace:
		return "~"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Change is one difference between two trees. From is nil for an Insert,
// To is nil for a Delete.
type Change struct {
	Op   Op
	Path string
	From *ir.Node
	To   *ir.Node
}

// Diff returns the changes turning from into to, in document order.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	diff("$", from, to, &res)
	return res
}

func diff(path string, from, to *ir.Node, res *[]Change) {
	switch {
	case from == nil && to == nil:
		return
	case from == nil:
		*res = append(*res, Change{Op: Insert, Path: path, To: to})
		return
	case to == nil:
		*res = append(*res, Change{Op: Delete, Path: path, From: from})
		return
	case from.Type != to.Type:
		*res = append(*res, Change{Op: Replace, Path: path, From: from, To: to})
		return
	}
	switch from.Type {
	case ir.ScalarType:
		if from.String != to.String {
			*res = append(*res, Change{Op: Replace, Path: path, From: from, To: to})
		}
	case ir.MappingType:
		diffMapping(path, from, to, res)
	case ir.SequenceType:
		diffSequence(path, from, to, res)
	}
}

// diffMapping pairs fields by name. Fields only in from are deleted where
// they were; fields only in to are inserted after the common ones.
func diffMapping(path string, from, to *ir.Node, res *[]Change) {
	for _, kv := range from.KeyVals() {
		diff(path+"."+kv.Key, kv.Val, ir.Get(to, kv.Key), res)
	}
	for _, kv := range to.KeyVals() {
		if ir.Get(from, kv.Key) == nil {
			*res = append(*res, Change{Op: Insert, Path: path + "." + kv.Key, To: kv.Val})
		}
	}
}

// Reverse returns the changes turning to back into from.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Path: c.Path, From: c.To, To: c.From, Op: c.Op}
		switch c.Op {
		case Insert:
			r.Op = Delete
		case Delete:
			r.Op = Insert
		}
		res[i] = r
	}
	return res
}
