package yamldoc

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dnakit/athena/debug"
	"github.com/dnakit/athena/ir"
	"github.com/dnakit/athena/parse"
)

// ClassTypeKey is the reserved top-level key holding a document's schema
// name.
const ClassTypeKey = "DNAType"

// Reader reads typed values out of a document tree.
type Reader struct {
	root   *ir.Node
	stack  []frame
	logger *slog.Logger
	errs   []error
	nMiss  int
}

type frame struct {
	node  *ir.Node
	label string
	next  int
}

// NewReader returns a Reader positioned at root.
func NewReader(root *ir.Node, opts ...Option) *Reader {
	o := newOptions(opts)
	if root == nil {
		root = ir.NewMapping()
	}
	return &Reader{
		root:   root,
		stack:  []frame{{node: root}},
		logger: o.logger,
	}
}

// Parse parses one YAML document and returns a Reader over it. If parsing
// fails the Reader is positioned on an empty mapping, so every read yields
// a zero value, and the error wraps parse.ErrParse.
func Parse(data []byte, opts ...Option) (*Reader, error) {
	o := newOptions(opts)
	popts := append([]parse.ParseOption{parse.ParseLogger(o.logger)}, o.parse...)
	root, err := parse.Parse(data, popts...)
	return NewReader(root, opts...), err
}

// Root returns the document tree.
func (r *Reader) Root() *ir.Node {
	return r.root
}

// ClassType reports whether the document's DNAType is expected.
func (r *Reader) ClassType(expected string) bool {
	n := ir.Get(r.root, ClassTypeKey)
	return n != nil && n.Type == ir.ScalarType && n.String == expected
}

// Depth returns the number of frames above the root.
func (r *Reader) Depth() int {
	return len(r.stack) - 1
}

// Path describes the position of the top frame, as in "$.entries[2]".
func (r *Reader) Path() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, f := range r.stack[1:] {
		b.WriteString(f.label)
	}
	return b.String()
}

// Missing returns how many fields were absent so far.
func (r *Reader) Missing() int {
	return r.nMiss
}

// Err joins every FieldError recorded so far, or returns nil.
func (r *Reader) Err() error {
	return errors.Join(r.errs...)
}

func (r *Reader) top() *frame {
	return &r.stack[len(r.stack)-1]
}

// resolve finds the node a read of name refers to: the top itself if it
// is a scalar, the next element of a sequence, or the first field called
// name of a mapping.
func (r *Reader) resolve(name string) (*ir.Node, string) {
	top := r.top()
	switch top.node.Type {
	case ir.ScalarType:
		return top.node, ""
	case ir.SequenceType:
		if top.next >= len(top.node.Values) {
			return nil, "[" + strconv.Itoa(top.next) + "]"
		}
		i := top.next
		top.next++
		return top.node.Values[i], "[" + strconv.Itoa(i) + "]"
	default:
		return ir.Get(top.node, name), "." + name
	}
}

func (r *Reader) push(n *ir.Node, label string) {
	r.stack = append(r.stack, frame{node: n, label: label})
	if debug.YAML() {
		debug.Logf("yamldoc: enter %s (%s)\n", r.Path(), n.Type)
	}
}

func (r *Reader) pop() {
	if len(r.stack) <= 1 {
		r.logger.Warn("leave at document root", "path", r.Path())
		return
	}
	if debug.YAML() {
		debug.Logf("yamldoc: leave %s\n", r.Path())
	}
	r.stack = r.stack[:len(r.stack)-1]
}

// EnterSubRecord makes the record called name the top frame. In a sequence
// it takes the next element instead. A scalar or sequence found in place of
// a mapping is a collapsed record and is presented as a mapping whose single
// field has an empty name. It returns false, leaving the stack unchanged,
// if there is no such record.
func (r *Reader) EnterSubRecord(name string) bool {
	n, label := r.resolve(name)
	if n == nil {
		r.missing(name)
		return false
	}
	if n.Type != ir.MappingType {
		n = ir.FromKeyVals([]ir.KeyVal{{Key: "", Val: n}})
	}
	r.push(n, label)
	return true
}

// LeaveSubRecord pops the top frame. The root is never popped.
func (r *Reader) LeaveSubRecord() {
	r.pop()
}

// EnterSubVector makes the sequence called name the top frame and returns
// its length. It returns false, leaving the stack unchanged, if there is no
// such sequence.
func (r *Reader) EnterSubVector(name string) (int, bool) {
	n, label := r.resolve(name)
	if n == nil {
		r.missing(name)
		return 0, false
	}
	if n.Type != ir.SequenceType {
		r.bad(name, n.Type.String(), "not a sequence")
		return 0, false
	}
	r.push(n, label)
	return n.Len(), true
}

// LeaveSubVector pops the top frame. The root is never popped.
func (r *Reader) LeaveSubVector() {
	r.pop()
}

func (r *Reader) missing(name string) {
	r.nMiss++
	r.errs = append(r.errs, &FieldError{Path: r.Path(), Field: name, Err: ErrMissingField})
	r.logger.Warn("missing field", "field", name, "path", r.Path())
}

func (r *Reader) bad(name, value, why string) {
	r.errs = append(r.errs, &FieldError{Path: r.Path(), Field: name, Value: value, Err: ErrBadValue})
	r.logger.Warn(why, "field", name, "path", r.Path(), "value", value)
}

// scalar resolves name to scalar text.
func (r *Reader) scalar(name string) (string, bool) {
	n, _ := r.resolve(name)
	if n == nil {
		r.missing(name)
		return "", false
	}
	if n.Type != ir.ScalarType {
		r.bad(name, n.Type.String(), "not a scalar")
		return "", false
	}
	return n.String, true
}
