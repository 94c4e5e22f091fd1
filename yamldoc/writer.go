package yamldoc

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dnakit/athena/debug"
	"github.com/dnakit/athena/encode"
	"github.com/dnakit/athena/ir"
)

// Writer builds a document tree field by field and emits it on Finish.
type Writer struct {
	root     *ir.Node
	stack    []*ir.Node
	logger   *slog.Logger
	encode   []encode.EncodeOption
	finished bool
}

// NewWriter returns a Writer whose root mapping carries DNAType: dnaType,
// unless dnaType is empty.
func NewWriter(dnaType string, opts ...Option) *Writer {
	o := newOptions(opts)
	root := ir.NewMapping()
	if dnaType != "" {
		root.AppendField(ClassTypeKey, ir.FromString(dnaType))
	}
	return &Writer{
		root:   root,
		stack:  []*ir.Node{root},
		logger: o.logger,
		encode: o.encode,
	}
}

// Root returns the tree built so far.
func (w *Writer) Root() *ir.Node {
	return w.root
}

// Depth returns the number of frames above the root.
func (w *Writer) Depth() int {
	return len(w.stack) - 1
}

func (w *Writer) top() *ir.Node {
	return w.stack[len(w.stack)-1]
}

// add attaches v to the top frame: keyed by name in a mapping, as the next
// element in a sequence.
func (w *Writer) add(name string, v *ir.Node) {
	top := w.top()
	if top.Type == ir.SequenceType {
		top.Append(v)
		return
	}
	top.AppendField(name, v)
}

func (w *Writer) push(name string, n *ir.Node) {
	w.add(name, n)
	w.stack = append(w.stack, n)
	if debug.YAML() {
		debug.Logf("yamldoc: write enter %q (%s) depth %d\n", name, n.Type, w.Depth())
	}
}

func (w *Writer) pop() *ir.Node {
	if len(w.stack) <= 1 {
		w.logger.Warn("leave at document root")
		return nil
	}
	n := w.top()
	w.stack = w.stack[:len(w.stack)-1]
	return n
}

// EnterSubRecord starts a mapping called name.
func (w *Writer) EnterSubRecord(name string) {
	w.push(name, ir.NewMapping())
}

// LeaveSubRecord closes the current mapping. A mapping holding only one
// unnamed scalar or sequence is replaced in its parent by that value.
func (w *Writer) LeaveSubRecord() {
	n := w.pop()
	if n == nil {
		return
	}
	if len(n.Fields) != 1 || n.Fields[0].String != "" || n.Values[0].Type == ir.MappingType {
		return
	}
	parent := w.top()
	parent.Values[len(parent.Values)-1] = n.Values[0]
	if debug.YAML() {
		debug.Logf("yamldoc: collapsed record into %s\n", n.Values[0].Type)
	}
}

// EnterSubVector starts a sequence called name.
func (w *Writer) EnterSubVector(name string) {
	w.push(name, ir.NewSequence())
}

// LeaveSubVector closes the current sequence.
func (w *Writer) LeaveSubVector() {
	w.pop()
}

// Finish writes the document, starting with "---", to out. A Writer can
// only be finished once, and only with every frame closed.
func (w *Writer) Finish(out io.Writer) error {
	if w.finished {
		return ErrFinished
	}
	if d := w.Depth(); d != 0 {
		return fmt.Errorf("%w: %d frames open", ErrOpenFrames, d)
	}
	w.finished = true
	opts := append([]encode.EncodeOption{encode.DocStart(true)}, w.encode...)
	return encode.Encode(w.root, out, opts...)
}
