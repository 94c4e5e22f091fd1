package stream

import (
	"github.com/dnakit/athena/ir"
)

// Builder is an EventSink that assembles the events it receives into a
// node tree.
type Builder struct {
	state *State
	stack []*ir.Node
	keys  []string
	root  *ir.Node
	err   error
}

func NewBuilder() *Builder {
	return &Builder{state: NewState()}
}

// WriteEvent adds ev to the tree. After the first error every call returns
// that error.
func (b *Builder) WriteEvent(ev *Event) error {
	if b.err != nil {
		return b.err
	}
	if err := b.state.ProcessEvent(ev); err != nil {
		b.err = err
		return err
	}
	switch ev.Type {
	case EventBeginMapping:
		node := ir.NewMapping()
		b.attach(node)
		b.push(node)
	case EventBeginSequence:
		node := ir.NewSequence()
		b.attach(node)
		b.push(node)
	case EventEndMapping, EventEndSequence:
		b.stack = b.stack[:len(b.stack)-1]
		b.keys = b.keys[:len(b.keys)-1]
	case EventKey:
		b.keys[len(b.keys)-1] = ev.Key
	case EventScalar:
		b.attach(ir.FromString(ev.String))
	}
	return nil
}

func (b *Builder) push(node *ir.Node) {
	b.stack = append(b.stack, node)
	b.keys = append(b.keys, "")
}

func (b *Builder) attach(node *ir.Node) {
	n := len(b.stack)
	if n == 0 {
		b.root = node
		return
	}
	parent := b.stack[n-1]
	if parent.Type == ir.MappingType {
		parent.AppendField(b.keys[n-1], node)
		return
	}
	parent.Append(node)
}

// Root returns the finished tree, or an error if the events seen so far do
// not form exactly one complete value.
func (b *Builder) Root() (*ir.Node, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.state.Done(); err != nil {
		return nil, err
	}
	return b.root, nil
}

// EventsToNode builds the tree described by events.
func EventsToNode(events []Event) (*ir.Node, error) {
	b := NewBuilder()
	if err := Copy(b, NewSliceEventReader(events)); err != nil {
		return nil, err
	}
	return b.Root()
}

// NodeToEvents flattens a tree into its event sequence.
func NodeToEvents(node *ir.Node) []Event {
	var events []Event
	var walk func(*ir.Node)
	walk = func(y *ir.Node) {
		switch y.Type {
		case ir.ScalarType:
			events = append(events, Event{Type: EventScalar, String: y.String})
		case ir.SequenceType:
			events = append(events, Event{Type: EventBeginSequence})
			for _, v := range y.Values {
				walk(v)
			}
			events = append(events, Event{Type: EventEndSequence})
		case ir.MappingType:
			events = append(events, Event{Type: EventBeginMapping})
			for i, v := range y.Values {
				events = append(events, Event{Type: EventKey, Key: y.Fields[i].String})
				walk(v)
			}
			events = append(events, Event{Type: EventEndMapping})
		}
	}
	walk(node)
	return events
}
