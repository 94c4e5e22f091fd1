package stream

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Decoder reads YAML documents and produces their events. ReadEvent
// returns io.EOF at the end of each document; NextDocument moves to the
// following one.
type Decoder struct {
	dec     *yaml.Decoder
	opts    streamOpts
	events  []Event
	pos     int
	started bool
}

func NewDecoder(r io.Reader, opts ...StreamOption) *Decoder {
	d := &Decoder{
		dec:  yaml.NewDecoder(r),
		opts: streamOpts{maxEvents: DefaultMaxAliasEvents},
	}
	for _, f := range opts {
		f(&d.opts)
	}
	return d
}

// ReadEvent returns the next event of the current document. The first call
// loads the first document.
func (d *Decoder) ReadEvent() (*Event, error) {
	if !d.started {
		if err := d.NextDocument(); err != nil {
			return nil, err
		}
	}
	if d.pos >= len(d.events) {
		return nil, io.EOF
	}
	ev := &d.events[d.pos]
	d.pos++
	return ev, nil
}

// NextDocument decodes the next document, discarding any unread events of
// the current one. It returns io.EOF when the input has no more documents.
func (d *Decoder) NextDocument() error {
	d.started = true
	d.events, d.pos = d.events[:0], 0
	var doc yaml.Node
	if err := d.dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return &Error{Msg: err.Error()}
	}
	w := &walker{max: d.opts.maxEvents, expanding: map[*yaml.Node]bool{}}
	if err := w.walk(&doc, "$"); err != nil {
		return err
	}
	d.events = w.events
	return nil
}

type walker struct {
	events    []Event
	max       int
	expanding map[*yaml.Node]bool
}

func (w *walker) emit(ev Event, path string) error {
	if w.max > 0 && len(w.events) >= w.max {
		return &Error{Msg: fmt.Sprintf("document expands to more than %d events", w.max), Path: path}
	}
	w.events = append(w.events, ev)
	return nil
}

func (w *walker) walk(n *yaml.Node, path string) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return w.emit(Event{Type: EventScalar}, path)
		}
		return w.walk(n.Content[0], path)

	case yaml.ScalarNode:
		return w.emit(Event{Type: EventScalar, String: n.Value}, path)

	case yaml.SequenceNode:
		if err := w.emit(Event{Type: EventBeginSequence}, path); err != nil {
			return err
		}
		for i, c := range n.Content {
			if err := w.walk(c, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		return w.emit(Event{Type: EventEndSequence}, path)

	case yaml.MappingNode:
		if err := w.emit(Event{Type: EventBeginMapping}, path); err != nil {
			return err
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind == yaml.AliasNode && k.Alias != nil {
				k = k.Alias
			}
			if k.Kind != yaml.ScalarNode {
				return &Error{Msg: fmt.Sprintf("non-scalar key at line %d column %d", k.Line, k.Column), Path: path}
			}
			if err := w.emit(Event{Type: EventKey, Key: k.Value}, path); err != nil {
				return err
			}
			if err := w.walk(n.Content[i+1], path+"."+k.Value); err != nil {
				return err
			}
		}
		return w.emit(Event{Type: EventEndMapping}, path)

	case yaml.AliasNode:
		if n.Alias == nil {
			return &Error{Msg: fmt.Sprintf("unknown alias %q", n.Value), Path: path}
		}
		if w.expanding[n.Alias] {
			return &Error{Msg: fmt.Sprintf("recursive alias %q", n.Value), Path: path}
		}
		w.expanding[n.Alias] = true
		defer delete(w.expanding, n.Alias)
		return w.walk(n.Alias, path)
	}
	return &Error{Msg: fmt.Sprintf("unexpected node kind %d", n.Kind), Path: path}
}
