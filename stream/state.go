package stream

import (
	"strconv"
	"strings"
)

// State checks that events are balanced and tracks the path of the
// current position. It holds no nodes.
type State struct {
	stack []item
	roots int
}

type item struct {
	kind   EventType
	n      int
	key    string
	hasKey bool
}

// NewState creates a new State for tracking structure state.
func NewState() *State {
	return &State{}
}

func (s *State) current() *item {
	return &s.stack[len(s.stack)-1]
}

func (s *State) fail(msg string) error {
	return &Error{Msg: msg, Path: s.CurrentPath()}
}

// value accounts for a value starting at the current position.
func (s *State) value() error {
	if len(s.stack) == 0 {
		if s.roots > 0 {
			return s.fail("multiple roots")
		}
		s.roots++
		return nil
	}
	cur := s.current()
	if cur.kind == EventBeginMapping {
		if !cur.hasKey {
			return s.fail("value without key")
		}
		cur.hasKey = false
	}
	cur.n++
	return nil
}

// ProcessEvent processes an event and updates state/path tracking.
// Call this for each event in order.
func (s *State) ProcessEvent(event *Event) error {
	switch event.Type {
	case EventBeginMapping, EventBeginSequence:
		if err := s.value(); err != nil {
			return err
		}
		s.stack = append(s.stack, item{kind: event.Type})

	case EventEndMapping, EventEndSequence:
		if len(s.stack) == 0 {
			return s.fail("negative depth")
		}
		cur := s.current()
		want := EventBeginMapping
		if event.Type == EventEndSequence {
			want = EventBeginSequence
		}
		if cur.kind != want {
			return s.fail(event.Type.String() + " closes " + cur.kind.String())
		}
		if cur.hasKey {
			return s.fail("key " + strconv.Quote(cur.key) + " without value")
		}
		s.stack = s.stack[:len(s.stack)-1]

	case EventKey:
		if len(s.stack) == 0 || s.current().kind != EventBeginMapping {
			return s.fail("key not in mapping")
		}
		cur := s.current()
		if cur.hasKey {
			return s.fail("key after key")
		}
		cur.hasKey = true
		cur.key = event.Key

	case EventScalar:
		return s.value()

	default:
		return s.fail("unknown event " + event.Type.String())
	}
	return nil
}

// Depth returns the current nesting depth (0 = top level).
func (s *State) Depth() int {
	return len(s.stack)
}

// Done reports an error unless exactly one complete root has been seen.
func (s *State) Done() error {
	if len(s.stack) > 0 {
		return s.fail("unterminated " + s.current().kind.String())
	}
	if s.roots == 0 {
		return s.fail("empty stream")
	}
	return nil
}

// CurrentPath returns the path of the value being built, such as
// "$.c[2]".
func (s *State) CurrentPath() string {
	var b strings.Builder
	b.WriteByte('$')
	for i := range s.stack {
		it := &s.stack[i]
		switch it.kind {
		case EventBeginMapping:
			b.WriteByte('.')
			b.WriteString(it.key)
		case EventBeginSequence:
			if it.n > 0 {
				b.WriteByte('[')
				b.WriteString(strconv.Itoa(it.n - 1))
				b.WriteByte(']')
			}
		}
	}
	return b.String()
}
