package stream

import "fmt"

// Event represents a structural event from the decoder.
type Event struct {
	Type EventType

	// Key is set for EventKey, String for EventScalar.
	Key    string
	String string
}

// IsValueStart returns true if this event starts a value (as opposed to a
// key or an end marker).
func (e *Event) IsValueStart() bool {
	return e.Type == EventBeginMapping ||
		e.Type == EventBeginSequence ||
		e.Type == EventScalar
}

// EventType represents the type of a structural event.
type EventType int

const (
	EventBeginMapping EventType = iota
	EventEndMapping
	EventBeginSequence
	EventEndSequence
	EventKey
	EventScalar
)

func (t EventType) String() string {
	switch t {
	case EventBeginMapping:
		return "BeginMapping"
	case EventEndMapping:
		return "EndMapping"
	case EventBeginSequence:
		return "BeginSequence"
	case EventEndSequence:
		return "EndSequence"
	case EventKey:
		return "Key"
	case EventScalar:
		return "Scalar"
	default:
		return "Unknown"
	}
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(d []byte) error {
	k := string(d)
	pt, ok := map[string]EventType{
		"BeginMapping":  EventBeginMapping,
		"EndMapping":    EventEndMapping,
		"BeginSequence": EventBeginSequence,
		"EndSequence":   EventEndSequence,
		"Key":           EventKey,
		"Scalar":        EventScalar,
	}[k]
	if !ok {
		return fmt.Errorf("unknown event type %q", k)
	}
	*t = pt
	return nil
}
