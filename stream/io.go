package stream

import "io"

// EventReader provides events from a source.
type EventReader interface {
	ReadEvent() (*Event, error)
}

// EventSink receives events (builder, recorder, etc.).
type EventSink interface {
	WriteEvent(*Event) error
}

// SliceEventReader replays a slice of events.
type SliceEventReader struct {
	events []Event
	i      int
}

func NewSliceEventReader(events []Event) *SliceEventReader {
	return &SliceEventReader{events: events}
}

// ReadEvent returns the next event, then io.EOF.
func (r *SliceEventReader) ReadEvent() (*Event, error) {
	if r.i >= len(r.events) {
		return nil, io.EOF
	}
	ev := &r.events[r.i]
	r.i++
	return ev, nil
}

// Copy writes every event of r to sink until r reports io.EOF.
func Copy(sink EventSink, r EventReader) error {
	for {
		ev, err := r.ReadEvent()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := sink.WriteEvent(ev); err != nil {
			return err
		}
	}
}
