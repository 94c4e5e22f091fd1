package dna

import (
	"fmt"
	"io"

	"github.com/dnakit/athena/binio"
	"github.com/dnakit/athena/debug"
	"github.com/dnakit/athena/wstr"
)

// Sizer computes the offset at which a write ends, mirroring the writer's
// cursor arithmetic without a buffer. Fixed widths accumulate in a pending
// tally that is folded into the running offset when something needs the
// absolute position (a nested record or an alignment).
type Sizer struct {
	offset int
	tally  int
}

// NewSizer returns a Sizer positioned at start.
func NewSizer(start int) *Sizer {
	return &Sizer{offset: start}
}

// Add adds n bytes.
func (s *Sizer) Add(n int) {
	s.tally += n
}

// Values adds count elements of width bytes each.
func (s *Sizer) Values(count, width int) {
	if count > 0 {
		s.tally += count * width
	}
}

// Record sizes a nested record at the current absolute offset.
func (s *Sizer) Record(rec BinarySizer) {
	s.flush()
	start := s.offset
	s.offset = rec.BinarySize(start)
	if debug.Size() {
		debug.Logf("size: record %T %d -> %d\n", rec, start, s.offset)
	}
}

// String adds an unbounded narrow string and its terminator.
func (s *Sizer) String(v string) {
	s.tally += len(v) + 1
}

func (s *Sizer) FixedString(n int) {
	s.tally += n
}

// WString adds unbounded wide string units and the zero terminator unit.
func (s *Sizer) WString(units []uint16) {
	s.tally += 2 * (len(units) + 1)
}

// WStringAsString adds the wire size of s transcoded to UTF-16.
func (s *Sizer) WStringAsString(v string) {
	s.tally += 2 * (wstr.Len(v) + 1)
}

func (s *Sizer) FixedWString(n int) {
	s.tally += 2 * n
}

func (s *Sizer) Buffer(n int) {
	s.tally += n
}

// Seek applies a Seek descriptor. io.SeekStart moves to offset, discarding
// anything pending; io.SeekCurrent adds offset to the tally. An end-relative
// seek depends on the final length and has no static size; it panics.
func (s *Sizer) Seek(offset int, whence int) {
	switch whence {
	case io.SeekStart:
		s.offset = offset
		s.tally = 0
	case io.SeekCurrent:
		s.tally += offset
	default:
		panic(fmt.Sprintf("dna: cannot size a seek with whence %d", whence))
	}
}

// Align rounds the offset up to a multiple of n.
func (s *Sizer) Align(n int) {
	s.flush()
	s.offset = int(binio.AlignUp(int64(s.offset), int64(n)))
}

// Total returns the ending offset.
func (s *Sizer) Total() int {
	return s.offset + s.tally
}

func (s *Sizer) flush() {
	s.offset += s.tally
	s.tally = 0
}

// SizeOfValue adds the width of one T.
func SizeOfValue[T Scalar](s *Sizer) {
	s.Add(SizeOf[T]())
}

// SizeRecords sizes each record of items in sequence.
func SizeRecords[T any, PT interface {
	*T
	BinarySizer
}](s *Sizer, items []T) {
	for i := range items {
		s.Record(PT(&items[i]))
	}
}
