package binio

import (
	"fmt"
	"io"
	"log/slog"
)

// Writer is a cursor writing into an in-memory byte buffer.
type Writer struct {
	cursor
	data     []byte
	growable bool
	err      error
	logger   *slog.Logger
	opts     *options
}

// NewWriter returns a Writer over buf. The capacity is fixed at len(buf);
// writing beyond it fails the stream.
func NewWriter(buf []byte, opts ...Option) *Writer {
	return newWriter(buf, false, newOptions(opts))
}

// NewGrowableWriter returns a Writer owning a buffer that extends as
// needed, starting with room for capacity bytes.
func NewGrowableWriter(capacity int, opts ...Option) *Writer {
	if capacity < 0 {
		capacity = 0
	}
	return newWriter(make([]byte, 0, capacity), true, newOptions(opts))
}

func newWriter(buf []byte, growable bool, o *options) *Writer {
	return &Writer{
		cursor:   cursor{endian: o.endian},
		data:     buf,
		growable: growable,
		logger:   o.logger,
		opts:     o,
	}
}

// Length returns the buffer length: the capacity of an in-place writer or
// the high-water mark of a growable one.
func (w *Writer) Length() int64 {
	return int64(len(w.data))
}

// AtEnd reports whether the cursor is at or past Length().
func (w *Writer) AtEnd() bool {
	return w.pos >= w.Length()
}

// Bytes returns the written buffer.
func (w *Writer) Bytes() []byte {
	return w.data
}

// Growable reports whether the Writer owns a resizable buffer.
func (w *Writer) Growable() bool {
	return w.growable
}

// Err returns the first bounds failure, if any.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) fail(op string, need int64) {
	if w.err != nil {
		return
	}
	w.err = &BoundsError{Op: op, Position: w.pos, Need: need, Length: w.Length()}
}

// ensure makes the buffer at least end bytes long, zero-filling new space.
func (w *Writer) ensure(op string, end int64) bool {
	l := w.Length()
	if end <= l {
		return true
	}
	if !w.growable {
		w.fail(op, end-w.pos)
		return false
	}
	if end > int64(cap(w.data)) {
		nc := max(2*int64(cap(w.data)), end)
		nb := make([]byte, end, nc)
		copy(nb, w.data)
		w.data = nb
		return true
	}
	w.data = w.data[:end]
	clear(w.data[l:end])
	return true
}

// Resize grows the buffer to n bytes. Asking for fewer bytes than Length()
// panics with an *AllocationPolicyError.
func (w *Writer) Resize(n int64) {
	if n < w.Length() {
		panic(&AllocationPolicyError{Length: w.Length(), Requested: n})
	}
	w.ensure("resize", n)
}

// Seek moves the byte cursor and clears the bit cursor. A growable writer
// extends its buffer to cover the new position.
func (w *Writer) Seek(offset int64, whence int) (int64, error) {
	if w.err != nil {
		return w.pos, w.err
	}
	pos, ok := w.cursor.target(offset, whence, w.Length())
	if !ok {
		return w.pos, fmt.Errorf("binio: invalid whence %d", whence)
	}
	if pos < 0 {
		w.fail("seek", pos-w.pos)
		return w.pos, w.err
	}
	if !w.ensure("seek", pos) {
		return w.pos, w.err
	}
	w.pos = pos
	w.bit = 0
	return pos, nil
}

// Align advances the cursor to the next multiple of n, zero-filling.
func (w *Writer) Align(n int) {
	w.normalize()
	_, _ = w.Seek(AlignUp(w.pos, int64(n)), io.SeekStart)
}

func (w *Writer) put(op string, n int) []byte {
	if w.err != nil {
		return nil
	}
	w.normalize()
	end := w.pos + int64(n)
	if !w.ensure(op, end) {
		return nil
	}
	b := w.data[w.pos:end]
	w.pos = end
	return b
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	b := w.put("write", len(p))
	if b == nil && len(p) > 0 {
		return 0, w.err
	}
	return copy(b, p), nil
}

// WriteBytes writes p verbatim.
func (w *Writer) WriteBytes(p []byte) {
	if b := w.put("write bytes", len(p)); b != nil {
		copy(b, p)
	}
}

// WriteBit sets or clears the bit under the bit cursor and advances it.
func (w *Writer) WriteBit(v bool) {
	if w.err != nil {
		return
	}
	if !w.ensure("write bit", w.pos+1) {
		return
	}
	mask := byte(1) << w.bit
	if v {
		w.data[w.pos] |= mask
	} else {
		w.data[w.pos] &^= mask
	}
	w.advanceBit()
}
