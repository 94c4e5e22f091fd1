package binio

import (
	"fmt"
	"io"
	"log/slog"
)

// Reader is a cursor over an in-memory byte buffer.
type Reader struct {
	cursor
	data   []byte
	owned  bool
	err    error
	logger *slog.Logger
}

// NewReader returns a Reader viewing data. The bytes are not copied and
// must not be modified while the Reader is in use.
func NewReader(data []byte, opts ...Option) *Reader {
	return newReader(data, false, newOptions(opts))
}

// NewReaderCopy returns a Reader over its own copy of data.
func NewReaderCopy(data []byte, opts ...Option) *Reader {
	cp := make([]byte, len(data))
	copy(cp, data)
	return newReader(cp, true, newOptions(opts))
}

func newReader(data []byte, owned bool, o *options) *Reader {
	return &Reader{
		cursor: cursor{endian: o.endian},
		data:   data,
		owned:  owned,
		logger: o.logger,
	}
}

// Length returns the size of the buffer.
func (r *Reader) Length() int64 {
	return int64(len(r.data))
}

// AtEnd reports whether the cursor is at or past the end of the buffer.
func (r *Reader) AtEnd() bool {
	return r.pos >= r.Length()
}

// Data returns the backing buffer.
func (r *Reader) Data() []byte {
	return r.data
}

// Owned reports whether the Reader holds its own copy of the data.
func (r *Reader) Owned() bool {
	return r.owned
}

// Err returns the first bounds failure, if any.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) fail(op string, need int64) {
	if r.err != nil {
		return
	}
	r.err = &BoundsError{Op: op, Position: r.pos, Need: need, Length: r.Length()}
}

// Seek moves the byte cursor and clears the bit cursor. Seeking outside
// [0, Length()] fails the stream.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	if r.err != nil {
		return r.pos, r.err
	}
	pos, ok := r.cursor.target(offset, whence, r.Length())
	if !ok {
		return r.pos, fmt.Errorf("binio: invalid whence %d", whence)
	}
	if pos < 0 || pos > r.Length() {
		r.fail("seek", pos-r.pos)
		return r.pos, r.err
	}
	r.pos = pos
	r.bit = 0
	return pos, nil
}

// Align advances the cursor to the next multiple of n.
func (r *Reader) Align(n int) {
	r.normalize()
	_, _ = r.Seek(AlignUp(r.pos, int64(n)), io.SeekStart)
}

func (r *Reader) take(op string, n int) []byte {
	if r.err != nil {
		return nil
	}
	r.normalize()
	if n < 0 || r.pos+int64(n) > r.Length() {
		r.fail(op, int64(n))
		return nil
	}
	b := r.data[r.pos : r.pos+int64(n)]
	r.pos += int64(n)
	return b
}

// Read implements io.Reader over the remaining bytes.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.normalize()
	if r.AtEnd() {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += int64(n)
	return n, nil
}

// ReadBytes reads an n byte buffer. The result does not alias the stream.
func (r *Reader) ReadBytes(n int) []byte {
	b := r.take("read bytes", n)
	if b == nil {
		return nil
	}
	res := make([]byte, n)
	copy(res, b)
	return res
}

// ReadBit reads the bit under the bit cursor and advances it.
func (r *Reader) ReadBit() bool {
	if r.err != nil {
		return false
	}
	if r.pos >= r.Length() {
		r.fail("read bit", 1)
		return false
	}
	v := r.data[r.pos]>>r.bit&1 != 0
	r.advanceBit()
	return v
}
