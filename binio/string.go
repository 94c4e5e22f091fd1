package binio

import (
	"bytes"

	"github.com/dnakit/athena/wstr"
)

// ReadString reads bytes up to and including a NUL terminator.
func (r *Reader) ReadString() string {
	if r.err != nil {
		return ""
	}
	r.normalize()
	rest := r.data[r.pos:]
	i := bytes.IndexByte(rest, 0)
	if i < 0 {
		r.fail("read string", int64(len(rest)+1))
		return ""
	}
	r.pos += int64(i + 1)
	return string(rest[:i])
}

// ReadFixedString reads a string stored in exactly n bytes. The text ends at
// the first NUL or after n bytes; the cursor always lands at start+n.
func (r *Reader) ReadFixedString(n int) string {
	b := r.take("read fixed string", n)
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// WriteString writes s followed by a NUL terminator.
func (w *Writer) WriteString(s string) {
	b := w.put("write string", len(s)+1)
	if b == nil {
		return
	}
	copy(b, s)
	b[len(s)] = 0
}

// WriteFixedString writes s into exactly n bytes, zero padding short text and
// truncating long text without a terminator.
func (w *Writer) WriteFixedString(s string, n int) {
	b := w.put("write fixed string", n)
	if b == nil {
		return
	}
	c := copy(b, s)
	clear(b[c:])
}

// ReadWString reads UTF-16 code units up to and including a zero unit.
func (r *Reader) ReadWString(e Endian) []uint16 {
	var units []uint16
	for {
		u := r.ReadUint16Endian(e)
		if r.err != nil || u == 0 {
			return units
		}
		units = append(units, u)
	}
}

// ReadFixedWString reads a wide string stored in exactly n units.
func (r *Reader) ReadFixedWString(n int, e Endian) []uint16 {
	b := r.take("read fixed wide string", 2*n)
	if b == nil {
		return nil
	}
	order := r.resolve(e).order()
	units := make([]uint16, 0, n)
	for i := 0; i < n; i++ {
		u := order.Uint16(b[2*i:])
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	return units
}

// WriteWString writes units followed by a zero unit.
func (w *Writer) WriteWString(units []uint16, e Endian) {
	for _, u := range units {
		w.WriteUint16Endian(u, e)
	}
	w.WriteUint16Endian(0, e)
}

// WriteFixedWString writes units into exactly n units, zero padding or
// truncating.
func (w *Writer) WriteFixedWString(units []uint16, n int, e Endian) {
	b := w.put("write fixed wide string", 2*n)
	if b == nil {
		return
	}
	order := w.resolve(e).order()
	clear(b)
	for i := 0; i < n && i < len(units); i++ {
		order.PutUint16(b[2*i:], units[i])
	}
}

// ReadWStringAsString reads a wide string and transcodes it to UTF-8.
func (r *Reader) ReadWStringAsString(e Endian) string {
	return r.decode(r.ReadWString(e))
}

// ReadFixedWStringAsString reads a fixed wide string and transcodes it to
// UTF-8.
func (r *Reader) ReadFixedWStringAsString(n int, e Endian) string {
	return r.decode(r.ReadFixedWString(n, e))
}

// WriteWStringAsString transcodes s to UTF-16 and writes it terminated.
func (w *Writer) WriteWStringAsString(s string, e Endian) {
	w.WriteWString(w.encode(s), e)
}

// WriteFixedWStringAsString transcodes s to UTF-16 and writes it into
// exactly n units.
func (w *Writer) WriteFixedWStringAsString(s string, n int, e Endian) {
	w.WriteFixedWString(w.encode(s), n, e)
}

func (r *Reader) decode(units []uint16) string {
	s, err := wstr.Decode(units)
	if err != nil {
		r.logger.Warn("invalid wide string", "position", r.pos, "err", err)
	}
	return s
}

func (w *Writer) encode(s string) []uint16 {
	units, err := wstr.Encode(s)
	if err != nil {
		w.logger.Warn("invalid string for wide encoding", "position", w.pos, "err", err)
	}
	return units
}
