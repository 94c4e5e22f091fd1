package yamldoc

import (
	"fmt"
	"strconv"

	"github.com/dnakit/athena/b64"
	"github.com/dnakit/athena/binio"
	"github.com/dnakit/athena/ir"
	"github.com/dnakit/athena/wstr"
)

func (w *Writer) scalar(name, v string) {
	w.add(name, ir.FromString(v))
}

// hex renders v with exactly digits hex digits.
func (w *Writer) hex(name string, v uint64, digits int) {
	w.scalar(name, fmt.Sprintf("0x%0*X", digits, v))
}

func (w *Writer) WriteBool(name string, v bool) {
	if v {
		w.scalar(name, "True")
		return
	}
	w.scalar(name, "False")
}

func (w *Writer) WriteInt8(name string, v int8)     { w.hex(name, uint64(uint8(v)), 2) }
func (w *Writer) WriteUint8(name string, v uint8)   { w.hex(name, uint64(v), 2) }
func (w *Writer) WriteInt16(name string, v int16)   { w.hex(name, uint64(uint16(v)), 4) }
func (w *Writer) WriteUint16(name string, v uint16) { w.hex(name, uint64(v), 4) }
func (w *Writer) WriteInt32(name string, v int32)   { w.hex(name, uint64(uint32(v)), 8) }
func (w *Writer) WriteUint32(name string, v uint32) { w.hex(name, uint64(v), 8) }
func (w *Writer) WriteInt64(name string, v int64)   { w.hex(name, uint64(v), 16) }
func (w *Writer) WriteUint64(name string, v uint64) { w.hex(name, v, 16) }

func formatFloat(v float64, bits int) string {
	return strconv.FormatFloat(v, 'f', -1, bits)
}

func (w *Writer) WriteFloat32(name string, v float32) {
	w.scalar(name, formatFloat(float64(v), 32))
}

func (w *Writer) WriteFloat64(name string, v float64) {
	w.scalar(name, formatFloat(v, 64))
}

func (w *Writer) components(name string, bits int, vs ...float64) {
	seq := ir.NewSequence()
	for _, v := range vs {
		seq.Append(ir.FromString(formatFloat(v, bits)))
	}
	w.add(name, seq)
}

func (w *Writer) WriteVec2f(name string, v binio.Vec2f) {
	w.components(name, 32, float64(v[0]), float64(v[1]))
}

func (w *Writer) WriteVec3f(name string, v binio.Vec3f) {
	w.components(name, 32, float64(v[0]), float64(v[1]), float64(v[2]))
}

func (w *Writer) WriteVec4f(name string, v binio.Vec4f) {
	w.components(name, 32, float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3]))
}

func (w *Writer) WriteVec2d(name string, v binio.Vec2d) { w.components(name, 64, v[:]...) }
func (w *Writer) WriteVec3d(name string, v binio.Vec3d) { w.components(name, 64, v[:]...) }
func (w *Writer) WriteVec4d(name string, v binio.Vec4d) { w.components(name, 64, v[:]...) }

// WriteBytes writes b as Base64.
func (w *Writer) WriteBytes(name string, b []byte) {
	w.scalar(name, b64.Encode(b))
}

func (w *Writer) WriteString(name, v string) {
	w.scalar(name, v)
}

// WriteWString writes UTF-16 units as UTF-8 text. Unpaired surrogates are
// logged and written as U+FFFD.
func (w *Writer) WriteWString(name string, units []uint16) {
	s, err := wstr.Decode(units)
	if err != nil {
		w.logger.Warn("invalid wide string", "field", name, "err", err)
	}
	w.scalar(name, s)
}
