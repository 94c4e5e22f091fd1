package yamldoc

import (
	"strconv"
	"strings"

	"github.com/dnakit/athena/b64"
	"github.com/dnakit/athena/binio"
	"github.com/dnakit/athena/ir"
	"github.com/dnakit/athena/wstr"
)

// ReadBool reads name as a boolean: a leading t or T is true, f or F is
// false, otherwise a leading nonzero digit is true.
func (r *Reader) ReadBool(name string) bool {
	s, ok := r.scalar(name)
	if !ok || s == "" {
		return false
	}
	switch c := s[0]; {
	case c == 't' || c == 'T':
		return true
	case c == 'f' || c == 'F':
		return false
	default:
		return c >= '1' && c <= '9'
	}
}

// integer parses name with base prefixes, accepting both signed and
// unsigned text. The caller truncates to its width.
func (r *Reader) integer(name string) uint64 {
	s, ok := r.scalar(name)
	if !ok {
		return 0
	}
	// strconv takes digit separators with base 0; the binary form never has them.
	if strings.ContainsRune(s, '_') {
		r.bad(name, s, "bad integer")
		return 0
	}
	if v, err := strconv.ParseInt(s, 0, 64); err == nil {
		return uint64(v)
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		r.bad(name, s, "bad integer")
		return 0
	}
	return v
}

func (r *Reader) ReadInt8(name string) int8     { return int8(r.integer(name)) }
func (r *Reader) ReadUint8(name string) uint8   { return uint8(r.integer(name)) }
func (r *Reader) ReadInt16(name string) int16   { return int16(r.integer(name)) }
func (r *Reader) ReadUint16(name string) uint16 { return uint16(r.integer(name)) }
func (r *Reader) ReadInt32(name string) int32   { return int32(r.integer(name)) }
func (r *Reader) ReadUint32(name string) uint32 { return uint32(r.integer(name)) }
func (r *Reader) ReadInt64(name string) int64   { return int64(r.integer(name)) }
func (r *Reader) ReadUint64(name string) uint64 { return r.integer(name) }

func (r *Reader) float(name string, bits int) float64 {
	s, ok := r.scalar(name)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(s, bits)
	if err != nil {
		r.bad(name, s, "bad float")
		return 0
	}
	return v
}

func (r *Reader) ReadFloat32(name string) float32 { return float32(r.float(name, 32)) }
func (r *Reader) ReadFloat64(name string) float64 { return r.float(name, 64) }

// components reads up to n floats from the sequence called name. Missing
// trailing components are zero.
func (r *Reader) components(name string, n, bits int) []float64 {
	out := make([]float64, n)
	node, _ := r.resolve(name)
	if node == nil {
		r.missing(name)
		return out
	}
	if node.Type != ir.SequenceType {
		r.bad(name, node.Type.String(), "not a sequence")
		return out
	}
	for i, v := range node.Values {
		if i == n {
			break
		}
		if v.Type != ir.ScalarType {
			r.bad(name, v.Type.String(), "not a scalar")
			continue
		}
		f, err := strconv.ParseFloat(v.String, bits)
		if err != nil {
			r.bad(name, v.String, "bad float")
			continue
		}
		out[i] = f
	}
	return out
}

func (r *Reader) ReadVec2f(name string) binio.Vec2f {
	c := r.components(name, 2, 32)
	return binio.Vec2f{float32(c[0]), float32(c[1])}
}

func (r *Reader) ReadVec3f(name string) binio.Vec3f {
	c := r.components(name, 3, 32)
	return binio.Vec3f{float32(c[0]), float32(c[1]), float32(c[2])}
}

func (r *Reader) ReadVec4f(name string) binio.Vec4f {
	c := r.components(name, 4, 32)
	return binio.Vec4f{float32(c[0]), float32(c[1]), float32(c[2]), float32(c[3])}
}

func (r *Reader) ReadVec2d(name string) binio.Vec2d {
	c := r.components(name, 2, 64)
	return binio.Vec2d{c[0], c[1]}
}

func (r *Reader) ReadVec3d(name string) binio.Vec3d {
	c := r.components(name, 3, 64)
	return binio.Vec3d{c[0], c[1], c[2]}
}

func (r *Reader) ReadVec4d(name string) binio.Vec4d {
	c := r.components(name, 4, 64)
	return binio.Vec4d{c[0], c[1], c[2], c[3]}
}

// ReadBytes decodes the Base64 scalar called name.
func (r *Reader) ReadBytes(name string) []byte {
	s, ok := r.scalar(name)
	if !ok {
		return nil
	}
	return b64.Decode(s)
}

func (r *Reader) ReadString(name string) string {
	s, _ := r.scalar(name)
	return s
}

// ReadWString reads name as UTF-16 code units. Text that cannot be
// transcoded is logged and the units converted so far are returned.
func (r *Reader) ReadWString(name string) []uint16 {
	s, ok := r.scalar(name)
	if !ok {
		return nil
	}
	units, err := wstr.Encode(s)
	if err != nil {
		r.logger.Warn("invalid wide string", "field", name, "path", r.Path(), "err", err)
	}
	return units
}
