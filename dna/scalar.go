package dna

import "github.com/dnakit/athena/binio"

// Scalar is the set of fixed-width types a Value or Vector descriptor may
// carry.
type Scalar interface {
	bool | int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 |
		float32 | float64 |
		binio.Vec2f | binio.Vec3f | binio.Vec4f |
		binio.Vec2d | binio.Vec3d | binio.Vec4d
}

// Read reads one T in byte order e; binio.DefaultEndian uses the stream's.
func Read[T Scalar](r *binio.Reader, e binio.Endian) T {
	var v T
	switch p := any(&v).(type) {
	case *bool:
		*p = r.ReadBool()
	case *int8:
		*p = r.ReadInt8()
	case *uint8:
		*p = r.ReadUint8()
	case *int16:
		*p = r.ReadInt16Endian(e)
	case *uint16:
		*p = r.ReadUint16Endian(e)
	case *int32:
		*p = r.ReadInt32Endian(e)
	case *uint32:
		*p = r.ReadUint32Endian(e)
	case *int64:
		*p = r.ReadInt64Endian(e)
	case *uint64:
		*p = r.ReadUint64Endian(e)
	case *float32:
		*p = r.ReadFloat32Endian(e)
	case *float64:
		*p = r.ReadFloat64Endian(e)
	case *binio.Vec2f:
		*p = r.ReadVec2fEndian(e)
	case *binio.Vec3f:
		*p = r.ReadVec3fEndian(e)
	case *binio.Vec4f:
		*p = r.ReadVec4fEndian(e)
	case *binio.Vec2d:
		*p = r.ReadVec2dEndian(e)
	case *binio.Vec3d:
		*p = r.ReadVec3dEndian(e)
	case *binio.Vec4d:
		*p = r.ReadVec4dEndian(e)
	}
	return v
}

// Write writes v in byte order e; binio.DefaultEndian uses the stream's.
func Write[T Scalar](w *binio.Writer, v T, e binio.Endian) {
	switch v := any(v).(type) {
	case bool:
		w.WriteBool(v)
	case int8:
		w.WriteInt8(v)
	case uint8:
		w.WriteUint8(v)
	case int16:
		w.WriteInt16Endian(v, e)
	case uint16:
		w.WriteUint16Endian(v, e)
	case int32:
		w.WriteInt32Endian(v, e)
	case uint32:
		w.WriteUint32Endian(v, e)
	case int64:
		w.WriteInt64Endian(v, e)
	case uint64:
		w.WriteUint64Endian(v, e)
	case float32:
		w.WriteFloat32Endian(v, e)
	case float64:
		w.WriteFloat64Endian(v, e)
	case binio.Vec2f:
		w.WriteVec2fEndian(v, e)
	case binio.Vec3f:
		w.WriteVec3fEndian(v, e)
	case binio.Vec4f:
		w.WriteVec4fEndian(v, e)
	case binio.Vec2d:
		w.WriteVec2dEndian(v, e)
	case binio.Vec3d:
		w.WriteVec3dEndian(v, e)
	case binio.Vec4d:
		w.WriteVec4dEndian(v, e)
	}
}

// SizeOf returns the wire width of T in bytes.
func SizeOf[T Scalar]() int {
	var v T
	switch any(v).(type) {
	case bool, int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	case int64, uint64, float64, binio.Vec2f:
		return 8
	case binio.Vec3f:
		return 12
	case binio.Vec4f, binio.Vec2d:
		return 16
	case binio.Vec3d:
		return 24
	case binio.Vec4d:
		return 32
	}
	panic("unreachable")
}
