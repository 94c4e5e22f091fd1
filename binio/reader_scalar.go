package binio

import "math"

// ReadBool reads a one byte boolean; any nonzero byte is true.
func (r *Reader) ReadBool() bool {
	b := r.take("read bool", 1)
	return b != nil && b[0] != 0
}

// ReadUint8 reads one byte.
func (r *Reader) ReadUint8() uint8 {
	b := r.take("read uint8", 1)
	if b == nil {
		return 0
	}
	return b[0]
}

// ReadInt8 reads one signed byte.
func (r *Reader) ReadInt8() int8 { return int8(r.ReadUint8()) }

// ReadInt16Endian reads an int16 in byte order e.
func (r *Reader) ReadInt16Endian(e Endian) int16 { return int16(r.ReadUint16Endian(e)) }

func (r *Reader) ReadInt16() int16 { return r.ReadInt16Endian(DefaultEndian) }
func (r *Reader) ReadInt16Little() int16 { return r.ReadInt16Endian(Little) }
func (r *Reader) ReadInt16Big() int16 { return r.ReadInt16Endian(Big) }

// ReadUint16Endian reads a uint16 in byte order e.
func (r *Reader) ReadUint16Endian(e Endian) uint16 {
	b := r.take("read uint16", 2)
	if b == nil {
		return 0
	}
	return r.resolve(e).order().Uint16(b)
}

func (r *Reader) ReadUint16() uint16 { return r.ReadUint16Endian(DefaultEndian) }
func (r *Reader) ReadUint16Little() uint16 { return r.ReadUint16Endian(Little) }
func (r *Reader) ReadUint16Big() uint16 { return r.ReadUint16Endian(Big) }

// ReadInt32Endian reads an int32 in byte order e.
func (r *Reader) ReadInt32Endian(e Endian) int32 { return int32(r.ReadUint32Endian(e)) }

func (r *Reader) ReadInt32() int32 { return r.ReadInt32Endian(DefaultEndian) }
func (r *Reader) ReadInt32Little() int32 { return r.ReadInt32Endian(Little) }
func (r *Reader) ReadInt32Big() int32 { return r.ReadInt32Endian(Big) }

// ReadUint32Endian reads a uint32 in byte order e.
func (r *Reader) ReadUint32Endian(e Endian) uint32 {
	b := r.take("read uint32", 4)
	if b == nil {
		return 0
	}
	return r.resolve(e).order().Uint32(b)
}

func (r *Reader) ReadUint32() uint32 { return r.ReadUint32Endian(DefaultEndian) }
func (r *Reader) ReadUint32Little() uint32 { return r.ReadUint32Endian(Little) }
func (r *Reader) ReadUint32Big() uint32 { return r.ReadUint32Endian(Big) }

// ReadInt64Endian reads an int64 in byte order e.
func (r *Reader) ReadInt64Endian(e Endian) int64 { return int64(r.ReadUint64Endian(e)) }

func (r *Reader) ReadInt64() int64 { return r.ReadInt64Endian(DefaultEndian) }
func (r *Reader) ReadInt64Little() int64 { return r.ReadInt64Endian(Little) }
func (r *Reader) ReadInt64Big() int64 { return r.ReadInt64Endian(Big) }

// ReadUint64Endian reads a uint64 in byte order e.
func (r *Reader) ReadUint64Endian(e Endian) uint64 {
	b := r.take("read uint64", 8)
	if b == nil {
		return 0
	}
	return r.resolve(e).order().Uint64(b)
}

func (r *Reader) ReadUint64() uint64 { return r.ReadUint64Endian(DefaultEndian) }
func (r *Reader) ReadUint64Little() uint64 { return r.ReadUint64Endian(Little) }
func (r *Reader) ReadUint64Big() uint64 { return r.ReadUint64Endian(Big) }

// ReadFloat32Endian reads an IEEE 754 float32 in byte order e.
func (r *Reader) ReadFloat32Endian(e Endian) float32 { return math.Float32frombits(r.ReadUint32Endian(e)) }

func (r *Reader) ReadFloat32() float32 { return r.ReadFloat32Endian(DefaultEndian) }
func (r *Reader) ReadFloat32Little() float32 { return r.ReadFloat32Endian(Little) }
func (r *Reader) ReadFloat32Big() float32 { return r.ReadFloat32Endian(Big) }

// ReadFloat64Endian reads an IEEE 754 float64 in byte order e.
func (r *Reader) ReadFloat64Endian(e Endian) float64 { return math.Float64frombits(r.ReadUint64Endian(e)) }

func (r *Reader) ReadFloat64() float64 { return r.ReadFloat64Endian(DefaultEndian) }
func (r *Reader) ReadFloat64Little() float64 { return r.ReadFloat64Endian(Little) }
func (r *Reader) ReadFloat64Big() float64 { return r.ReadFloat64Endian(Big) }

// ReadVec2fEndian reads the components of a Vec2f in byte order e.
func (r *Reader) ReadVec2fEndian(e Endian) Vec2f {
	var v Vec2f
	for i := range v {
		v[i] = r.ReadFloat32Endian(e)
	}
	return v
}

func (r *Reader) ReadVec2f() Vec2f { return r.ReadVec2fEndian(DefaultEndian) }
func (r *Reader) ReadVec2fLittle() Vec2f { return r.ReadVec2fEndian(Little) }
func (r *Reader) ReadVec2fBig() Vec2f { return r.ReadVec2fEndian(Big) }

// ReadVec3fEndian reads the components of a Vec3f in byte order e.
func (r *Reader) ReadVec3fEndian(e Endian) Vec3f {
	var v Vec3f
	for i := range v {
		v[i] = r.ReadFloat32Endian(e)
	}
	return v
}

func (r *Reader) ReadVec3f() Vec3f { return r.ReadVec3fEndian(DefaultEndian) }
func (r *Reader) ReadVec3fLittle() Vec3f { return r.ReadVec3fEndian(Little) }
func (r *Reader) ReadVec3fBig() Vec3f { return r.ReadVec3fEndian(Big) }

// ReadVec4fEndian reads the components of a Vec4f in byte order e.
func (r *Reader) ReadVec4fEndian(e Endian) Vec4f {
	var v Vec4f
	for i := range v {
		v[i] = r.ReadFloat32Endian(e)
	}
	return v
}

func (r *Reader) ReadVec4f() Vec4f { return r.ReadVec4fEndian(DefaultEndian) }
func (r *Reader) ReadVec4fLittle() Vec4f { return r.ReadVec4fEndian(Little) }
func (r *Reader) ReadVec4fBig() Vec4f { return r.ReadVec4fEndian(Big) }

// ReadVec2dEndian reads the components of a Vec2d in byte order e.
func (r *Reader) ReadVec2dEndian(e Endian) Vec2d {
	var v Vec2d
	for i := range v {
		v[i] = r.ReadFloat64Endian(e)
	}
	return v
}

func (r *Reader) ReadVec2d() Vec2d { return r.ReadVec2dEndian(DefaultEndian) }
func (r *Reader) ReadVec2dLittle() Vec2d { return r.ReadVec2dEndian(Little) }
func (r *Reader) ReadVec2dBig() Vec2d { return r.ReadVec2dEndian(Big) }

// ReadVec3dEndian reads the components of a Vec3d in byte order e.
func (r *Reader) ReadVec3dEndian(e Endian) Vec3d {
	var v Vec3d
	for i := range v {
		v[i] = r.ReadFloat64Endian(e)
	}
	return v
}

func (r *Reader) ReadVec3d() Vec3d { return r.ReadVec3dEndian(DefaultEndian) }
func (r *Reader) ReadVec3dLittle() Vec3d { return r.ReadVec3dEndian(Little) }
func (r *Reader) ReadVec3dBig() Vec3d { return r.ReadVec3dEndian(Big) }

// ReadVec4dEndian reads the components of a Vec4d in byte order e.
func (r *Reader) ReadVec4dEndian(e Endian) Vec4d {
	var v Vec4d
	for i := range v {
		v[i] = r.ReadFloat64Endian(e)
	}
	return v
}

func (r *Reader) ReadVec4d() Vec4d { return r.ReadVec4dEndian(DefaultEndian) }
func (r *Reader) ReadVec4dLittle() Vec4d { return r.ReadVec4dEndian(Little) }
func (r *Reader) ReadVec4dBig() Vec4d { return r.ReadVec4dEndian(Big) }
