package binio

import "math"

// WriteBool writes a one byte boolean.
func (w *Writer) WriteBool(v bool) {
	var b uint8
	if v {
		b = 1
	}
	w.WriteUint8(b)
}

// WriteUint8 writes one byte.
func (w *Writer) WriteUint8(v uint8) {
	if b := w.put("write uint8", 1); b != nil {
		b[0] = v
	}
}

// WriteInt8 writes one signed byte.
func (w *Writer) WriteInt8(v int8) { w.WriteUint8(uint8(v)) }

// WriteInt16Endian writes an int16 in byte order e.
func (w *Writer) WriteInt16Endian(v int16, e Endian) { w.WriteUint16Endian(uint16(v), e) }

func (w *Writer) WriteInt16(v int16) { w.WriteInt16Endian(v, DefaultEndian) }
func (w *Writer) WriteInt16Little(v int16) { w.WriteInt16Endian(v, Little) }
func (w *Writer) WriteInt16Big(v int16) { w.WriteInt16Endian(v, Big) }

// WriteUint16Endian writes a uint16 in byte order e.
func (w *Writer) WriteUint16Endian(v uint16, e Endian) {
	if b := w.put("write uint16", 2); b != nil {
		w.resolve(e).order().PutUint16(b, v)
	}
}

func (w *Writer) WriteUint16(v uint16) { w.WriteUint16Endian(v, DefaultEndian) }
func (w *Writer) WriteUint16Little(v uint16) { w.WriteUint16Endian(v, Little) }
func (w *Writer) WriteUint16Big(v uint16) { w.WriteUint16Endian(v, Big) }

// WriteInt32Endian writes an int32 in byte order e.
func (w *Writer) WriteInt32Endian(v int32, e Endian) { w.WriteUint32Endian(uint32(v), e) }

func (w *Writer) WriteInt32(v int32) { w.WriteInt32Endian(v, DefaultEndian) }
func (w *Writer) WriteInt32Little(v int32) { w.WriteInt32Endian(v, Little) }
func (w *Writer) WriteInt32Big(v int32) { w.WriteInt32Endian(v, Big) }

// WriteUint32Endian writes a uint32 in byte order e.
func (w *Writer) WriteUint32Endian(v uint32, e Endian) {
	if b := w.put("write uint32", 4); b != nil {
		w.resolve(e).order().PutUint32(b, v)
	}
}

func (w *Writer) WriteUint32(v uint32) { w.WriteUint32Endian(v, DefaultEndian) }
func (w *Writer) WriteUint32Little(v uint32) { w.WriteUint32Endian(v, Little) }
func (w *Writer) WriteUint32Big(v uint32) { w.WriteUint32Endian(v, Big) }

// WriteInt64Endian writes an int64 in byte order e.
func (w *Writer) WriteInt64Endian(v int64, e Endian) { w.WriteUint64Endian(uint64(v), e) }

func (w *Writer) WriteInt64(v int64) { w.WriteInt64Endian(v, DefaultEndian) }
func (w *Writer) WriteInt64Little(v int64) { w.WriteInt64Endian(v, Little) }
func (w *Writer) WriteInt64Big(v int64) { w.WriteInt64Endian(v, Big) }

// WriteUint64Endian writes a uint64 in byte order e.
func (w *Writer) WriteUint64Endian(v uint64, e Endian) {
	if b := w.put("write uint64", 8); b != nil {
		w.resolve(e).order().PutUint64(b, v)
	}
}

func (w *Writer) WriteUint64(v uint64) { w.WriteUint64Endian(v, DefaultEndian) }
func (w *Writer) WriteUint64Little(v uint64) { w.WriteUint64Endian(v, Little) }
func (w *Writer) WriteUint64Big(v uint64) { w.WriteUint64Endian(v, Big) }

// WriteFloat32Endian writes an IEEE 754 float32 in byte order e.
func (w *Writer) WriteFloat32Endian(v float32, e Endian) { w.WriteUint32Endian(math.Float32bits(v), e) }

func (w *Writer) WriteFloat32(v float32) { w.WriteFloat32Endian(v, DefaultEndian) }
func (w *Writer) WriteFloat32Little(v float32) { w.WriteFloat32Endian(v, Little) }
func (w *Writer) WriteFloat32Big(v float32) { w.WriteFloat32Endian(v, Big) }

// WriteFloat64Endian writes an IEEE 754 float64 in byte order e.
func (w *Writer) WriteFloat64Endian(v float64, e Endian) { w.WriteUint64Endian(math.Float64bits(v), e) }

func (w *Writer) WriteFloat64(v float64) { w.WriteFloat64Endian(v, DefaultEndian) }
func (w *Writer) WriteFloat64Little(v float64) { w.WriteFloat64Endian(v, Little) }
func (w *Writer) WriteFloat64Big(v float64) { w.WriteFloat64Endian(v, Big) }

// WriteVec2fEndian writes the components of a Vec2f in byte order e.
func (w *Writer) WriteVec2fEndian(v Vec2f, e Endian) {
	for _, c := range v {
		w.WriteFloat32Endian(c, e)
	}
}

func (w *Writer) WriteVec2f(v Vec2f) { w.WriteVec2fEndian(v, DefaultEndian) }
func (w *Writer) WriteVec2fLittle(v Vec2f) { w.WriteVec2fEndian(v, Little) }
func (w *Writer) WriteVec2fBig(v Vec2f) { w.WriteVec2fEndian(v, Big) }

// WriteVec3fEndian writes the components of a Vec3f in byte order e.
func (w *Writer) WriteVec3fEndian(v Vec3f, e Endian) {
	for _, c := range v {
		w.WriteFloat32Endian(c, e)
	}
}

func (w *Writer) WriteVec3f(v Vec3f) { w.WriteVec3fEndian(v, DefaultEndian) }
func (w *Writer) WriteVec3fLittle(v Vec3f) { w.WriteVec3fEndian(v, Little) }
func (w *Writer) WriteVec3fBig(v Vec3f) { w.WriteVec3fEndian(v, Big) }

// WriteVec4fEndian writes the components of a Vec4f in byte order e.
func (w *Writer) WriteVec4fEndian(v Vec4f, e Endian) {
	for _, c := range v {
		w.WriteFloat32Endian(c, e)
	}
}

func (w *Writer) WriteVec4f(v Vec4f) { w.WriteVec4fEndian(v, DefaultEndian) }
func (w *Writer) WriteVec4fLittle(v Vec4f) { w.WriteVec4fEndian(v, Little) }
func (w *Writer) WriteVec4fBig(v Vec4f) { w.WriteVec4fEndian(v, Big) }

// WriteVec2dEndian writes the components of a Vec2d in byte order e.
func (w *Writer) WriteVec2dEndian(v Vec2d, e Endian) {
	for _, c := range v {
		w.WriteFloat64Endian(c, e)
	}
}

func (w *Writer) WriteVec2d(v Vec2d) { w.WriteVec2dEndian(v, DefaultEndian) }
func (w *Writer) WriteVec2dLittle(v Vec2d) { w.WriteVec2dEndian(v, Little) }
func (w *Writer) WriteVec2dBig(v Vec2d) { w.WriteVec2dEndian(v, Big) }

// WriteVec3dEndian writes the components of a Vec3d in byte order e.
func (w *Writer) WriteVec3dEndian(v Vec3d, e Endian) {
	for _, c := range v {
		w.WriteFloat64Endian(c, e)
	}
}

func (w *Writer) WriteVec3d(v Vec3d) { w.WriteVec3dEndian(v, DefaultEndian) }
func (w *Writer) WriteVec3dLittle(v Vec3d) { w.WriteVec3dEndian(v, Little) }
func (w *Writer) WriteVec3dBig(v Vec3d) { w.WriteVec3dEndian(v, Big) }

// WriteVec4dEndian writes the components of a Vec4d in byte order e.
func (w *Writer) WriteVec4dEndian(v Vec4d, e Endian) {
	for _, c := range v {
		w.WriteFloat64Endian(c, e)
	}
}

func (w *Writer) WriteVec4d(v Vec4d) { w.WriteVec4dEndian(v, DefaultEndian) }
func (w *Writer) WriteVec4dLittle(v Vec4d) { w.WriteVec4dEndian(v, Little) }
func (w *Writer) WriteVec4dBig(v Vec4d) { w.WriteVec4dEndian(v, Big) }
