package binio

// Fixed-size float vectors, stored component by component.
type (
	Vec2f [2]float32
	Vec3f [3]float32
	Vec4f [4]float32
	Vec2d [2]float64
	Vec3d [3]float64
	Vec4d [4]float64
)
