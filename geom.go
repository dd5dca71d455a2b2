package printf

// Plain-data geometric types for the %v, %q and %m handlers. The engine
// only reads components; construct and manipulate them with whatever math
// library the caller uses.
type (
	Vec2 struct{ X, Y float32 }
	Vec3 struct{ X, Y, Z float32 }
	Vec4 struct{ X, Y, Z, W float32 }

	// Quat is a quaternion in (x, y, z, w) component order.
	Quat struct{ X, Y, Z, W float32 }

	// Mat2 and Mat4 are column-major.
	Mat2 struct{ C1, C2 Vec2 }
	Mat4 struct{ C1, C2, C3, C4 Vec4 }
)
