package vmath

// Vec3F is a float64 3D vector for world-space transforms
type Vec3F struct {
	X, Y, Z float64
}

// V3FOne is the identity scale
var V3FOne = Vec3F{1, 1, 1}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// V3FMul multiplies component-wise (scale composition)
func V3FMul(a, b Vec3F) Vec3F {
	return Vec3F{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// V3FLerp returns a*(1-t) + b*t per component
func V3FLerp(a, b Vec3F, t float64) Vec3F {
	return Vec3F{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t), Lerp(a.Z, b.Z, t)}
}
