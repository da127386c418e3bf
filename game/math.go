package game

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// The world is Z-up: yaw is a rotation about +Z with 0 facing +Y, pitch is
// positive looking up. Angles are in degrees.

// DirectionVector returns the look direction for the given yaw and pitch.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	yawRad, pitchRad := mgl32.DegToRad(yaw), mgl32.DegToRad(pitch)
	m := math32.Cos(pitchRad)

	return mgl32.Vec3{
		-m * math32.Sin(yawRad),
		m * math32.Cos(yawRad),
		math32.Sin(pitchRad),
	}
}

// MoveVector rotates a strafe/forward intent into a world-space horizontal
// direction. The intent is normalized first so diagonal movement is never
// faster than movement along a single axis.
func MoveVector(axis mgl64.Vec2, yaw float64) mgl64.Vec3 {
	if axis.X() == 0 && axis.Y() == 0 {
		return mgl64.Vec3{}
	}
	axis = axis.Normalize()

	yawRad := mgl64.DegToRad(yaw)
	sin, cos := math.Sin(yawRad), math.Cos(yawRad)

	// right = (cos, sin, 0), forward = (-sin, cos, 0).
	return mgl64.Vec3{
		axis.X()*cos - axis.Y()*sin,
		axis.X()*sin + axis.Y()*cos,
		0,
	}
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float64) float64 {
	if num < min {
		return min
	}
	return math.Min(num, max)
}

// Clamp32 clamps the given float32 to the given range.
func Clamp32(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Round64 will round a float64 to a given precision.
func Round64(val float64, precision int) float64 {
	pwr := math.Pow(10, float64(precision))
	return math.Round(val*pwr) / pwr
}

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// Vec32To64 converts a 32-bit vector to a 64-bit one.
func Vec32To64(vec3 mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(vec3[0]), float64(vec3[1]), float64(vec3[2])}
}

// Vec64To32 converts a 64-bit vector to a 32-bit one.
func Vec64To32(vec3 mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(vec3[0]), float32(vec3[1]), float32(vec3[2])}
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl64.Vec3) float64 {
	return vec3.X()*vec3.X() + vec3.Y()*vec3.Y()
}
