package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

func vecNear(a, b mgl64.Vec3, eps float64) bool {
	return math.Abs(a.X()-b.X()) < eps &&
		math.Abs(a.Y()-b.Y()) < eps &&
		math.Abs(a.Z()-b.Z()) < eps
}

func TestMoveVector(t *testing.T) {
	for _, tc := range []struct {
		name string
		axis mgl64.Vec2
		yaw  float64
		want mgl64.Vec3
	}{
		{"idle", mgl64.Vec2{0, 0}, 0, mgl64.Vec3{}},
		{"forward", mgl64.Vec2{0, 1}, 0, mgl64.Vec3{0, 1, 0}},
		{"backward", mgl64.Vec2{0, -1}, 0, mgl64.Vec3{0, -1, 0}},
		{"strafe right", mgl64.Vec2{1, 0}, 0, mgl64.Vec3{1, 0, 0}},
		{"forward turned left", mgl64.Vec2{0, 1}, 90, mgl64.Vec3{-1, 0, 0}},
		{"forward turned around", mgl64.Vec2{0, 1}, 180, mgl64.Vec3{0, -1, 0}},
		{"strafe right turned left", mgl64.Vec2{1, 0}, 90, mgl64.Vec3{0, 1, 0}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := MoveVector(tc.axis, tc.yaw)
			if !vecNear(got, tc.want, 1e-12) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMoveVectorNormalizesDiagonals(t *testing.T) {
	got := MoveVector(mgl64.Vec2{1, 1}, 0)
	if math.Abs(got.Len()-1) > 1e-12 {
		t.Fatalf("diagonal intent must have unit length, got %v", got.Len())
	}
	inv := math.Sqrt2 / 2
	if !vecNear(got, mgl64.Vec3{inv, inv, 0}, 1e-12) {
		t.Fatalf("got %v", got)
	}
}

func TestDirectionVector(t *testing.T) {
	for _, tc := range []struct {
		name       string
		yaw, pitch float32
		want       mgl32.Vec3
	}{
		{"level ahead", 0, 0, mgl32.Vec3{0, 1, 0}},
		{"turned left", 90, 0, mgl32.Vec3{-1, 0, 0}},
		{"straight up", 0, 90, mgl32.Vec3{0, 0, 1}},
		{"straight down", 0, -90, mgl32.Vec3{0, 0, -1}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := DirectionVector(tc.yaw, tc.pitch)
			if got.Sub(tc.want).Len() > 1e-6 {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}

	// A look direction always has unit length.
	d := DirectionVector(33, -40)
	if math.Abs(float64(d.Len())-1) > 1e-6 {
		t.Fatalf("expected unit length, got %v", d.Len())
	}
}

func TestClamps(t *testing.T) {
	if got := ClampFloat(5, 0, 1); got != 1 {
		t.Fatalf("got %v", got)
	}
	if got := ClampFloat(-5, 0, 1); got != 0 {
		t.Fatalf("got %v", got)
	}
	if got := ClampFloat(0.5, 0, 1); got != 0.5 {
		t.Fatalf("got %v", got)
	}
	if got := Clamp32(100, -75, 75); got != 75 {
		t.Fatalf("got %v", got)
	}
	if got := Clamp32(-100, -75, 75); got != -75 {
		t.Fatalf("got %v", got)
	}
}

func TestVec3HzDistSqr(t *testing.T) {
	if got := Vec3HzDistSqr(mgl64.Vec3{3, 4, 100}); got != 25 {
		t.Fatalf("vertical component must be ignored, got %v", got)
	}
}
