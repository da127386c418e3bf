package world

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

func TestBuilderReplacesByName(t *testing.T) {
	w := NewBuilder().
		Add("floor", cube.Box(0, 0, 0, 1, 1, 1)).
		Add("floor", cube.Box(0, 0, 0, 2, 2, 2)).
		Build()
	if w.Len() != 1 {
		t.Fatalf("expected one collider, got %d", w.Len())
	}
	c, ok := w.Collider("floor")
	if !ok {
		t.Fatal("collider missing")
	}
	if c.Box.Max() != (mgl64.Vec3{2, 2, 2}) {
		t.Fatalf("expected the later box to win, got %v", c.Box.Max())
	}
}

func TestSnapshotDerivation(t *testing.T) {
	base := NewBuilder().
		Add("floor", cube.Box(-5, -5, -0.2, 5, 5, 0)).
		Build()

	door := Collider{Name: "door", Box: cube.Box(-0.6, 4, 0, 0.6, 4.1, 2.4)}
	withDoor := base.With(door)

	if _, ok := base.Collider("door"); ok {
		t.Fatal("With must not mutate the source snapshot")
	}
	if withDoor.Len() != 2 {
		t.Fatalf("expected two colliders, got %d", withDoor.Len())
	}
	if withDoor.Version() == base.Version() {
		t.Fatal("adding a collider must change the version")
	}

	removed := withDoor.Without("door")
	if removed.Version() != base.Version() {
		t.Fatal("removing the added collider must restore the version")
	}
	if _, ok := withDoor.Collider("door"); !ok {
		t.Fatal("Without must not mutate the source snapshot")
	}
}

func TestVersionReflectsGeometry(t *testing.T) {
	a := NewBuilder().Add("wall", cube.Box(0, 0, 0, 1, 1, 1)).Build()
	b := NewBuilder().Add("wall", cube.Box(0, 0, 0, 1, 1, 2)).Build()
	c := NewBuilder().Add("wall", cube.Box(0, 0, 0, 1, 1, 1)).Build()
	if a.Version() == b.Version() {
		t.Fatal("differing geometry must produce differing versions")
	}
	if a.Version() != c.Version() {
		t.Fatal("identical geometry must produce identical versions")
	}
}

func TestGetNearbyBBoxes(t *testing.T) {
	w := NewBuilder().
		Add("near", cube.Box(0, 0, 0, 1, 1, 1)).
		Add("far", cube.Box(10, 10, 10, 11, 11, 11)).
		Build()

	boxes := w.GetNearbyBBoxes(cube.Box(-0.5, -0.5, -0.5, 0.5, 0.5, 0.5))
	if len(boxes) != 1 {
		t.Fatalf("expected one nearby box, got %d", len(boxes))
	}
	if boxes[0].Max() != (mgl64.Vec3{1, 1, 1}) {
		t.Fatalf("wrong box returned: %v", boxes[0])
	}
}

func TestRayInterceptClosestHit(t *testing.T) {
	w := NewBuilder().
		Add("back", cube.Box(-5, 8, -5, 5, 9, 5)).
		Add("front", cube.Box(-5, 4, -5, 5, 5, 5)).
		Build()

	res, ok := w.RayIntercept(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 20, 0})
	if !ok {
		t.Fatal("expected a hit")
	}
	if res.Collider != "front" {
		t.Fatalf("expected the closer collider, got %q", res.Collider)
	}
	if res.Position.Y() != 4 {
		t.Fatalf("expected entry at y=4, got %v", res.Position)
	}
	if res.Normal != (mgl64.Vec3{0, -1, 0}) {
		t.Fatalf("expected the facing surface normal, got %v", res.Normal)
	}
}

func TestRayInterceptTieBreaksByInsertionOrder(t *testing.T) {
	// Two colliders sharing the same entry plane: the one inserted first wins.
	w := NewBuilder().
		Add("first", cube.Box(-1, 4, -1, 1, 5, 1)).
		Add("second", cube.Box(-1, 4, -1, 1, 6, 1)).
		Build()

	res, ok := w.RayIntercept(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 20, 0})
	if !ok {
		t.Fatal("expected a hit")
	}
	if res.Collider != "first" {
		t.Fatalf("tie must resolve to the earlier collider, got %q", res.Collider)
	}
}

func TestRayInterceptMiss(t *testing.T) {
	w := NewBuilder().Add("wall", cube.Box(-5, 4, -5, 5, 5, 5)).Build()
	if _, ok := w.RayIntercept(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 20, 10}); ok {
		t.Fatal("expected a miss above the wall")
	}

	// Segment ends before reaching the wall.
	if _, ok := w.RayIntercept(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 3, 0}); ok {
		t.Fatal("expected a miss for a short segment")
	}

	if _, ok := NewBuilder().Build().RayIntercept(mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}); ok {
		t.Fatal("expected a miss in an empty world")
	}
}

func TestRayInterceptDownward(t *testing.T) {
	w := NewBuilder().Add("floor", cube.Box(-5, -5, -0.2, 5, 5, 0)).Build()
	res, ok := w.RayIntercept(mgl64.Vec3{1, 1, 0.5}, mgl64.Vec3{1, 1, -100})
	if !ok {
		t.Fatal("expected a floor hit")
	}
	if res.Position.Z() != 0 {
		t.Fatalf("expected the floor top at z=0, got %v", res.Position)
	}
	if res.Normal != (mgl64.Vec3{0, 0, 1}) {
		t.Fatalf("expected an upward normal, got %v", res.Normal)
	}
}
