package level

import (
	"math/rand"
	"testing"

	"github.com/egowarka/corridor/game"
)

func TestCorridorBuild(t *testing.T) {
	p := DefaultCorridor()
	door := NewDoor(p.DoorHinge(), false)
	w := p.Build(door)

	for _, name := range []string{
		ColliderFloor, ColliderCeiling,
		ColliderWallWest, ColliderWallEast, ColliderWallBack,
		ColliderDoor,
	} {
		if _, ok := w.Collider(name); !ok {
			t.Fatalf("missing collider %q", name)
		}
	}
	if w.Len() != 6 {
		t.Fatalf("expected 6 colliders, got %d", w.Len())
	}

	floor, _ := w.Collider(ColliderFloor)
	if floor.Box.Max().Z() != 0 {
		t.Fatalf("floor surface must sit at z=0, got %v", floor.Box.Max().Z())
	}

	spawn := p.SpawnPoint()
	if spawn.Y() >= 0 || spawn.Z() != 0 {
		t.Fatalf("spawn must be near the closed end on the floor, got %v", spawn)
	}

	hinge := p.DoorHinge()
	if hinge.Y() <= 0 {
		t.Fatalf("door hinge must be at the far end, got %v", hinge)
	}
	if hinge.X() != -game.DoorWidth/2 {
		t.Fatalf("door must be centered in the corridor, hinge x=%v", hinge.X())
	}
}

func TestCorridorBuildWithoutDoor(t *testing.T) {
	w := DefaultCorridor().Build(nil)
	if w.Len() != 5 {
		t.Fatalf("expected 5 colliders without a door, got %d", w.Len())
	}
	if _, ok := w.Collider(ColliderDoor); ok {
		t.Fatal("unexpected door collider")
	}
}

func TestCorridorDoorInsideWalls(t *testing.T) {
	p := DefaultCorridor()
	door := NewDoor(p.DoorHinge(), false)
	c, solid := door.Collider()
	if !solid {
		t.Fatal("expected a solid closed door")
	}
	hw := p.Width / 2
	if c.Box.Min().X() < -hw || c.Box.Max().X() > hw {
		t.Fatalf("door collider exceeds the corridor width: %v", c.Box)
	}
	if c.Box.Max().Y() > p.Length/2 {
		t.Fatalf("door collider exceeds the corridor length: %v", c.Box)
	}
}

func TestLampsFlicker(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	l := NewLamps(4, 1.0, rng)
	if l.Count() != 4 {
		t.Fatalf("expected 4 lamps, got %d", l.Count())
	}

	for loopN := 0; loopN < 600; loopN++ {
		l.Update(1.0 / 60.0)
	}

	changed := 0
	for i := 0; i < l.Count(); i++ {
		v := l.Intensity(i)
		if v < 0.5 || v > 1.0 {
			t.Fatalf("lamp %d intensity out of range: %v", i, v)
		}
		if v != 1.0 {
			changed++
		}
	}
	if changed != 1 {
		t.Fatalf("exactly one lamp flickers, got %d changed", changed)
	}
}

func TestLampsDefaultCount(t *testing.T) {
	l := NewLamps(0, 1.0, rand.New(rand.NewSource(1)))
	if l.Count() != game.DefaultLampCount {
		t.Fatalf("expected the default lamp count, got %d", l.Count())
	}
}
