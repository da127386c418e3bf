package level

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/egowarka/corridor/game"
	"github.com/egowarka/corridor/world"
)

// DoorState is the door's lifecycle state.
type DoorState uint8

const (
	DoorClosed DoorState = iota
	DoorOpening
	DoorOpen
)

// InteractResult is the outcome of an interaction attempt.
type InteractResult uint8

const (
	// InteractNone: the interaction had no effect (already open or opening).
	InteractNone InteractResult = iota
	// InteractLocked: the door refused to open.
	InteractLocked
	// InteractOpening: the door started its opening swing.
	InteractOpening
)

// Door is the kinematic obstacle at the end of the corridor. While it swings
// open its collider follows the panel; the session republishes the world
// snapshot whenever the collider changes.
type Door struct {
	hinge    mgl64.Vec3
	unlocked bool

	state DoorState
	angle float32
	tween *gween.Tween
}

// NewDoor places a door with its hinge at the given position.
func NewDoor(hinge mgl64.Vec3, unlocked bool) *Door {
	return &Door{hinge: hinge, unlocked: unlocked}
}

// State returns the current lifecycle state.
func (d *Door) State() DoorState {
	return d.state
}

// Unlock marks the door as openable.
func (d *Door) Unlock() {
	d.unlocked = true
}

// Center returns the door panel's center point, used for interaction range
// checks.
func (d *Door) Center() mgl64.Vec3 {
	return d.hinge.Add(mgl64.Vec3{game.DoorWidth / 2, 0, game.DoorHeight / 2})
}

// TryInteract attempts to open the door.
func (d *Door) TryInteract() InteractResult {
	if !d.unlocked {
		return InteractLocked
	}
	if d.state != DoorClosed {
		return InteractNone
	}
	d.state = DoorOpening
	d.tween = gween.New(0, 90, game.DoorSwingTime, ease.OutQuad)
	return InteractOpening
}

// Update advances the opening animation and reports whether the collider
// changed this frame.
func (d *Door) Update(dt float64) bool {
	if d.state != DoorOpening {
		return false
	}
	angle, finished := d.tween.Update(float32(dt))
	d.angle = angle
	if finished {
		d.state = DoorOpen
	}
	return true
}

// Collider returns the door's current collision box. Once fully open the
// panel clears the doorway and solid is false.
func (d *Door) Collider() (world.Collider, bool) {
	if d.state == DoorOpen {
		return world.Collider{}, false
	}

	// The panel spans from the hinge along +X when closed and swings
	// toward +Y. Its collider is the AABB of the swept panel.
	rad := float64(d.angle) * math.Pi / 180
	tip := mgl64.Vec3{
		d.hinge.X() + game.DoorWidth*math.Cos(rad),
		d.hinge.Y() + game.DoorWidth*math.Sin(rad),
	}

	ht := game.DoorThickness / 2
	minX := math.Min(d.hinge.X(), tip.X()) - ht
	maxX := math.Max(d.hinge.X(), tip.X()) + ht
	minY := math.Min(d.hinge.Y(), tip.Y()) - ht
	maxY := math.Max(d.hinge.Y(), tip.Y()) + ht

	return world.Collider{
		Name: ColliderDoor,
		Box:  cube.Box(minX, minY, d.hinge.Z(), maxX, maxY, d.hinge.Z()+game.DoorHeight),
	}, true
}
