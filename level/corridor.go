package level

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/egowarka/corridor/game"
	"github.com/egowarka/corridor/world"
)

// Collider names of the static corridor geometry.
const (
	ColliderFloor    = "floor"
	ColliderCeiling  = "ceiling"
	ColliderWallWest = "wall_west"
	ColliderWallEast = "wall_east"
	ColliderWallBack = "wall_back"
	ColliderDoor     = "door"
)

// CorridorParams describe the confined level: a corridor running along +Y
// with the floor surface at z=0 and a door at the far end.
type CorridorParams struct {
	Length        float64
	Width         float64
	Height        float64
	WallThickness float64
}

// DefaultCorridor returns the standard corridor dimensions.
func DefaultCorridor() CorridorParams {
	return CorridorParams{
		Length:        game.CorridorLength,
		Width:         game.CorridorWidth,
		Height:        game.CorridorHeight,
		WallThickness: 0.1,
	}
}

// SpawnPoint returns the character spawn near the corridor's closed end.
func (p CorridorParams) SpawnPoint() mgl64.Vec3 {
	return mgl64.Vec3{0, -p.Length/2 + 2.0, 0}
}

// DoorHinge returns the world position of the door hinge: the left edge of
// the doorway at the far end of the corridor, at floor height.
func (p CorridorParams) DoorHinge() mgl64.Vec3 {
	return mgl64.Vec3{-game.DoorWidth / 2, p.Length/2 - 0.2, 0}
}

// Build assembles the static collision world: floor, ceiling, both side
// walls, the back wall and the closed door slab.
func (p CorridorParams) Build(door *Door) *world.World {
	hw, hl := p.Width/2, p.Length/2
	t := p.WallThickness

	b := world.NewBuilder().
		Add(ColliderFloor, cube.Box(-hw, -hl, -0.2, hw, hl, 0)).
		Add(ColliderCeiling, cube.Box(-hw, -hl, p.Height, hw, hl, p.Height+0.2)).
		Add(ColliderWallWest, cube.Box(-hw-t, -hl, 0, -hw, hl, p.Height)).
		Add(ColliderWallEast, cube.Box(hw, -hl, 0, hw+t, hl, p.Height)).
		Add(ColliderWallBack, cube.Box(-hw, -hl-t, 0, hw, -hl, p.Height))

	if door != nil {
		if c, solid := door.Collider(); solid {
			b.Add(c.Name, c.Box)
		}
	}
	return b.Build()
}
