package sim

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/egowarka/corridor/game"
)

// MovementState holds the character state owned by the frame driver and
// updated once per step. Pos tracks the FEET of the character; the eye
// position is derived by the session when placing the camera.
type MovementState struct {
	Pos, LastPos mgl64.Vec3

	// VerticalVel is the signed vertical speed in m/s, negative while
	// falling. Horizontal speed is derived from intent each step and carries no
	// momentum between steps.
	VerticalVel float64

	Yaw, Pitch float32

	OnGround bool

	// JumpRequested is latched from an edge-triggered input and cleared
	// unconditionally at the end of every step, whether or not it fired.
	JumpRequested bool

	CollideX, CollideY, CollideZ bool
}

// NewMovementState returns a state spawned at the given feet position, at
// rest and airborne until the first step resolves ground contact.
func NewMovementState(spawn mgl64.Vec3) *MovementState {
	return &MovementState{Pos: spawn, LastPos: spawn}
}

// SetPos updates the position, keeping the previous one.
func (s *MovementState) SetPos(newPos mgl64.Vec3) {
	s.LastPos = s.Pos
	s.Pos = newPos
}

// BoundingBox returns the axis-aligned box approximating the character
// capsule, anchored at the feet.
func (s *MovementState) BoundingBox() cube.BBox {
	return cube.Box(
		s.Pos[0]-game.PlayerRadius,
		s.Pos[1]-game.PlayerRadius,
		s.Pos[2],
		s.Pos[0]+game.PlayerRadius,
		s.Pos[1]+game.PlayerRadius,
		s.Pos[2]+game.PlayerHeight,
	).GrowVec3(mgl64.Vec3{-1e-4, -1e-4, 0})
}
