package sim

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/egowarka/corridor/game"
)

// CapsuleController sweeps an AABB approximation of the character capsule
// against the static world, resolving wall sliding and step-up over small
// ledges. It owns gravity integration: the engine hands it a horizontal
// velocity and reads ground contact back, mirroring how a physics-engine
// character controller is driven.
type CapsuleController struct {
	world      WorldProvider
	gravity    float64
	jumpSpeed  float64
	stepHeight float64
}

// NewCapsuleController builds a controller over the given world. The options
// are assumed validated by the simulator constructor.
func NewCapsuleController(w WorldProvider, opts Options) *CapsuleController {
	return &CapsuleController{
		world:      w,
		gravity:    opts.Gravity,
		jumpSpeed:  opts.JumpSpeed,
		stepHeight: game.StepHeight,
	}
}

// Move advances the state by one step with the given horizontal velocity in
// m/s. Gravity is integrated here, not by the caller.
func (c *CapsuleController) Move(state *MovementState, horizontal mgl64.Vec2, dt float64) {
	state.VerticalVel -= c.gravity * dt

	delta := mgl64.Vec3{horizontal.X() * dt, horizontal.Y() * dt, state.VerticalVel * dt}
	bb := state.BoundingBox()
	boxes := c.world.GetNearbyBBoxes(bb.Extend(delta))

	moved, collided := sweptMove(boxes, bb, delta)

	if state.OnGround && (collided[0] || collided[1]) {
		if stepped, ok := c.tryStepUp(boxes, bb, delta, moved); ok {
			moved = stepped
			collided[0] = math.Abs(moved[0]-delta[0]) >= axisEpsilon
			collided[1] = math.Abs(moved[1]-delta[1]) >= axisEpsilon
		}
	}

	state.SetPos(state.Pos.Add(moved))
	state.CollideX, state.CollideY, state.CollideZ = collided[0], collided[1], collided[2]

	// Sticky grounded: contact while moving down grounds the character,
	// and it stays grounded while resting with no vertical motion.
	state.OnGround = (collided[2] && delta.Z() < 0) ||
		(state.OnGround && !collided[2] && math.Abs(delta.Z()) <= axisEpsilon)
	if collided[2] {
		state.VerticalVel = 0
	}
}

// tryStepUp retries a horizontally blocked move lifted by at most the step
// height, then settles back down. The lifted move wins only when it gains
// horizontal distance over the blocked one.
func (c *CapsuleController) tryStepUp(boxes []cube.BBox, bb cube.BBox, delta, blocked mgl64.Vec3) (mgl64.Vec3, bool) {
	up := clipAxisMovement(boxes, bb, 2, c.stepHeight)
	if up <= 0 {
		return mgl64.Vec3{}, false
	}

	liftedBB := bb.Translate(mgl64.Vec3{0, 0, up})
	x := clipAxisMovement(boxes, liftedBB, 0, delta.X())
	liftedBB = liftedBB.Translate(mgl64.Vec3{x, 0, 0})
	y := clipAxisMovement(boxes, liftedBB, 1, delta.Y())
	liftedBB = liftedBB.Translate(mgl64.Vec3{0, y, 0})

	down := clipAxisMovement(boxes, liftedBB, 2, -up)
	stepped := mgl64.Vec3{x, y, up + down}

	if game.Vec3HzDistSqr(stepped) <= game.Vec3HzDistSqr(blocked) {
		return mgl64.Vec3{}, false
	}
	return stepped, true
}

// OnGround reports whether the last Move ended with ground contact.
func (c *CapsuleController) OnGround(state *MovementState) bool {
	return state.OnGround
}

// Jump applies the jump impulse when the character is grounded and reports
// whether it fired.
func (c *CapsuleController) Jump(state *MovementState) bool {
	if !state.OnGround {
		return false
	}
	state.VerticalVel = c.jumpSpeed
	state.OnGround = false
	return true
}

// controllerBased delegates locomotion to the capsule controller: it hands
// it the camera-relative intent velocity, then queries ground contact and
// jump affordance back.
type controllerBased struct {
	controller *CapsuleController
	walkSpeed  float64
	runSpeed   float64
}

func (c *controllerBased) Step(state *MovementState, input InputState, dt float64) StepResult {
	speed := c.walkSpeed
	if input.Run {
		speed = c.runSpeed
	}
	move := game.MoveVector(input.MoveVector, float64(state.Yaw))
	horizontal := mgl64.Vec2{move.X() * speed, move.Y() * speed}

	c.controller.Move(state, horizontal, dt)

	res := StepResult{Outcome: StepOutcomeNormal}
	if state.JumpRequested && c.controller.OnGround(state) {
		res.Jumped = c.controller.Jump(state)
	}
	res.CollideX, res.CollideY, res.CollideZ = state.CollideX, state.CollideY, state.CollideZ
	return res
}
