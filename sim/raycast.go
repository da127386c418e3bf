package sim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/egowarka/corridor/game"
)

// raycastSnap integrates movement manually and resolves ground contact with
// a single downward ray, clamping the feet to the highest floor hit. It
// performs no horizontal collision resolution; walls are handled only by the
// controller strategy.
type raycastSnap struct {
	world WorldProvider
	opts  Options
}

func (r *raycastSnap) Step(state *MovementState, input InputState, dt float64) StepResult {
	speed := r.opts.WalkSpeed
	if input.Run {
		speed = r.opts.RunSpeed
	}

	pos := state.Pos
	move := game.MoveVector(input.MoveVector, float64(state.Yaw))
	pos[0] += move.X() * speed * dt
	pos[1] += move.Y() * speed * dt

	state.VerticalVel -= r.opts.Gravity * dt
	pos[2] += state.VerticalVel * dt

	res := StepResult{Outcome: StepOutcomeNormal}

	probeStart := mgl64.Vec3{pos.X(), pos.Y(), pos.Z() + game.GroundProbeAbove}
	probeEnd := mgl64.Vec3{pos.X(), pos.Y(), pos.Z() - game.GroundProbeDepth}
	if hit, ok := r.world.RayIntercept(probeStart, probeEnd); ok {
		// Feet convention: the snapped height is the surface itself.
		floorZ := hit.Position.Z()
		if pos.Z() <= floorZ {
			pos[2] = floorZ
			state.VerticalVel = 0
			state.OnGround = true
		} else {
			state.OnGround = false
		}
	} else {
		// A missed ray leaves the character in free fall.
		state.OnGround = false
		res.Outcome = StepOutcomeFreeFall
	}

	if state.JumpRequested && state.OnGround {
		state.VerticalVel = r.opts.JumpSpeed
		state.OnGround = false
		res.Jumped = true
	}

	state.SetPos(pos)
	state.CollideX, state.CollideY = false, false
	state.CollideZ = state.OnGround
	return res
}
