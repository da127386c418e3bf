package sim

import "github.com/egowarka/corridor/game"

// ApplyLook rotates the view by the given raw pointer delta. It must run
// before the locomotion step so camera-relative movement uses the current
// frame's yaw. A zero delta is a strict no-op: probing "has the pointer
// moved" must not churn the stored angles.
func (s *Simulator) ApplyLook(state *MovementState, dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}
	state.Yaw -= dx * s.opts.Sensitivity
	state.Pitch = game.Clamp32(state.Pitch-dy*s.opts.Sensitivity, -s.opts.PitchClamp, s.opts.PitchClamp)
}
