package session

import "github.com/egowarka/corridor/sim"

// Events receives observable simulation signals, intended for audio and
// animation triggers. Handlers run synchronously between steps and must not
// mutate the state they receive.
type Events interface {
	HandleJump(state sim.StepResult)
	HandleLand(state sim.StepResult)
	HandleDoorLocked()
	HandleDoorOpening()
}

// NopEvents discards all signals.
type NopEvents struct{}

func (NopEvents) HandleJump(sim.StepResult) {}
func (NopEvents) HandleLand(sim.StepResult) {}
func (NopEvents) HandleDoorLocked()         {}
func (NopEvents) HandleDoorOpening()        {}
