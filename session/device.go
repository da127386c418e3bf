package session

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/egowarka/corridor/sim"
)

// Keys is the raw per-frame key state reported by the input device.
type Keys struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Run      bool
	Jump     bool
	Interact bool
}

// Device abstracts the window/input front-end. PointerDelta is consumed on
// read; Recenter re-centers the pointer and must be called every frame, even
// while paused, so resuming never produces a discontinuity jump.
type Device interface {
	Poll() Keys
	PointerDelta() (dx, dy float32)
	Recenter()
}

// Sampler converts raw key state into a movement intent once per frame,
// deriving the edge-triggered Jump and Interact flags from the previous
// frame's state. This replaces per-key callback registration: no implicit
// fan-out, one explicit struct per frame.
type Sampler struct {
	prev Keys
}

// Sample polls the device and builds this frame's intent.
func (s *Sampler) Sample(d Device) sim.InputState {
	k := d.Poll()
	dx, dy := d.PointerDelta()

	var axis mgl64.Vec2
	if k.Forward {
		axis[1]++
	}
	if k.Backward {
		axis[1]--
	}
	if k.Left {
		axis[0]--
	}
	if k.Right {
		axis[0]++
	}

	in := sim.InputState{
		MoveVector: axis,
		Run:        k.Run,
		Jump:       k.Jump && !s.prev.Jump,
		Interact:   k.Interact && !s.prev.Interact,
		LookDelta:  mgl32.Vec2{dx, dy},
	}
	s.prev = k
	return in
}
