package sim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// InputState represents a single frame's movement intent, produced fresh by
// the input sampler. Jump and Interact are edge-triggered: true for exactly
// one frame per press.
type InputState struct {
	// MoveVector is the raw strafe (x) and forward (y) intent. Each
	// component is -1, 0 or 1 before normalization.
	MoveVector mgl64.Vec2

	Run      bool
	Jump     bool
	Interact bool

	// LookDelta is the raw pointer movement since the last sample.
	LookDelta mgl32.Vec2
}
