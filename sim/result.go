package sim

import "github.com/go-gl/mathgl/mgl64"

// StepOutcome describes which path the engine took for the current step.
type StepOutcome uint8

const (
	StepOutcomeNormal StepOutcome = iota
	StepOutcomeFreeFall
)

// StepResult captures the outcome of a single locomotion step.
type StepResult struct {
	Position    mgl64.Vec3
	VerticalVel float64
	OnGround    bool

	// Jumped reports that this step consumed a jump request, Landed that
	// ground contact was regained. Both feed external audio/animation
	// triggers.
	Jumped bool
	Landed bool

	CollideX, CollideY, CollideZ bool

	Outcome StepOutcome
}
