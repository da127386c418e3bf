package sim

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/egowarka/corridor/cerror"
	"github.com/egowarka/corridor/game"
	"github.com/egowarka/corridor/world"
)

// WorldProvider bridges the static collision world for ground probes and
// sweep queries. The provider must never be mutated during a step.
type WorldProvider interface {
	GetNearbyBBoxes(aabb cube.BBox) []cube.BBox
	RayIntercept(start, end mgl64.Vec3) (world.RayResult, bool)
}

// StrategyName selects a locomotion strategy at configuration time.
type StrategyName string

const (
	// StrategyControllerBased resolves movement through a swept capsule
	// controller with wall sliding and step-up.
	StrategyControllerBased StrategyName = "controller"
	// StrategyRaycastSnap integrates movement manually and snaps the
	// character to the floor found by a single downward ray.
	StrategyRaycastSnap StrategyName = "raycast"
)

// Options configure a Simulator. Zero or negative values are configuration
// errors rejected at construction, never silently replaced with defaults.
type Options struct {
	Strategy StrategyName

	WalkSpeed float64
	RunSpeed  float64
	Gravity   float64
	JumpSpeed float64

	Sensitivity float32
	PitchClamp  float32

	// MaxStepDelta caps dt before integration. Unbounded dt on a frame
	// stall tunnels the character past the ground probe's valid range.
	MaxStepDelta float64
}

// DefaultOptions returns the standard corridor movement tuning.
func DefaultOptions(strategy StrategyName) Options {
	return Options{
		Strategy:     strategy,
		WalkSpeed:    game.DefaultWalkSpeed,
		RunSpeed:     game.DefaultRunSpeed,
		Gravity:      game.DefaultGravity,
		JumpSpeed:    game.DefaultJumpSpeed,
		Sensitivity:  game.DefaultSensitivity,
		PitchClamp:   game.DefaultPitchClamp,
		MaxStepDelta: game.DefaultMaxStepDelta,
	}
}

// Validate reports the first configuration error in the options.
func (o Options) Validate() error {
	switch {
	case o.WalkSpeed <= 0:
		return cerror.New("sim: walk speed must be positive, got %v", o.WalkSpeed)
	case o.RunSpeed <= 0:
		return cerror.New("sim: run speed must be positive, got %v", o.RunSpeed)
	case o.Gravity <= 0:
		return cerror.New("sim: gravity must be positive, got %v", o.Gravity)
	case o.JumpSpeed <= 0:
		return cerror.New("sim: jump speed must be positive, got %v", o.JumpSpeed)
	case o.Sensitivity <= 0:
		return cerror.New("sim: sensitivity must be positive, got %v", o.Sensitivity)
	case o.PitchClamp <= 0 || o.PitchClamp > game.MaxPitchClamp:
		return cerror.New("sim: pitch clamp must be in (0, %v], got %v", game.MaxPitchClamp, o.PitchClamp)
	case o.MaxStepDelta <= 0:
		return cerror.New("sim: max step delta must be positive, got %v", o.MaxStepDelta)
	}
	switch o.Strategy {
	case StrategyControllerBased, StrategyRaycastSnap:
		return nil
	default:
		return cerror.New("sim: unknown locomotion strategy %q", o.Strategy)
	}
}

// Strategy advances the character by one step. Implementations must consume
// state.JumpRequested at most once and leave clearing it to the Simulator.
type Strategy interface {
	Step(state *MovementState, input InputState, dt float64) StepResult
}

// Simulator is the locomotion engine: it converts movement intent into a
// physically consistent character state once per rendered frame.
type Simulator struct {
	world    WorldProvider
	opts     Options
	strategy Strategy
}

// NewSimulator validates the options and builds the configured strategy.
func NewSimulator(w WorldProvider, opts Options) (*Simulator, error) {
	if w == nil {
		return nil, cerror.New("sim: world provider is required")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	s := &Simulator{world: w, opts: opts}
	switch opts.Strategy {
	case StrategyControllerBased:
		s.strategy = &controllerBased{
			controller: NewCapsuleController(w, opts),
			walkSpeed:  opts.WalkSpeed,
			runSpeed:   opts.RunSpeed,
		}
	case StrategyRaycastSnap:
		s.strategy = &raycastSnap{world: w, opts: opts}
	}
	return s, nil
}

// Options returns the simulator configuration.
func (s *Simulator) Options() Options {
	return s.opts
}

// SetWorld swaps the collision world snapshot. Must only be called between
// steps, never while one is running.
func (s *Simulator) SetWorld(w WorldProvider) {
	s.world = w
	switch st := s.strategy.(type) {
	case *controllerBased:
		st.controller.world = w
	case *raycastSnap:
		st.world = w
	}
}

// Step advances the character by one frame. dt is clamped to MaxStepDelta
// before any integration. The jump request is consumed exactly once: it is
// cleared even when the strategy could not honor it.
func (s *Simulator) Step(state *MovementState, input InputState, dt float64) StepResult {
	if dt > s.opts.MaxStepDelta {
		dt = s.opts.MaxStepDelta
	}
	if dt < 0 {
		dt = 0
	}

	if input.Jump {
		state.JumpRequested = true
	}

	wasOnGround := state.OnGround
	res := s.strategy.Step(state, input, dt)
	state.JumpRequested = false

	res.Landed = !wasOnGround && state.OnGround && !res.Jumped
	res.Position = state.Pos
	res.VerticalVel = state.VerticalVel
	res.OnGround = state.OnGround
	return res
}
