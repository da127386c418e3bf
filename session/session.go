package session

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/egowarka/corridor/cerror"
	"github.com/egowarka/corridor/game"
	"github.com/egowarka/corridor/level"
	"github.com/egowarka/corridor/sim"
	"github.com/egowarka/corridor/ui"
	"github.com/egowarka/corridor/world"
)

// Snapshot is the fully-updated state published after each frame, read by
// the camera, interaction prompts and any other external observer.
type Snapshot struct {
	Position mgl64.Vec3
	Eye      mgl64.Vec3
	Yaw      float32
	Pitch    float32
	Grounded bool

	WorldVersion uint64
	Prompt       string
	Locked       bool
}

// Session is the frame driver: it runs the fixed per-frame pipeline
// (sample input, orientation, locomotion, interaction/UI) on a single
// simulation stream. One Update per rendered frame.
type Session struct {
	log *logrus.Logger

	world *world.World
	sim   *sim.Simulator
	state *sim.MovementState

	door  *level.Door
	lamps *level.Lamps
	hud   *ui.HUD

	dev     Device
	sampler Sampler
	events  Events

	eyeHeight   float64
	breathTimer float64
	paused      bool
}

// NewSession wires the frame driver. The door and lamps may be nil for
// worlds without them; events may be nil to discard signals.
func NewSession(log *logrus.Logger, w *world.World, s *sim.Simulator, state *sim.MovementState, dev Device, opts ...Option) (*Session, error) {
	if log == nil || w == nil || s == nil || state == nil || dev == nil {
		return nil, cerror.New("session: log, world, simulator, state and device are all required")
	}
	ses := &Session{
		log:       log,
		world:     w,
		sim:       s,
		state:     state,
		dev:       dev,
		events:    NopEvents{},
		hud:       &ui.HUD{},
		eyeHeight: game.DefaultEyeHeight,
	}
	for _, o := range opts {
		o(ses)
	}
	return ses, nil
}

// Option configures optional session collaborators.
type Option func(*Session)

func WithDoor(d *level.Door) Option {
	return func(s *Session) { s.door = d }
}

func WithLamps(l *level.Lamps) Option {
	return func(s *Session) { s.lamps = l }
}

func WithEvents(e Events) Option {
	return func(s *Session) { s.events = e }
}

func WithEyeHeight(h float64) Option {
	return func(s *Session) { s.eyeHeight = h }
}

// SetPaused toggles the pause state. While paused the entire state is
// frozen; no partial update leaks through. The prompt doubles as the
// pause overlay and is restored by the next unpaused frame.
func (s *Session) SetPaused(paused bool) {
	s.paused = paused
	if paused {
		s.hud.ShowPrompt("Paused - Esc to resume")
	} else {
		s.hud.ShowPrompt("")
	}
}

// Paused reports the pause state.
func (s *Session) Paused() bool {
	return s.paused
}

// World returns the current collision world snapshot.
func (s *Session) World() *world.World {
	return s.world
}

// HUD returns the prompt/flash state.
func (s *Session) HUD() *ui.HUD {
	return s.hud
}

// Update runs one frame. Order is load-bearing: sample input, then
// orientation, then locomotion, then interaction and UI. Orientation runs
// before translation so camera-relative movement uses this frame's yaw.
func (s *Session) Update(dt float64) {
	in := s.sampler.Sample(s.dev)

	// Pausing freezes everything, including orientation, but the pointer
	// is still re-centered so accumulated deltas are discarded.
	if s.paused {
		s.dev.Recenter()
		return
	}

	s.sim.ApplyLook(s.state, in.LookDelta.X(), in.LookDelta.Y())
	s.dev.Recenter()

	res := s.sim.Step(s.state, in, dt)
	if res.Jumped {
		s.events.HandleJump(res)
	}
	if res.Landed {
		s.events.HandleLand(res)
	}

	s.breathTimer += dt

	if s.door != nil && s.door.Update(dt) {
		s.republishDoor()
	}
	if s.lamps != nil {
		s.lamps.Update(dt)
	}
	s.hud.Update(dt)

	s.checkDoorInteraction(in)
}

// republishDoor publishes a new world snapshot tracking the door collider.
// Snapshots are immutable; the swap happens between steps only.
func (s *Session) republishDoor() {
	if c, solid := s.door.Collider(); solid {
		s.world = s.world.With(c)
	} else {
		s.world = s.world.Without(level.ColliderDoor)
	}
	s.sim.SetWorld(s.world)
}

func (s *Session) checkDoorInteraction(in sim.InputState) {
	if s.door == nil {
		return
	}

	dist := s.door.Center().Sub(s.state.Pos).Len()
	if dist >= game.InteractDistance {
		s.hud.ShowPrompt("")
		return
	}
	if s.door.State() == level.DoorClosed {
		s.hud.ShowPrompt("E — interact")
	} else {
		s.hud.ShowPrompt("")
	}

	if !in.Interact || !s.LookingAtDoor() {
		return
	}
	switch s.door.TryInteract() {
	case level.InteractLocked:
		s.hud.ShowLocked()
		s.events.HandleDoorLocked()
		s.log.Debug("door interaction refused: locked")
	case level.InteractOpening:
		s.events.HandleDoorOpening()
		s.republishDoor()
		s.log.Debug("door opening")
	}
}

// Snapshot returns the fully-updated state for this frame. Only valid
// between Update calls. The eye carries a breathing sway along the body's
// right axis and a vertical bob, both frozen while paused.
func (s *Session) Snapshot() Snapshot {
	sway := math.Sin(s.breathTimer*1.5) * 0.02
	bob := math.Sin(s.breathTimer*2.4) * 0.01
	yaw := mgl64.DegToRad(float64(s.state.Yaw))

	return Snapshot{
		Position: s.state.Pos,
		Eye: s.state.Pos.Add(mgl64.Vec3{
			math.Cos(yaw) * sway,
			math.Sin(yaw) * sway,
			s.eyeHeight + bob,
		}),
		Yaw:          s.state.Yaw,
		Pitch:        s.state.Pitch,
		Grounded:     s.state.OnGround,
		WorldVersion: s.world.Version(),
		Prompt:       s.hud.Prompt(),
		Locked:       s.hud.Locked(),
	}
}
