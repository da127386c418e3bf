package session

import (
	cube32 "github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"

	"github.com/egowarka/corridor/game"
)

// LookingAtDoor reports whether the crosshair ray from the eye intersects
// the door panel within interaction range. Interacting requires both
// proximity and aim, so the door cannot be opened through a wall at a
// diagonal.
func (s *Session) LookingAtDoor() bool {
	if s.door == nil {
		return false
	}
	c, solid := s.door.Collider()
	if !solid {
		return false
	}

	doorBB := cube32.Box(
		float32(c.Box.Min().X()), float32(c.Box.Min().Y()), float32(c.Box.Min().Z()),
		float32(c.Box.Max().X()), float32(c.Box.Max().Y()), float32(c.Box.Max().Z()),
	)

	eye := game.Vec64To32(s.state.Pos)
	eye[2] += float32(s.eyeHeight)
	dir := game.DirectionVector(s.state.Yaw, s.state.Pitch)

	_, ok := trace.BBoxIntercept(doorBB, eye, eye.Add(dir.Mul(game.InteractDistance)))
	return ok
}
