package main

import "github.com/egowarka/corridor/session"

// scriptedDevice replays a fixed input timeline so the simulation can run
// headless: walk toward the door, jump once on the way, then press E at the
// far end. The window/input front-end is an external collaborator; this
// stands in for it.
type scriptedDevice struct {
	elapsed float64
}

func (d *scriptedDevice) advance(dt float64) {
	d.elapsed += dt
}

func (d *scriptedDevice) Poll() session.Keys {
	k := session.Keys{}
	switch {
	case d.elapsed < 1.0:
		// Look around, stand still.
	case d.elapsed < 5.5:
		k.Forward = true
		k.Run = d.elapsed >= 3.0
		k.Jump = d.elapsed >= 2.0 && d.elapsed < 2.1
	default:
		k.Interact = true
	}
	return k
}

func (d *scriptedDevice) PointerDelta() (float32, float32) {
	// A symmetric sweep: glance right, glance back, end facing the door.
	switch {
	case d.elapsed < 0.5:
		return 2, 0
	case d.elapsed < 1.0:
		return -2, 0
	}
	return 0, 0
}

func (d *scriptedDevice) Recenter() {}
