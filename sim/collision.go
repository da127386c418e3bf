package sim

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

const axisEpsilon = 1e-7

// clipAxisMovement clamps a displacement along one axis so the moving box
// stops at the first stationary box overlapping it on the two other axes.
func clipAxisMovement(boxes []cube.BBox, moving cube.BBox, axis int, delta float64) float64 {
	if delta == 0 {
		return 0
	}

	a1, a2 := (axis+1)%3, (axis+2)%3
	for _, b := range boxes {
		if !spansOverlap(moving, b, a1) || !spansOverlap(moving, b, a2) {
			continue
		}

		if delta > 0 && moving.Max()[axis] <= b.Min()[axis]+axisEpsilon {
			gap := b.Min()[axis] - moving.Max()[axis]
			if gap < delta {
				delta = math.Max(gap, 0)
			}
		} else if delta < 0 && moving.Min()[axis] >= b.Max()[axis]-axisEpsilon {
			gap := b.Max()[axis] - moving.Min()[axis]
			if gap > delta {
				delta = math.Min(gap, 0)
			}
		}
	}
	return delta
}

func spansOverlap(a, b cube.BBox, axis int) bool {
	return a.Max()[axis] > b.Min()[axis]+axisEpsilon && b.Max()[axis] > a.Min()[axis]+axisEpsilon
}

// sweptMove clips a displacement axis by axis, vertical first so landing is
// resolved before horizontal sliding. The returned flags report which axes
// were clipped; sliding along walls falls out of the per-axis clipping.
func sweptMove(boxes []cube.BBox, bb cube.BBox, delta mgl64.Vec3) (mgl64.Vec3, [3]bool) {
	moved := delta
	for _, axis := range [3]int{2, 0, 1} {
		moved[axis] = clipAxisMovement(boxes, bb, axis, moved[axis])
		var step mgl64.Vec3
		step[axis] = moved[axis]
		bb = bb.Translate(step)
	}

	var collided [3]bool
	for i := 0; i < 3; i++ {
		collided[i] = math.Abs(moved[i]-delta[i]) >= axisEpsilon
	}
	return moved, collided
}
