package world

import (
	"sort"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/block/cube/trace"
	"github.com/go-gl/mathgl/mgl64"
)

// RayResult is a single ray intersection against the static world.
type RayResult struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
	Collider string
}

// GetNearbyBBoxes returns the boxes of all colliders intersecting the given
// bounding box.
func (w *World) GetNearbyBBoxes(aabb cube.BBox) []cube.BBox {
	var boxes []cube.BBox
	for el := w.colliders.Front(); el != nil; el = el.Next() {
		if aabb.IntersectsWith(el.Value.Box) {
			boxes = append(boxes, el.Value.Box)
		}
	}
	return boxes
}

// RayIntercept casts a segment from start to end and returns the closest
// surface hit. Equidistant hits resolve to the collider inserted first. A
// miss is a valid outcome, not an error.
func (w *World) RayIntercept(start, end mgl64.Vec3) (RayResult, bool) {
	type rayHit struct {
		res  RayResult
		dist float64
	}

	var hits []rayHit
	for el := w.colliders.Front(); el != nil; el = el.Next() {
		r, ok := trace.BBoxIntercept(el.Value.Box, start, end)
		if !ok {
			continue
		}
		hits = append(hits, rayHit{
			res: RayResult{
				Position: r.Position(),
				Normal:   faceNormal(r.Face()),
				Collider: el.Value.Name,
			},
			dist: r.Position().Sub(start).LenSqr(),
		})
	}
	if len(hits) == 0 {
		return RayResult{}, false
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].dist < hits[j].dist
	})
	return hits[0].res, true
}

// faceNormal maps a box face to its outward axis normal. The cube package
// names faces for a Y-up world; only their axis/sign meaning is used here.
func faceNormal(f cube.Face) mgl64.Vec3 {
	switch f {
	case cube.FaceWest:
		return mgl64.Vec3{-1, 0, 0}
	case cube.FaceEast:
		return mgl64.Vec3{1, 0, 0}
	case cube.FaceDown:
		return mgl64.Vec3{0, -1, 0}
	case cube.FaceUp:
		return mgl64.Vec3{0, 1, 0}
	case cube.FaceNorth:
		return mgl64.Vec3{0, 0, -1}
	default:
		return mgl64.Vec3{0, 0, 1}
	}
}
