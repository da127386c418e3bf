package world

import (
	"encoding/binary"
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/zeebo/xxh3"
)

// Collider is a single solid axis-aligned box in the static world.
type Collider struct {
	Name string
	Box  cube.BBox
}

// World is an immutable set of solid colliders. Locomotion only ever reads
// from a World; geometry changes (a door opening) are published as a new
// snapshot through With/Without, never by mutating an existing one.
type World struct {
	colliders *orderedmap.OrderedMap[string, Collider]
	version   uint64
}

// Builder assembles a World. Colliders keep their insertion order, which
// makes ray queries deterministic when two surfaces sit at the same distance.
type Builder struct {
	colliders *orderedmap.OrderedMap[string, Collider]
}

func NewBuilder() *Builder {
	return &Builder{colliders: orderedmap.NewOrderedMap[string, Collider]()}
}

// Add registers a named collider. Re-adding a name replaces the previous box
// while keeping its position in the iteration order.
func (b *Builder) Add(name string, box cube.BBox) *Builder {
	b.colliders.Set(name, Collider{Name: name, Box: box})
	return b
}

// Build finalizes the snapshot.
func (b *Builder) Build() *World {
	w := &World{colliders: b.colliders.Copy()}
	w.version = w.hash()
	return w
}

// Version identifies this snapshot. Two snapshots with differing geometry
// have differing versions.
func (w *World) Version() uint64 {
	return w.version
}

// Len returns the number of colliders in the snapshot.
func (w *World) Len() int {
	return w.colliders.Len()
}

// Collider looks up a collider by name.
func (w *World) Collider(name string) (Collider, bool) {
	return w.colliders.Get(name)
}

// With derives a new snapshot with the given collider added or replaced.
func (w *World) With(c Collider) *World {
	m := w.colliders.Copy()
	m.Set(c.Name, c)
	nw := &World{colliders: m}
	nw.version = nw.hash()
	return nw
}

// Without derives a new snapshot with the named collider removed.
func (w *World) Without(name string) *World {
	m := w.colliders.Copy()
	m.Delete(name)
	nw := &World{colliders: m}
	nw.version = nw.hash()
	return nw
}

func (w *World) hash() uint64 {
	buf := make([]byte, 0, w.colliders.Len()*56)
	var scratch [8]byte
	for el := w.colliders.Front(); el != nil; el = el.Next() {
		buf = append(buf, el.Value.Name...)
		for _, v := range [...]float64{
			el.Value.Box.Min().X(), el.Value.Box.Min().Y(), el.Value.Box.Min().Z(),
			el.Value.Box.Max().X(), el.Value.Box.Max().Y(), el.Value.Box.Max().Z(),
		} {
			binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(v))
			buf = append(buf, scratch[:]...)
		}
	}
	return xxh3.Hash(buf)
}
