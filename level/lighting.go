package level

import (
	"math/rand"

	"github.com/egowarka/corridor/game"
)

// Lamps models the corridor's ceiling lamps. One randomly chosen lamp
// flickers: its intensity is re-rolled on a random timer. State only; the
// renderer reads Intensity per lamp.
type Lamps struct {
	intensities  []float64
	base         float64
	flickerIndex int
	flickerTimer float64
	rng          *rand.Rand
}

// NewLamps creates the given number of lamps at the given base intensity.
// The rng drives flicker timing and may be seeded for determinism.
func NewLamps(count int, base float64, rng *rand.Rand) *Lamps {
	if count <= 0 {
		count = game.DefaultLampCount
	}
	l := &Lamps{
		intensities: make([]float64, count),
		base:        base,
		rng:         rng,
	}
	for i := range l.intensities {
		l.intensities[i] = base
	}
	l.flickerIndex = rng.Intn(count)
	return l
}

// Count returns the number of lamps.
func (l *Lamps) Count() int {
	return len(l.intensities)
}

// Intensity returns the current intensity of the lamp at index i.
func (l *Lamps) Intensity(i int) float64 {
	return l.intensities[i]
}

// Update advances the flicker timer.
func (l *Lamps) Update(dt float64) {
	l.flickerTimer -= dt
	if l.flickerTimer > 0 {
		return
	}
	l.flickerTimer = 0.3 + l.rng.Float64()*0.9
	l.intensities[l.flickerIndex] = l.base * (0.5 + l.rng.Float64()*0.5)
}
