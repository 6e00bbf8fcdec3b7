package engine

import (
	"github.com/lixenwraith/drift/parameter"
	"github.com/lixenwraith/drift/vmath"
)

// Element is one particle of the population
// All N elements are created once at startup and only their pose fields
// mutate afterward; identity is the slice index
type Element struct {
	Index int

	Pos vmath.Vec3
	Rot vmath.Vec3

	// BaseScale is the resting scale the breathing oscillation centers on;
	// renderers read CurrentScale, never this
	BaseScale float64

	// DistFromCenter is the distance from the population center captured when
	// this element's last retargeting tween completed. It seeds the breathing
	// phase; it is deliberately NOT recomputed every frame
	DistFromCenter float64

	// CurrentScale is the smoothed state of the breathing filter
	CurrentScale float64
}

// NewPopulation creates n elements at random positions inside the spawn cube
func NewPopulation(n int, rng *vmath.FastRand) []Element {
	elements := make([]Element, n)
	for i := range elements {
		elements[i] = Element{
			Index: i,
			Pos: vmath.Vec3{
				X: rng.Range(-parameter.SpawnExtent, parameter.SpawnExtent),
				Y: rng.Range(-parameter.SpawnExtent, parameter.SpawnExtent),
				Z: rng.Range(-parameter.SpawnExtent, parameter.SpawnExtent),
			},
			BaseScale:    1.0,
			CurrentScale: 1.0,
		}
		elements[i].DistFromCenter = vmath.V3Mag(elements[i].Pos)
	}
	return elements
}
