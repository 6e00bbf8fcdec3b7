package parameter

// Plane formation: sinusoidal-height grid, twice as many columns as rows
const (
	// PlaneSpacing is the cell pitch of the grid in world units
	PlaneSpacing = 150.0

	// PlaneHeightAmp scales the sinusoidal height field
	PlaneHeightAmp = 200.0

	// PlaneHeightFreq is the frequency applied to the raw grid indices
	PlaneHeightFreq = 0.5
)

// Cube formation: regular grid centered on the origin
const (
	CubeSpacing = 150.0
)

// Sphere formation: uniform spherical-coordinate distribution
const (
	SphereRadius = 1750.0
)

// Spiral formation: conical spiral
const (
	SpiralTurns     = 15.0
	SpiralMaxRadius = 1200.0

	// SpiralHeightSpan is the vertical extent of the cone, centered on origin
	SpiralHeightSpan = 1500.0
)

// Fibonacci formation: golden-angle spherical distribution
const (
	FibonacciRadius = 600.0
)

// Random formation: independent uniform positions
const (
	// RandomExtent matches the spawn cube half-extent
	RandomExtent = 2000.0
)
