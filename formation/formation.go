package formation

import (
	"math"

	"github.com/lixenwraith/drift/parameter"
	"github.com/lixenwraith/drift/vmath"
)

// Key identifies a named spatial arrangement
type Key string

const (
	KeyPlane     Key = "plane"
	KeyCube      Key = "cube"
	KeyRandom    Key = "random"
	KeySphere    Key = "sphere"
	KeySpiral    Key = "spiral"
	KeyFibonacci Key = "fibonacci"
)

// Keys lists every formation in cycle order
var Keys = []Key{KeyPlane, KeyCube, KeyRandom, KeySphere, KeySpiral, KeyFibonacci}

// Index returns the position of key in the cycle order, or -1
func Index(key Key) int {
	for i, k := range Keys {
		if k == key {
			return i
		}
	}
	return -1
}

// Pose is one element's target placement within a formation
type Pose struct {
	Pos vmath.Vec3
	Rot vmath.Vec3
}

// Generate produces n poses for the named formation, centered on the origin
// Unknown keys fall back to the random cloud. Generators that need jitter
// draw from rng; the deterministic formations ignore it
func Generate(key Key, n int, rng *vmath.FastRand) []Pose {
	switch key {
	case KeyPlane:
		return Plane(n)
	case KeyCube:
		return Cube(n)
	case KeySphere:
		return Sphere(n)
	case KeySpiral:
		return Spiral(n)
	case KeyFibonacci:
		return Fibonacci(n)
	default:
		return Random(n, rng)
	}
}

// Plane arranges elements on a sine-rippled horizontal sheet
// The grid is as close to square as n allows, 150 units apart, with height
// driven by the sum of two half-frequency sine waves over the grid indices
func Plane(n int) []Pose {
	poses := make([]Pose, n)
	if n == 0 {
		return poses
	}

	cols := int(math.Ceil(math.Sqrt(float64(n) * 2)))
	if cols < 1 {
		cols = 1
	}
	rows := (n + cols - 1) / cols

	for i := range poses {
		row := i / cols
		col := i % cols

		x := (float64(col) - float64(cols-1)/2) * parameter.PlaneSpacing
		z := (float64(row) - float64(rows-1)/2) * parameter.PlaneSpacing
		y := parameter.PlaneHeightAmp * (math.Sin(float64(col)*parameter.PlaneHeightFreq) +
			math.Sin(float64(row)*parameter.PlaneHeightFreq))

		poses[i].Pos = vmath.Vec3{X: x, Y: y, Z: z}
		poses[i].Rot = vmath.FaceToward(poses[i].Pos, vmath.Vec3{})
	}
	return poses
}

// Cube packs elements into the smallest lattice cube that holds them,
// 150 units between neighbors
func Cube(n int) []Pose {
	poses := make([]Pose, n)
	if n == 0 {
		return poses
	}

	side := int(math.Ceil(math.Cbrt(float64(n))))
	if side < 1 {
		side = 1
	}
	half := float64(side-1) / 2

	for i := range poses {
		x := i % side
		y := (i / side) % side
		z := i / (side * side)

		poses[i].Pos = vmath.Vec3{
			X: (float64(x) - half) * parameter.CubeSpacing,
			Y: (float64(y) - half) * parameter.CubeSpacing,
			Z: (float64(z) - half) * parameter.CubeSpacing,
		}
	}
	return poses
}

// Random scatters elements uniformly through the spawn cube
func Random(n int, rng *vmath.FastRand) []Pose {
	poses := make([]Pose, n)
	for i := range poses {
		poses[i].Pos = vmath.Vec3{
			X: rng.Range(-parameter.RandomExtent, parameter.RandomExtent),
			Y: rng.Range(-parameter.RandomExtent, parameter.RandomExtent),
			Z: rng.Range(-parameter.RandomExtent, parameter.RandomExtent),
		}
	}
	return poses
}

// Sphere distributes elements evenly over a spherical shell using the
// spiral-points method: polar angle from the uniform-area inverse cosine,
// azimuth advancing by sqrt(n*pi) per unit of polar angle
// Every element faces away from the center
func Sphere(n int) []Pose {
	poses := make([]Pose, n)
	if n == 0 {
		return poses
	}
	if n == 1 {
		poses[0].Pos = vmath.Vec3{Y: parameter.SphereRadius}
		poses[0].Rot = vmath.FaceOutward(poses[0].Pos)
		return poses
	}

	spread := math.Sqrt(float64(n) * math.Pi)
	for i := range poses {
		phi := math.Acos(-1 + 2*float64(i)/float64(n))
		theta := spread * phi

		sinPhi := math.Sin(phi)
		poses[i].Pos = vmath.Vec3{
			X: parameter.SphereRadius * sinPhi * math.Sin(theta),
			Y: parameter.SphereRadius * math.Cos(phi),
			Z: parameter.SphereRadius * sinPhi * math.Cos(theta),
		}
		poses[i].Rot = vmath.FaceOutward(poses[i].Pos)
	}
	return poses
}

// Spiral winds elements along a helix of fixed turn count, radius growing
// linearly from the axis to the maximum while height spans the full column
// Elements face outward from the axis
func Spiral(n int) []Pose {
	poses := make([]Pose, n)
	if n == 0 {
		return poses
	}

	denom := float64(n - 1)
	if n == 1 {
		denom = 1
	}

	for i := range poses {
		frac := float64(i) / denom
		angle := frac * parameter.SpiralTurns * 2 * math.Pi
		radius := frac * parameter.SpiralMaxRadius

		poses[i].Pos = vmath.Vec3{
			X: radius * math.Cos(angle),
			Y: (frac - 0.5) * parameter.SpiralHeightSpan,
			Z: radius * math.Sin(angle),
		}
		poses[i].Rot = vmath.FaceOutward(poses[i].Pos)
	}
	return poses
}

// Fibonacci places elements on a sphere by the golden-angle lattice:
// y descends linearly pole to pole while azimuth advances by pi*(3-sqrt(5))
func Fibonacci(n int) []Pose {
	poses := make([]Pose, n)
	if n == 0 {
		return poses
	}
	if n == 1 {
		poses[0].Pos = vmath.Vec3{Y: parameter.FibonacciRadius}
		poses[0].Rot = vmath.FaceOutward(poses[0].Pos)
		return poses
	}

	golden := math.Pi * (3 - math.Sqrt(5))
	for i := range poses {
		y := 1 - 2*float64(i)/float64(n-1)
		ring := math.Sqrt(math.Max(0, 1-y*y))
		theta := golden * float64(i)

		poses[i].Pos = vmath.Vec3{
			X: parameter.FibonacciRadius * ring * math.Cos(theta),
			Y: parameter.FibonacciRadius * y,
			Z: parameter.FibonacciRadius * ring * math.Sin(theta),
		}
		poses[i].Rot = vmath.FaceOutward(poses[i].Pos)
	}
	return poses
}

// Centroid returns the mean position of a pose set
func Centroid(poses []Pose) vmath.Vec3 {
	if len(poses) == 0 {
		return vmath.Vec3{}
	}
	var sum vmath.Vec3
	for i := range poses {
		sum = vmath.V3Add(sum, poses[i].Pos)
	}
	return vmath.V3Scale(sum, 1/float64(len(poses)))
}
