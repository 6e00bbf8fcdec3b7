package parameter

// Breathing oscillation, applied to every element every frame
const (
	// BreathFreq is the angular frequency on the elapsed-time accumulator (1/sec)
	BreathFreq = 1.2

	// BreathPhaseScale converts an element's cached distance-from-center into
	// a phase offset, so the population pulses in radial waves
	BreathPhaseScale = 0.002

	// BreathAmp is the oscillation amplitude around scale 1.0
	BreathAmp = 0.25

	// BreathSmoothing is the exponential filter factor toward the target scale
	// A hard set would pop visibly whenever a formation refreshes distances
	BreathSmoothing = 0.15

	// BreathStride runs the scale update every Nth tick; 1 = every tick
	// The smoothing factor keeps motion continuous at small strides
	BreathStride = 1
)
