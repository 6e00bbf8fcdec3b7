package parameter

import "time"

// Retargeting cadence
const (
	// HoldDuration is how long a formation is displayed before the first
	// retargeting pass is armed
	HoldDuration = 16000 * time.Millisecond

	// MoveDuration is the base per-element interpolation time
	MoveDuration = 2000 * time.Millisecond

	// MoveJitterFrac adds up to this fraction of MoveDuration per element
	MoveJitterFrac = 0.2

	// StaggerMax is the largest per-element start delay; elements far from the
	// population centroid start later, scaled by normalized distance
	StaggerMax = 600 * time.Millisecond
)

// CycleDuration over-estimates a full pass so the next retarget is armed only
// after every staggered, jittered tween has finished
// hold + 2x move duration + max stagger
const CycleDuration = HoldDuration + 2*MoveDuration + StaggerMax
