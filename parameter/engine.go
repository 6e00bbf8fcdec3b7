package parameter

import "time"

// Population
const (
	// ElementCount is the fixed population size, created once at startup
	ElementCount = 512

	// SpawnExtent is the half-extent of the cube initial positions are drawn from
	SpawnExtent = 2000.0
)

// Frame loop
const (
	// DeltaCap bounds a single tick's wall-clock delta
	// Prevents a huge jump after the process was suspended or backgrounded
	DeltaCap = 100 * time.Millisecond

	// TargetFPS drives the host ticker in cmd/drift; the engine itself has no
	// opinion about cadence and integrates whatever delta it is handed
	TargetFPS = 30
)

// Event queue
const (
	// EventQueueSize must be a power of two (ring buffer mask arithmetic)
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)

// System priorities, lower runs first
const (
	PriorityTransition = 10
	PriorityCamera     = 20
	PriorityBreath     = 30
	PriorityAudio      = 40
)
