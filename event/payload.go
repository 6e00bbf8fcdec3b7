package event

// Event is a single engine event with an optional typed payload
type Event struct {
	Type    EventType
	Payload any
}

// RetargetStartedPayload reports the formation a pass is moving toward
type RetargetStartedPayload struct {
	FormationKey string
}

// RetargetSettledPayload reports a fully settled pass
type RetargetSettledPayload struct {
	FormationKey string
}

// CameraShiftPayload carries the expanded flag driving the camera depth
type CameraShiftPayload struct {
	Expanded bool
}

// ThemeChangedPayload carries presentation cosmetics
type ThemeChangedPayload struct {
	Opacity     float64
	SpeedFactor float64
}

// ResizePayload carries the new viewport dimensions
type ResizePayload struct {
	Width, Height int
}

// SoundRequestPayload names a cue; pitch is derived from the formation index
type SoundRequestPayload struct {
	FormationIndex int
}
