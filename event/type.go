package event

// EventType identifies an engine event
type EventType int

const (
	// EventRetargetRequest asks the transition system to start moving the
	// population to a new formation immediately
	// Trigger: cycle timer expiry, or the host's force-advance key
	// Consumer: TransitionSystem | Payload: nil
	EventRetargetRequest EventType = iota

	// EventRetargetStarted announces a retargeting pass has begun
	// Trigger: TransitionSystem | Payload: *RetargetStartedPayload
	EventRetargetStarted

	// EventRetargetSettled announces every element tween of a pass finished
	// Trigger: TransitionSystem | Payload: *RetargetSettledPayload
	EventRetargetSettled

	// EventCameraShift requests a camera dolly to the depth matching the
	// expanded flag
	// Trigger: Stage.SetExpanded | Consumer: CameraSystem | Payload: *CameraShiftPayload
	EventCameraShift

	// EventThemeChanged carries the new presentation opacity and speed factor
	// Trigger: Stage.SetThemeOpacity / host theme toggle | Payload: *ThemeChangedPayload
	EventThemeChanged

	// EventResize notifies renderers of a new viewport size
	// Trigger: Stage.Resize | Payload: *ResizePayload
	EventResize

	// EventSoundRequest asks the audio service for a cue
	// Trigger: systems | Consumer: host audio wiring | Payload: *SoundRequestPayload
	EventSoundRequest
)
