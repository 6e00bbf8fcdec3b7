package system

import (
	"sync/atomic"

	"github.com/lixenwraith/drift/engine"
	"github.com/lixenwraith/drift/event"
	"github.com/lixenwraith/drift/parameter"
	"github.com/lixenwraith/drift/status"
	"github.com/lixenwraith/drift/vmath"
)

// CameraSystem owns the dolly track: a single scalar depth tweened between
// the near and far stops. It lives entirely in the camera timeline scope, so
// particle retargeting can never interrupt a dolly and a dolly never touches
// element tweens
type CameraSystem struct {
	stage *engine.Stage

	expanded bool

	statDepth    *status.AtomicFloat
	statExpanded *atomic.Bool
}

func NewCameraSystem(stage *engine.Stage) *CameraSystem {
	return &CameraSystem{
		stage:        stage,
		statDepth:    stage.Status.Floats.Get("camera.z"),
		statExpanded: stage.Status.Bools.Get("camera.expanded"),
	}
}

func (s *CameraSystem) Name() string { return "camera" }

func (s *CameraSystem) Priority() int { return parameter.PriorityCamera }

func (s *CameraSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventCameraShift}
}

// HandleEvent restarts the dolly toward the stop matching the flag
// A repeated identical request restarts the tween from the current depth; the
// target is unchanged so the motion stays continuous
func (s *CameraSystem) HandleEvent(ev event.Event) {
	p, ok := ev.Payload.(*event.CameraShiftPayload)
	if !ok {
		return
	}

	s.expanded = p.Expanded
	s.statExpanded.Store(p.Expanded)

	target := parameter.CameraNearZ
	if p.Expanded {
		target = parameter.CameraFarZ
	}

	st := s.stage
	st.Camera.CancelAll()

	from := st.CameraZ
	st.Camera.Add(&engine.Tween{
		Duration: parameter.CameraMoveDuration,
		Ease:     vmath.EaseOutCubic,
		OnUpdate: func(f float64) {
			st.CameraZ = vmath.Lerp(from, target, f)
		},
	})
}

func (s *CameraSystem) Update() {
	s.statDepth.Set(s.stage.CameraZ)
}

// Expanded reports the last requested stop
func (s *CameraSystem) Expanded() bool {
	return s.expanded
}
