package system

import (
	"math"

	"github.com/lixenwraith/drift/engine"
	"github.com/lixenwraith/drift/parameter"
	"github.com/lixenwraith/drift/status"
)

// BreathSystem applies the per-frame scale oscillation: a sine wave over
// global elapsed time, phase-shifted by each element's cached distance from
// center, pulled toward the target through an exponential smoothing filter
// The phase input is the distance captured at tween completion, so the hot
// loop touches no vector math at all
type BreathSystem struct {
	stage *engine.Stage

	statWave *status.AtomicFloat
}

func NewBreathSystem(stage *engine.Stage) *BreathSystem {
	return &BreathSystem{
		stage:    stage,
		statWave: stage.Status.Floats.Get("breath.wave"),
	}
}

func (s *BreathSystem) Name() string { return "breath" }

func (s *BreathSystem) Priority() int { return parameter.PriorityBreath }

func (s *BreathSystem) Update() {
	st := s.stage
	if st.Time.Ticks%parameter.BreathStride != 0 {
		return
	}
	elapsed := st.Time.Elapsed

	var lastWave float64
	for i := range st.Elements {
		el := &st.Elements[i]

		wave := math.Sin(elapsed*parameter.BreathFreq-
			el.DistFromCenter*parameter.BreathPhaseScale) * parameter.BreathAmp
		target := el.BaseScale + wave

		// One smoothing step per frame; converges without overshoot
		el.CurrentScale += (target - el.CurrentScale) * parameter.BreathSmoothing
		lastWave = wave
	}
	s.statWave.Set(lastWave)
}
