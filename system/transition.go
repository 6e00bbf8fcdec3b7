package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/drift/engine"
	"github.com/lixenwraith/drift/event"
	"github.com/lixenwraith/drift/formation"
	"github.com/lixenwraith/drift/parameter"
	"github.com/lixenwraith/drift/vmath"
)

// TransitionSystem owns the retargeting cycle: it holds the population on a
// formation for the display duration, then staggers every element toward the
// next one. Exactly one transition is in flight at a time; starting a new one
// cancels the previous pass's element tweens and bookkeeping timer, never the
// camera scope
type TransitionSystem struct {
	stage *engine.Stage

	current formation.Key
	armed   bool

	// remaining counts the element tweens of the in-flight pass; zero fires
	// the settled event
	remaining int

	statCycles    *atomic.Int64
	statRefreshed *atomic.Int64
	statFormation *atomic.Int64
}

func NewTransitionSystem(stage *engine.Stage) *TransitionSystem {
	return &TransitionSystem{
		stage:         stage,
		statCycles:    stage.Status.Ints.Get("transition.cycles"),
		statRefreshed: stage.Status.Ints.Get("transition.distances_refreshed"),
		statFormation: stage.Status.Ints.Get("transition.formation_index"),
	}
}

func (s *TransitionSystem) Name() string { return "transition" }

func (s *TransitionSystem) Priority() int { return parameter.PriorityTransition }

func (s *TransitionSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventRetargetRequest}
}

// HandleEvent services a forced advance from the host: the in-flight pass is
// superseded immediately instead of waiting out the hold
func (s *TransitionSystem) HandleEvent(ev event.Event) {
	if ev.Type == event.EventRetargetRequest {
		s.begin()
	}
}

// Update arms the first hold timer; afterwards the cycle re-arms itself
func (s *TransitionSystem) Update() {
	if s.armed {
		return
	}
	s.armed = true
	s.stage.Particles.After(parameter.HoldDuration, s.begin)
}

// Current returns the key the population last targeted, empty before the
// first pass
func (s *TransitionSystem) Current() formation.Key {
	return s.current
}

// begin supersedes any in-flight pass and starts retargeting toward a fresh
// formation. Runs inside Particles.Advance when fired by a timer, which the
// group's snapshot semantics allow
func (s *TransitionSystem) begin() {
	st := s.stage
	elements := st.Elements
	if len(elements) == 0 {
		return
	}

	st.Particles.CancelAll()

	next := s.pickNext()
	s.current = next
	idx := formation.Index(next)
	s.statFormation.Store(int64(idx))

	poses := formation.Generate(next, len(elements), st.Rand)
	targetCenter := formation.Centroid(poses)

	// Stagger by normalized distance from the current population centroid:
	// inner elements leave first, the rim trails by up to the max delay
	center := populationCentroid(elements)
	maxDist := 0.0
	dists := make([]float64, len(elements))
	for i := range elements {
		dists[i] = vmath.V3Dist(elements[i].Pos, center)
		if dists[i] > maxDist {
			maxDist = dists[i]
		}
	}

	s.remaining = len(elements)

	for i := range elements {
		frac := 0.0
		if maxDist > 0 {
			frac = dists[i] / maxDist
		}
		delay := time.Duration(frac * float64(parameter.StaggerMax))
		duration := time.Duration(float64(parameter.MoveDuration) *
			(1 + st.Rand.Float64()*parameter.MoveJitterFrac))

		el := &elements[i]
		fromPos := el.Pos
		fromRot := el.Rot
		toPos := poses[i].Pos
		toRot := poses[i].Rot

		st.Particles.Add(&engine.Tween{
			Delay:    delay,
			Duration: duration,
			Ease:     vmath.EaseOutCubic,
			OnUpdate: func(f float64) {
				el.Pos = vmath.V3Lerp(fromPos, toPos, f)
				el.Rot = vmath.V3Lerp(fromRot, toRot, f)
			},
			OnComplete: func() {
				// Refresh the cached breathing phase once per cycle, from the
				// settled position against the new formation's center
				el.DistFromCenter = vmath.V3Dist(el.Pos, targetCenter)
				s.statRefreshed.Add(1)
				s.remaining--
				if s.remaining == 0 {
					st.Events.Push(event.Event{
						Type:    event.EventRetargetSettled,
						Payload: &event.RetargetSettledPayload{FormationKey: string(next)},
					})
				}
			},
		})
	}

	// The over-estimated re-arm interval guarantees every staggered, jittered
	// tween has settled before the next pass starts
	st.Particles.After(parameter.CycleDuration, s.begin)

	s.statCycles.Add(1)
	st.Events.Push(event.Event{
		Type:    event.EventRetargetStarted,
		Payload: &event.RetargetStartedPayload{FormationKey: string(next)},
	})
	st.Events.Push(event.Event{
		Type:    event.EventSoundRequest,
		Payload: &event.SoundRequestPayload{FormationIndex: idx},
	})
}

// pickNext draws uniformly from the formation keys, rejecting the current one
// so two consecutive passes never share a target
func (s *TransitionSystem) pickNext() formation.Key {
	if len(formation.Keys) == 1 {
		return formation.Keys[0]
	}
	for {
		k := formation.Keys[s.stage.Rand.Intn(len(formation.Keys))]
		if k != s.current {
			return k
		}
	}
}

func populationCentroid(elements []engine.Element) vmath.Vec3 {
	if len(elements) == 0 {
		return vmath.Vec3{}
	}
	var sum vmath.Vec3
	for i := range elements {
		sum = vmath.V3Add(sum, elements[i].Pos)
	}
	return vmath.V3Scale(sum, 1/float64(len(elements)))
}
