package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/drift/asset"
	"github.com/lixenwraith/drift/engine"
	"github.com/lixenwraith/drift/event"
	"github.com/lixenwraith/drift/parameter"
)

const tickStep = 16 * time.Millisecond

// newTestStage builds a ready stage with all three systems registered and a
// deterministic clock
func newTestStage(t *testing.T) (*engine.Stage, *engine.MockTimeProvider, *TransitionSystem) {
	t.Helper()

	clock := engine.NewMockTimeProvider(time.Unix(1700000000, 0))
	stage := engine.NewStage(clock, nil)
	stage.Initialize(asset.Result{})
	if stage.State() != engine.StateReady {
		t.Fatalf("stage state = %v, want ready", stage.State())
	}

	trans := NewTransitionSystem(stage)
	stage.AddSystem(trans)
	stage.AddSystem(NewCameraSystem(stage))
	stage.AddSystem(NewBreathSystem(stage))

	// Prime the delta reference
	stage.Tick(clock.Now())
	return stage, clock, trans
}

// runFor ticks the stage at the fixed step until total has elapsed
func runFor(stage *engine.Stage, clock *engine.MockTimeProvider, total time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += tickStep {
		clock.Advance(tickStep)
		stage.Tick(clock.Now())
	}
}

func TestFullCycleCompletesWithinBudget(t *testing.T) {
	stage, clock, trans := newTestStage(t)

	// Hold + move + jitter headroom + max stagger covers one complete
	// settle -> retarget -> settle cycle
	runFor(stage, clock, parameter.HoldDuration+2*parameter.MoveDuration+parameter.StaggerMax)

	if got := stage.Status.Ints.Get("transition.cycles").Load(); got != 1 {
		t.Fatalf("cycles = %d, want 1", got)
	}
	if trans.Current() == "" {
		t.Fatal("no formation selected after a full cycle")
	}

	// Every element's breathing phase refreshed exactly once
	refreshed := stage.Status.Ints.Get("transition.distances_refreshed").Load()
	if refreshed != int64(parameter.ElementCount) {
		t.Fatalf("distance refreshes = %d, want %d", refreshed, parameter.ElementCount)
	}

	// All element tweens settled; only the re-arm timer remains
	if got := stage.Particles.Active(); got != 1 {
		t.Fatalf("live particle tweens = %d, want 1 (re-arm timer)", got)
	}
}

func TestNoRetargetBeforeHoldExpires(t *testing.T) {
	stage, clock, trans := newTestStage(t)

	runFor(stage, clock, parameter.HoldDuration-time.Second)

	if got := stage.Status.Ints.Get("transition.cycles").Load(); got != 0 {
		t.Fatalf("cycles = %d before hold expiry, want 0", got)
	}
	if trans.Current() != "" {
		t.Fatalf("formation %q selected before hold expiry", trans.Current())
	}
}

func TestConsecutivePicksNeverRepeat(t *testing.T) {
	_, _, trans := newTestStage(t)

	prev := trans.Current()
	for i := 0; i < 100; i++ {
		trans.HandleEvent(event.Event{Type: event.EventRetargetRequest})
		cur := trans.Current()
		if cur == prev {
			t.Fatalf("pick %d repeated %q", i, cur)
		}
		prev = cur
	}
}

func TestForcedRetargetSupersedesInFlight(t *testing.T) {
	stage, clock, _ := newTestStage(t)

	// Drive into the middle of the first retargeting pass
	runFor(stage, clock, parameter.HoldDuration+parameter.MoveDuration/2)

	before := stage.Status.Ints.Get("transition.cycles").Load()
	if before != 1 {
		t.Fatalf("cycles = %d mid-flight, want 1", before)
	}

	stage.Events.Push(event.Event{Type: event.EventRetargetRequest})
	clock.Advance(tickStep)
	stage.Tick(clock.Now())

	if got := stage.Status.Ints.Get("transition.cycles").Load(); got != before+1 {
		t.Fatalf("cycles = %d after forced advance, want %d", got, before+1)
	}

	// The superseding pass replaced the old tween set wholesale: N element
	// tweens plus one re-arm timer, nothing left over from the old pass
	if got := stage.Particles.Active(); got != parameter.ElementCount+1 {
		t.Fatalf("live particle tweens = %d, want %d", got, parameter.ElementCount+1)
	}
}

func TestSupersedeLeavesCameraScopeUntouched(t *testing.T) {
	stage, clock, _ := newTestStage(t)

	stage.SetExpanded(true)
	clock.Advance(tickStep)
	stage.Tick(clock.Now())

	if got := stage.Camera.Active(); got != 1 {
		t.Fatalf("camera tweens = %d after dolly start, want 1", got)
	}

	// Force a particle retarget mid-dolly; the camera tween must survive
	stage.Events.Push(event.Event{Type: event.EventRetargetRequest})
	clock.Advance(tickStep)
	stage.Tick(clock.Now())

	if got := stage.Camera.Active(); got != 1 {
		t.Fatalf("camera tweens = %d after particle supersede, want 1", got)
	}
}

func TestRetargetEventsEmitted(t *testing.T) {
	stage, clock, trans := newTestStage(t)

	rec := &recordingHandler{}
	stage.AddSystem(rec)

	runFor(stage, clock, parameter.HoldDuration+2*parameter.MoveDuration+parameter.StaggerMax)

	if len(rec.started) != 1 {
		t.Fatalf("started events = %d, want 1", len(rec.started))
	}
	if len(rec.settled) != 1 {
		t.Fatalf("settled events = %d, want 1", len(rec.settled))
	}
	if rec.started[0] != string(trans.Current()) {
		t.Errorf("started key %q, current %q", rec.started[0], trans.Current())
	}
	if rec.settled[0] != rec.started[0] {
		t.Errorf("settled key %q does not match started %q", rec.settled[0], rec.started[0])
	}
}

// recordingHandler captures retarget lifecycle events for assertions
type recordingHandler struct {
	started []string
	settled []string
}

func (r *recordingHandler) Name() string  { return "recording" }
func (r *recordingHandler) Priority() int { return 100 }
func (r *recordingHandler) Update()       {}

func (r *recordingHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventRetargetStarted, event.EventRetargetSettled}
}

func (r *recordingHandler) HandleEvent(ev event.Event) {
	switch p := ev.Payload.(type) {
	case *event.RetargetStartedPayload:
		r.started = append(r.started, p.FormationKey)
	case *event.RetargetSettledPayload:
		r.settled = append(r.settled, p.FormationKey)
	}
}
