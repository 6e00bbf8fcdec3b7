package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/drift/asset"
	"github.com/lixenwraith/drift/event"
	"github.com/lixenwraith/drift/parameter"
	"github.com/lixenwraith/drift/status"
	"github.com/lixenwraith/drift/vmath"
)

// LifecycleState tracks one-shot initialization and teardown
type LifecycleState int32

const (
	StateUninitialized LifecycleState = iota
	StateInitializing
	StateReady
	StateDisposed
)

// System is implemented by the choreography systems registered on a Stage
// Update runs once per tick in Priority order, lower first
type System interface {
	Name() string
	Priority() int
	Update()
}

// EventHandler is optionally implemented by systems that consume events
type EventHandler interface {
	EventTypes() []event.EventType
	HandleEvent(ev event.Event)
}

// Sink receives the finished pose set every tick; rendering is opaque to the engine
type Sink interface {
	RenderFrame(v *View)
}

// View is the per-tick snapshot handed to the Sink
// Elements aliases the live population; the sink must not retain it across ticks
type View struct {
	Elements []Element
	CameraZ  float64
	Opacity  float64
	Width    int
	Height   int
}

// Config holds host-facing presentation state
type Config struct {
	Width, Height int
	Opacity       float64
	SpeedFactor   float64
}

// TimeState is the engine clock, advanced only by Tick
type TimeState struct {
	// Elapsed is the speed-scaled accumulator in seconds, built from clamped
	// deltas; it drives the breathing phase
	Elapsed float64

	// Delta is the clamped wall-clock delta of the current tick
	Delta time.Duration

	Ticks uint64
}

// Stage owns the element population, both timeline scopes and the registered
// systems. All state is advanced exclusively from Tick; the exported mutators
// only enqueue events, so they are safe to call from host goroutines
type Stage struct {
	state atomic.Int32

	provider TimeProvider
	lastTick time.Time
	haveLast bool

	Elements []Element

	// Particles and Camera are independent cancellation scopes: superseding a
	// retargeting pass clears Particles only, a camera dolly clears Camera only
	Particles *Group
	Camera    *Group

	// CameraZ is the current dolly depth, written by the camera system
	CameraZ float64

	Events  *event.Queue
	Status  *status.Registry
	Rand    *vmath.FastRand
	Config  Config
	Time    TimeState
	Palette asset.Palette

	systems  []System
	handlers map[event.EventType][]EventHandler
	sink     Sink

	statTicks  *atomic.Int64
	statReinit *atomic.Int64
}

// NewStage creates an empty stage; the population is built by Initialize
func NewStage(provider TimeProvider, sink Sink) *Stage {
	reg := status.NewRegistry()
	s := &Stage{
		provider:  provider,
		Particles: NewGroup(),
		Camera:    NewGroup(),
		CameraZ:   parameter.CameraNearZ,
		Events:    event.NewQueue(),
		Status:    reg,
		Rand:      vmath.NewFastRand(uint64(provider.Now().UnixNano())),
		Config: Config{
			Opacity:     parameter.ThemeLightOpacity,
			SpeedFactor: parameter.ThemeLightSpeed,
		},
		handlers:   make(map[event.EventType][]EventHandler),
		sink:       sink,
		statTicks:  reg.Ints.Get("engine.ticks"),
		statReinit: reg.Ints.Get("stage.reinit_ignored"),
	}
	return s
}

// AddSystem registers a system, keeping the run order sorted by priority
func (s *Stage) AddSystem(sys System) {
	pos := len(s.systems)
	for i, existing := range s.systems {
		if sys.Priority() < existing.Priority() {
			pos = i
			break
		}
	}
	s.systems = append(s.systems, nil)
	copy(s.systems[pos+1:], s.systems[pos:])
	s.systems[pos] = sys

	if h, ok := sys.(EventHandler); ok {
		for _, t := range h.EventTypes() {
			s.handlers[t] = append(s.handlers[t], h)
		}
	}
}

// Initialize creates the population exactly once, gated on the asset result
// A failed load substitutes the fallback palette; a second call is ignored
// (counted for diagnostics) so a host re-invoking setup cannot double the
// population
func (s *Stage) Initialize(res asset.Result) {
	if !s.state.CompareAndSwap(int32(StateUninitialized), int32(StateInitializing)) {
		s.statReinit.Add(1)
		return
	}

	if res.Err != nil || len(res.Palette.Glyphs) == 0 {
		s.Palette = asset.Fallback()
	} else {
		s.Palette = res.Palette
	}

	s.Elements = NewPopulation(parameter.ElementCount, s.Rand)

	s.state.Store(int32(StateReady))
}

// State returns the current lifecycle state
func (s *Stage) State() LifecycleState {
	return LifecycleState(s.state.Load())
}

// Tick advances the engine by the wall-clock delta since the previous call,
// clamped to the configured cap. The host invokes it once per display refresh
func (s *Stage) Tick(now time.Time) {
	if s.State() != StateReady {
		return
	}

	var delta time.Duration
	if s.haveLast {
		delta = now.Sub(s.lastTick)
		if delta < 0 {
			delta = 0
		}
		if delta > parameter.DeltaCap {
			delta = parameter.DeltaCap
		}
	}
	s.lastTick = now
	s.haveLast = true

	// The theme speed factor scales global animation time, never the
	// individual formulas
	scaled := time.Duration(float64(delta) * s.Config.SpeedFactor)

	s.Time.Delta = delta
	s.Time.Elapsed += scaled.Seconds()
	s.Time.Ticks++
	s.statTicks.Store(int64(s.Time.Ticks))

	s.dispatchEvents()

	s.Particles.Advance(scaled)
	s.Camera.Advance(scaled)

	for _, sys := range s.systems {
		sys.Update()
	}

	if s.sink != nil {
		v := s.View()
		s.sink.RenderFrame(&v)
	}
}

// dispatchEvents drains the queue, handling presentation events inline and
// routing the rest to registered systems
func (s *Stage) dispatchEvents() {
	for _, ev := range s.Events.Consume() {
		switch ev.Type {
		case event.EventThemeChanged:
			if p, ok := ev.Payload.(*event.ThemeChangedPayload); ok {
				s.Config.Opacity = p.Opacity
				if p.SpeedFactor > 0 {
					s.Config.SpeedFactor = p.SpeedFactor
				}
			}
			continue
		case event.EventResize:
			if p, ok := ev.Payload.(*event.ResizePayload); ok {
				s.Config.Width = p.Width
				s.Config.Height = p.Height
			}
			// Renderers may also subscribe, fall through to routing
		}

		for _, h := range s.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}

// SetSink replaces the render sink; pass nil to run headless
// Hosts that need the loaded palette for sink construction call this after
// Initialize
func (s *Stage) SetSink(sink Sink) {
	s.sink = sink
}

// ForceRetarget skips the remaining hold time and starts the next
// formation pass on the following tick
func (s *Stage) ForceRetarget() {
	s.Events.Push(event.Event{Type: event.EventRetargetRequest})
}

// SetExpanded requests a camera dolly to the depth matching the flag
// Calling with an unchanged flag still restarts the tween; the target is the
// same so the restart is harmless and keeps the behavior uniform
func (s *Stage) SetExpanded(expanded bool) {
	s.Events.Push(event.Event{
		Type:    event.EventCameraShift,
		Payload: &event.CameraShiftPayload{Expanded: expanded},
	})
}

// SetThemeOpacity adjusts per-element presentation opacity only
func (s *Stage) SetThemeOpacity(opacity float64) {
	s.Events.Push(event.Event{
		Type:    event.EventThemeChanged,
		Payload: &event.ThemeChangedPayload{Opacity: opacity, SpeedFactor: s.Config.SpeedFactor},
	})
}

// SetDarkMode applies the theme presets: opacity plus the global speed factor
func (s *Stage) SetDarkMode(dark bool) {
	p := &event.ThemeChangedPayload{
		Opacity:     parameter.ThemeLightOpacity,
		SpeedFactor: parameter.ThemeLightSpeed,
	}
	if dark {
		p.Opacity = parameter.ThemeDarkOpacity
		p.SpeedFactor = parameter.ThemeDarkSpeed
	}
	s.Events.Push(event.Event{Type: event.EventThemeChanged, Payload: p})
}

// Resize records the new viewport; projection math picks it up on the next frame
func (s *Stage) Resize(width, height int) {
	s.Events.Push(event.Event{
		Type:    event.EventResize,
		Payload: &event.ResizePayload{Width: width, Height: height},
	})
}

// Dispose tears the engine down synchronously: every in-flight tween in both
// scopes is cancelled and the population is released. Further Ticks are no-ops
func (s *Stage) Dispose() {
	s.state.Store(int32(StateDisposed))
	s.Particles.CancelAll()
	s.Camera.CancelAll()
	s.Events.Consume()
	s.Elements = nil
}

// View builds the snapshot handed to the sink
func (s *Stage) View() View {
	return View{
		Elements: s.Elements,
		CameraZ:  s.CameraZ,
		Opacity:  s.Config.Opacity,
		Width:    s.Config.Width,
		Height:   s.Config.Height,
	}
}
