package engine

import (
	"time"
)

// Tween is a time-bounded interpolation driven by a Group
// The eased fraction is delivered through OnUpdate; Tween holds no target
// fields of its own so one primitive serves poses, camera depth and timers
type Tween struct {
	Delay    time.Duration
	Duration time.Duration

	// Ease maps raw progress [0,1] to the applied fraction; nil is linear
	Ease func(float64) float64

	OnUpdate   func(frac float64)
	OnComplete func()

	elapsed time.Duration
	done    bool
}

// Group owns a set of tweens advanced together and cancelled together
// The particle scope and the camera scope are separate Groups so that
// cancelling one can never disturb the other
//
// Not safe for concurrent use: a Group belongs to the tick loop
type Group struct {
	tweens []*Tween
}

func NewGroup() *Group {
	return &Group{}
}

// Add registers a tween; it starts accumulating time on the next Advance
func (g *Group) Add(tw *Tween) *Tween {
	g.tweens = append(g.tweens, tw)
	return tw
}

// After schedules fn once d has elapsed; a timer is a tween with no update
func (g *Group) After(d time.Duration, fn func()) *Tween {
	return g.Add(&Tween{
		Delay:      d,
		OnComplete: fn,
	})
}

// Advance moves every live tween forward by dt
// Callbacks may Add to or CancelAll on this same Group: new tweens are only
// advanced from the next call, and cancellation marks the in-flight snapshot
// done so the loop skips the remainder
func (g *Group) Advance(dt time.Duration) {
	if len(g.tweens) == 0 {
		return
	}

	snapshot := g.tweens
	for _, tw := range snapshot {
		if tw.done {
			continue
		}

		tw.elapsed += dt
		if tw.elapsed < tw.Delay {
			continue
		}

		var t float64
		if tw.Duration <= 0 {
			t = 1
		} else {
			t = float64(tw.elapsed-tw.Delay) / float64(tw.Duration)
			if t > 1 {
				t = 1
			}
		}

		frac := t
		if tw.Ease != nil {
			frac = tw.Ease(t)
		}
		if tw.OnUpdate != nil {
			tw.OnUpdate(frac)
		}

		if t >= 1 {
			tw.done = true
			if tw.OnComplete != nil {
				tw.OnComplete()
			}
		}
	}

	// Compact in place, keeping tweens added by callbacks
	live := g.tweens[:0]
	for _, tw := range g.tweens {
		if !tw.done {
			live = append(live, tw)
		}
	}
	g.tweens = live
}

// CancelAll drops every tween without firing completions
// Frozen mid-flight values stay wherever the last Advance left them
func (g *Group) CancelAll() {
	for _, tw := range g.tweens {
		tw.done = true
	}
	// New slice: an Advance snapshot may still alias the old backing array
	g.tweens = nil
}

// Active returns the number of live tweens
func (g *Group) Active() int {
	n := 0
	for _, tw := range g.tweens {
		if !tw.done {
			n++
		}
	}
	return n
}
