package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/drift/parameter"
)

// oscillator generates a fixed-length sine tone
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewOscillator creates a sine streamer of the given length
func NewOscillator(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping so cues start and end without clicks
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
	volume         float64
}

// NewEnvelope wraps s with a linear attack and release at the given volume
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, volume float64, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = total - att
		if rel < 0 {
			att, rel = total, 0
		}
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
		volume:         volume,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := e.volume
		if e.position < e.attackSamples {
			vol *= float64(e.position) / float64(e.attackSamples)
		} else if rem := e.totalSamples - e.position; rem < e.releaseSamples {
			vol *= float64(rem) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// NewCue builds the transition blip for a formation index: a short enveloped
// sine, pitched one step up per index so the cycle is audible
func NewCue(formationIndex int, rate beep.SampleRate) beep.Streamer {
	if formationIndex < 0 {
		formationIndex = 0
	}
	freq := parameter.CueBaseFreq + parameter.CueFreqStep*float64(formationIndex)
	osc := NewOscillator(freq, parameter.CueDuration, rate)
	return NewEnvelope(osc, parameter.CueDuration, parameter.CueAttack,
		parameter.CueRelease, parameter.CueVolume, rate)
}
