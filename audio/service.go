package audio

import (
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/drift/event"
	"github.com/lixenwraith/drift/parameter"
	"github.com/lixenwraith/drift/status"
)

// Service plays transition cues through the beep speaker
// Registered on the stage as an event handler; a failed speaker init drops
// the service into silent mode instead of failing startup
type Service struct {
	rate    beep.SampleRate
	enabled bool

	statPlayed *atomic.Int64
	statSilent *atomic.Bool
}

// NewService initializes the speaker unless muted
// Speaker failure is not fatal: the engine runs silent and the condition is
// visible in diagnostics only
func NewService(mute bool, reg *status.Registry) *Service {
	s := &Service{
		rate:       beep.SampleRate(parameter.AudioSampleRate),
		statPlayed: reg.Ints.Get("audio.cues_played"),
		statSilent: reg.Bools.Get("audio.silent"),
	}

	if !mute {
		if err := speaker.Init(s.rate, s.rate.N(parameter.SpeakerBuffer)); err == nil {
			s.enabled = true
		}
	}
	s.statSilent.Store(!s.enabled)
	return s
}

func (s *Service) Name() string { return "audio" }

func (s *Service) Priority() int { return parameter.PriorityAudio }

func (s *Service) Update() {}

func (s *Service) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest}
}

func (s *Service) HandleEvent(ev event.Event) {
	p, ok := ev.Payload.(*event.SoundRequestPayload)
	if !ok || !s.enabled {
		return
	}
	speaker.Play(NewCue(p.FormationIndex, s.rate))
	s.statPlayed.Add(1)
}

// Enabled reports whether the speaker initialized
func (s *Service) Enabled() bool { return s.enabled }

// Close releases the speaker
func (s *Service) Close() {
	if s.enabled {
		speaker.Close()
		s.enabled = false
		s.statSilent.Store(true)
	}
}
