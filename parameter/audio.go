package parameter

import "time"

// Transition cue synthesis
const (
	AudioSampleRate = 44100

	// CueBaseFreq is the blip pitch for the first formation key; each key
	// steps up by CueFreqStep so the ear can follow the cycle
	CueBaseFreq = 220.0
	CueFreqStep = 55.0

	CueDuration = 180 * time.Millisecond
	CueAttack   = 8 * time.Millisecond
	CueRelease  = 120 * time.Millisecond
	CueVolume   = 0.35

	// SpeakerBuffer is the beep speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond
)
