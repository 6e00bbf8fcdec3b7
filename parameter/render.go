package parameter

// Terminal renderer tuning
const (
	// HUDRows is reserved at the bottom of the screen for status output
	HUDRows = 1

	// DepthDim is the brightness falloff applied across the visible z range
	DepthDim = 0.55

	// MinGlyphScale culls elements projected smaller than this
	MinGlyphScale = 0.05

	// ViewSpan is the world-space height mapped onto the visible rows at
	// unit perspective; it sets the overall zoom of both renderers
	ViewSpan = 3500.0
)

// Window renderer tuning (cmd/drift-window)
const (
	WindowWidth  = 1280
	WindowHeight = 800

	// WindowParticleRadius is the base circle radius at scale 1.0, before
	// perspective and breathing are applied
	WindowParticleRadius = 3.5
)
