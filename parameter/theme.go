package parameter

// Theme cosmetics
// Opacity affects presentation only; the dark speed factor multiplies the
// elapsed-time accumulator, never individual formulas
const (
	ThemeLightOpacity = 1.0
	ThemeDarkOpacity  = 0.55

	ThemeLightSpeed = 1.0
	ThemeDarkSpeed  = 0.6
)
