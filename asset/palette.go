package asset

import (
	"fmt"
	"os"
	"strings"
)

// Palette is the per-element visual: a glyph ramp ordered dim-to-bright and a
// base tint. Renderers index the ramp by projected size and depth
type Palette struct {
	Glyphs []rune
	R      uint8
	G      uint8
	B      uint8
}

// Result is delivered to the engine by the one-time loader
// Err being set is not fatal: the engine substitutes the fallback palette
type Result struct {
	Palette Palette
	Err     error
}

// defaultRamp covers the classic density gradient
const defaultRamp = ".:-=+*#%@"

// Fallback returns the deterministic built-in palette, used whenever loading
// fails so the engine never blocks on a missing resource
func Fallback() Palette {
	return Palette{
		Glyphs: []rune(defaultRamp),
		R:      120, G: 200, B: 255,
	}
}

// Load reads a palette file: first line is the glyph ramp, optional second
// line is "R G B" in decimal
// Only the line ending is stripped from the ramp: a leading space is the
// classic dimmest glyph of a density ramp and must survive
func Load(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, err
	}

	lines := strings.Split(string(data), "\n")
	ramp := strings.TrimRight(lines[0], "\r")
	if strings.TrimSpace(ramp) == "" {
		return Palette{}, fmt.Errorf("palette %s: empty glyph ramp", path)
	}

	p := Fallback()
	p.Glyphs = []rune(ramp)

	if len(lines) > 1 {
		tint := strings.TrimSpace(lines[1])
		if tint != "" {
			var r, g, b int
			if _, err := fmt.Sscanf(tint, "%d %d %d", &r, &g, &b); err != nil {
				return Palette{}, fmt.Errorf("palette %s: bad tint line: %w", path, err)
			}
			p.R, p.G, p.B = uint8(r), uint8(g), uint8(b)
		}
	}

	return p, nil
}
