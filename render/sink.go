package render

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/drift/asset"
	"github.com/lixenwraith/drift/engine"
	"github.com/lixenwraith/drift/formation"
	"github.com/lixenwraith/drift/parameter"
	"github.com/lixenwraith/drift/status"
)

// ScreenSink draws the population onto a tcell screen
// One glyph per element: the ramp position encodes apparent size, the tint
// dims with depth and the theme opacity. A single HUD row at the bottom shows
// the cycle state and key bindings
type ScreenSink struct {
	screen  tcell.Screen
	palette asset.Palette
	reg     *status.Registry
	diag    bool

	statFormation *atomic.Int64
	statCycles    *atomic.Int64
}

func NewScreenSink(screen tcell.Screen, palette asset.Palette, reg *status.Registry) *ScreenSink {
	if len(palette.Glyphs) == 0 {
		palette = asset.Fallback()
	}
	return &ScreenSink{
		screen:        screen,
		palette:       palette,
		reg:           reg,
		statFormation: reg.Ints.Get("transition.formation_index"),
		statCycles:    reg.Ints.Get("transition.cycles"),
	}
}

// RenderFrame draws one complete frame and shows it
func (s *ScreenSink) RenderFrame(v *engine.View) {
	width, height := v.Width, v.Height
	if width <= 0 || height <= 0 {
		width, height = s.screen.Size()
	}
	viewH := height - parameter.HUDRows
	if viewH < 1 {
		return
	}

	s.screen.Clear()

	for _, p := range ProjectAll(v.Elements, v.CameraZ, width, viewH) {
		if p.Scale < parameter.MinGlyphScale {
			continue
		}
		x := int(p.CX)
		y := int(p.CY)
		if x < 0 || x >= width || y < 0 || y >= viewH {
			continue
		}

		intensity := p.Scale
		if intensity > 1 {
			intensity = 1
		}
		glyph := s.palette.Glyphs[int(intensity*float64(len(s.palette.Glyphs)-1))]

		level := DepthBrightness(p.Depth) * v.Opacity
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(
			int32(float64(s.palette.R)*level),
			int32(float64(s.palette.G)*level),
			int32(float64(s.palette.B)*level),
		))
		s.screen.SetContent(x, y, glyph, nil, style)
	}

	if s.diag {
		s.drawDiagnostics(width, height)
	}
	s.drawHUD(width, height)
	s.screen.Show()
}

// ToggleDiagnostics flips the status counter overlay
func (s *ScreenSink) ToggleDiagnostics() {
	s.diag = !s.diag
}

// drawDiagnostics lists every registered counter above the HUD row
func (s *ScreenSink) drawDiagnostics(width, height int) {
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(160, 170, 140))

	lines := make([]string, 0, 16)
	s.reg.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s: %d", key, v.Load()))
	})
	s.reg.Floats.Range(func(key string, v *status.AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s: %.2f", key, v.Get()))
	})
	s.reg.Bools.Range(func(key string, v *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s: %v", key, v.Load()))
	})

	y := height - parameter.HUDRows - len(lines)
	if y < 0 {
		y = 0
	}
	for _, line := range lines {
		if y >= height-parameter.HUDRows {
			break
		}
		writeStr(s.screen, 0, y, line, style, width)
		y++
	}
}

func (s *ScreenSink) drawHUD(width, height int) {
	y := height - 1
	dim := tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 100, 110))

	name := "scatter"
	if idx := int(s.statFormation.Load()); idx >= 0 && idx < len(formation.Keys) {
		if s.statCycles.Load() > 0 {
			name = string(formation.Keys[idx])
		}
	}

	hud := fmt.Sprintf(" %-10s cycle %-3d  z:zoom  f:next  d:theme  space:pause  tab:diag  q:quit",
		name, s.statCycles.Load())
	writeStr(s.screen, 0, y, hud, dim, width)
}

func writeStr(screen tcell.Screen, x, y int, text string, style tcell.Style, maxX int) {
	for _, r := range text {
		if x >= maxX {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
