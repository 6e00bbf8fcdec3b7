package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/drift/asset"
	"github.com/lixenwraith/drift/audio"
	"github.com/lixenwraith/drift/engine"
	"github.com/lixenwraith/drift/parameter"
	"github.com/lixenwraith/drift/render"
	"github.com/lixenwraith/drift/system"
)

var (
	muteFlag = flag.Bool("mute", false, "disable transition cues")
	darkFlag = flag.Bool("dark", false, "start in the dark theme")
)

// game drives the stage from ebiten's fixed-rate Update and draws the
// projected population as filled circles
type game struct {
	stage *engine.Stage
	clock engine.TimeProvider

	expanded bool
	dark     bool
	paused   bool

	width, height int
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.expanded = !g.expanded
		g.stage.SetExpanded(g.expanded)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.stage.ForceRetarget()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.dark = !g.dark
		g.stage.SetDarkMode(g.dark)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	if !g.paused {
		g.stage.Tick(g.clock.Now())
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	v := g.stage.View()

	bg := color.RGBA{R: 245, G: 246, B: 248, A: 255}
	if g.dark {
		bg = color.RGBA{R: 12, G: 14, B: 18, A: 255}
	}
	screen.Fill(bg)

	pal := g.stage.Palette
	for _, p := range render.ProjectAll(v.Elements, v.CameraZ, g.width, g.height) {
		radius := float32(p.Scale * parameter.WindowParticleRadius * parameter.CellAspect)
		if radius < 0.5 {
			continue
		}

		level := render.DepthBrightness(p.Depth) * v.Opacity
		tint := color.RGBA{
			R: uint8(float64(pal.R) * level),
			G: uint8(float64(pal.G) * level),
			B: uint8(float64(pal.B) * level),
			A: 255,
		}

		// The terminal projection already folds in the cell aspect; undo it
		// on x so circles land on square pixels
		x := float32(float64(g.width)/2 + (p.CX-float64(g.width)/2)/parameter.CellAspect)
		vector.DrawFilledCircle(screen, x, float32(p.CY), radius, tint, true)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.stage.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()

	clock := engine.NewMonotonicTimeProvider()
	stage := engine.NewStage(clock, nil)

	stage.AddSystem(system.NewTransitionSystem(stage))
	stage.AddSystem(system.NewCameraSystem(stage))
	stage.AddSystem(system.NewBreathSystem(stage))

	cues := audio.NewService(*muteFlag, stage.Status)
	defer cues.Close()
	stage.AddSystem(cues)

	stage.Initialize(asset.Result{Palette: asset.Fallback()})
	defer stage.Dispose()

	if *darkFlag {
		stage.SetDarkMode(true)
	}

	g := &game{
		stage:  stage,
		clock:  clock,
		dark:   *darkFlag,
		width:  parameter.WindowWidth,
		height: parameter.WindowHeight,
	}
	stage.Resize(g.width, g.height)

	ebiten.SetWindowSize(parameter.WindowWidth, parameter.WindowHeight)
	ebiten.SetWindowTitle("drift")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "drift-window: %v\n", err)
		os.Exit(1)
	}
}
