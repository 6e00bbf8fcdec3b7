package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/drift/asset"
	"github.com/lixenwraith/drift/audio"
	"github.com/lixenwraith/drift/engine"
	"github.com/lixenwraith/drift/parameter"
	"github.com/lixenwraith/drift/render"
	"github.com/lixenwraith/drift/system"
)

var (
	paletteFlag = flag.String("palette", "", "path to a glyph ramp file (blank = built-in)")
	fpsFlag     = flag.Int("fps", parameter.TargetFPS, "target frames per second")
	muteFlag    = flag.Bool("mute", false, "disable transition cues")
	darkFlag    = flag.Bool("dark", false, "start in the dark theme")
)

func main() {
	var screen tcell.Screen

	// Panic recovery: restore the terminal before the stack trace hits stderr
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\ndrift crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	clock := engine.NewMonotonicTimeProvider()
	stage := engine.NewStage(clock, nil)

	stage.AddSystem(system.NewTransitionSystem(stage))
	stage.AddSystem(system.NewCameraSystem(stage))
	stage.AddSystem(system.NewBreathSystem(stage))

	cues := audio.NewService(*muteFlag, stage.Status)
	defer cues.Close()
	stage.AddSystem(cues)

	res := asset.Result{Palette: asset.Fallback()}
	if *paletteFlag != "" {
		p, err := asset.Load(*paletteFlag)
		res = asset.Result{Palette: p, Err: err}
	}
	stage.Initialize(res)
	defer stage.Dispose()

	sink := render.NewScreenSink(screen, stage.Palette, stage.Status)
	stage.SetSink(sink)

	if *darkFlag {
		stage.SetDarkMode(true)
	}
	w, h := screen.Size()
	stage.Resize(w, h)

	fps := *fpsFlag
	if fps < 1 {
		fps = parameter.TargetFPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	inputCh := startInputReader(screen)

	expanded := false
	dark := *darkFlag
	paused := false

	for {
		select {
		case ev, ok := <-inputCh:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				stage.Resize(w, h)
				screen.Sync()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					return
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'z':
					expanded = !expanded
					stage.SetExpanded(expanded)
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'f':
					stage.ForceRetarget()
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'd':
					dark = !dark
					stage.SetDarkMode(dark)
				case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
					paused = !paused
				case ev.Key() == tcell.KeyTab:
					sink.ToggleDiagnostics()
				}
			}

		case <-ticker.C:
			if paused {
				continue
			}
			stage.Tick(clock.Now())
		}
	}
}

// startInputReader pumps terminal events onto a channel so the frame loop
// can select over input and the tick together
func startInputReader(screen tcell.Screen) chan tcell.Event {
	ch := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(ch)
				return
			}
			select {
			case ch <- ev:
			default:
			}
		}
	}()
	return ch
}
