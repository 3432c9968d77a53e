package main

import (
	"flag"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"cubefolio/internal/commands"
	"cubefolio/internal/console"
	"cubefolio/internal/content"
	"cubefolio/internal/cube"
	"cubefolio/internal/debug"
	"cubefolio/internal/engineconfig"
	"cubefolio/internal/env"
	"cubefolio/internal/fonts"
	"cubefolio/internal/graphics"
	"cubefolio/internal/logger"
	"cubefolio/internal/render"
	"cubefolio/internal/rig"
	"cubefolio/internal/scene"
	"cubefolio/internal/sections"
	"cubefolio/internal/tuning"
	"cubefolio/internal/xform"
)

const (
	wheelStep = 60  // virtual scroll units per wheel notch
	keyStep   = 900 // virtual scroll units per second while a scroll key is held
)

func main() {
	_ = env.Load(".env")
	log := logger.New()

	prefs, _ := engineconfig.Load()
	tun, err := tuning.Load(env.PathOr("TUNING_PATH", tuning.TuningPath))
	if err != nil {
		log.Logf("using default tuning: %v", err)
	}
	cont, err := content.Load(env.PathOr("CONTENT_PATH", content.ContentPath))
	if err != nil {
		log.Logf("using default content: %v", err)
	}

	scn := scene.New()
	scn.SetGridVisible(prefs.GridVisible)

	group := xform.New()
	eng := cube.NewEngine(group)
	eng.TurnDuration = tuning.Seconds(tun.TurnMs)
	drv := cube.NewDriver(eng, cube.ScrambleMoves, cube.Timings{
		Startup:  tuning.Seconds(tun.StartupMs),
		TurnGap:  tuning.Seconds(tun.TurnGapMs),
		PhaseGap: tuning.Seconds(tun.PhaseGapMs),
	})
	drv.SetPaused(prefs.ReducedMotion)

	rnd := render.New()
	view := sections.New(cont)

	rigCfg := rig.Config{
		ScrollSpan: float32(tun.ScrollSpan),
		SmoothRate: float32(tun.SmoothRate),
		SpinRate:   float32(tun.SpinMilli) / 1000,
	}
	rigState := rig.NewState(false)

	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowMemAlloc(prefs.ShowMemAlloc)
	dbg.Status = func() string {
		phase, idx, total := drv.Progress()
		return fmt.Sprintf("%s %d/%d", phase, idx, total)
	}

	reg := commands.NewRegistry()
	con := console.New(log, reg)
	registerCommands(reg, log, scn, drv, eng, dbg, &prefs)

	var scroll float32
	compact := false
	fontReady := false
	var font rl.Font

	update := func(dt float32) {
		con.Update()
		if !con.IsOpen() {
			scroll -= rl.GetMouseWheelMove() * wheelStep
			if rl.IsKeyDown(rl.KeyDown) || rl.IsKeyDown(rl.KeyPageDown) {
				scroll += keyStep * dt
			}
			if rl.IsKeyDown(rl.KeyUp) || rl.IsKeyDown(rl.KeyPageUp) {
				scroll -= keyStep * dt
			}
		}
		screenH := int(rl.GetScreenHeight())
		maxScroll := view.Span(screenH) - float32(screenH)
		if maxScroll < 0 {
			maxScroll = 0
		}
		if scroll < 0 {
			scroll = 0
		} else if scroll > maxScroll {
			scroll = maxScroll
		}
		compact = int(rl.GetScreenWidth()) < prefs.Breakpoint()

		drv.Update(dt)
		rigState = rig.Step(rigState, rigCfg, scroll, compact, dt)
		rig.Apply(group, rigState)
	}

	draw := func() {
		if !fontReady {
			// Font load needs the GL context, so it happens on the first frame.
			font = fonts.Load()
			view.SetFont(font)
			con.SetFont(font)
			fontReady = true
		}
		scn.Draw(func() {
			cam := scn.Camera.Position
			rnd.SetView([3]float32{cam.X, cam.Y, cam.Z}, [3]float32{0.5, 1, 0.35})
			rnd.DrawBlocks(eng.Blocks())
		})
		view.Draw(scroll, compact)
		view.Footer(scroll)
		con.Draw()
		dbg.Draw()
	}

	graphics.Run(cont.Hero.Name+" | portfolio", update, draw)
	drv.Stop()
}

// registerCommands wires the console commands: overlays, grid, animation
// control, cube state dump, and prefs persistence.
func registerCommands(reg *commands.Registry, log *logger.Logger, scn *scene.Scene, drv *cube.Driver, eng *cube.Engine, dbg *debug.Debug, prefs *engineconfig.Prefs) {
	gridFS := flag.NewFlagSet("grid", flag.ContinueOnError)
	gridVisible := gridFS.Bool("visible", true, "show the debug grid")
	reg.Register("grid", gridFS, func() error {
		scn.SetGridVisible(*gridVisible)
		prefs.GridVisible = *gridVisible
		return nil
	})

	fpsFS := flag.NewFlagSet("fps", flag.ContinueOnError)
	fpsShow := fpsFS.Bool("show", true, "show the FPS counter")
	reg.Register("fps", fpsFS, func() error {
		dbg.SetShowFPS(*fpsShow)
		prefs.ShowFPS = *fpsShow
		return nil
	})

	memFS := flag.NewFlagSet("mem", flag.ContinueOnError)
	memShow := memFS.Bool("show", true, "show the heap counter")
	reg.Register("mem", memFS, func() error {
		dbg.SetShowMemAlloc(*memShow)
		prefs.ShowMemAlloc = *memShow
		return nil
	})

	animFS := flag.NewFlagSet("anim", flag.ContinueOnError)
	animPause := animFS.Bool("pause", false, "pause the scramble loop")
	animResume := animFS.Bool("resume", false, "resume the scramble loop")
	reg.Register("anim", animFS, func() error {
		switch {
		case *animPause:
			drv.SetPaused(true)
			log.Log("animation paused")
		case *animResume:
			drv.SetPaused(false)
			log.Log("animation resumed")
		default:
			log.Logf("animation paused: %v", drv.Paused())
		}
		*animPause = false
		*animResume = false
		return nil
	})

	cubeFS := flag.NewFlagSet("cube", flag.ContinueOnError)
	reg.Register("cube", cubeFS, func() error {
		st := eng.Store()
		log.Logf("solved: %v, consistent: %v", st.Solved(), st.Consistent())
		for id := 0; id < cube.BlockCount; id++ {
			c := st.Cell(id)
			if c != cube.Identity(id) {
				log.Logf("block %2d at (%+d,%+d,%+d)", id, c.X, c.Y, c.Z)
			}
		}
		return nil
	})

	saveFS := flag.NewFlagSet("save", flag.ContinueOnError)
	reg.Register("save", saveFS, func() error {
		if err := engineconfig.Save(*prefs); err != nil {
			return err
		}
		log.Log("prefs saved")
		return nil
	})

	helpFS := flag.NewFlagSet("help", flag.ContinueOnError)
	reg.Register("help", helpFS, func() error {
		for _, name := range reg.Names() {
			log.Log("/" + name)
		}
		return nil
	})
}
