package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws runtime overlays in the top-right: FPS, heap allocation, and an
// optional status line (the cube's current animation phase). All off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	// Status, when set, is polled every updateInterval frames and its result
	// drawn under the other overlays. Used for the scramble/solve phase.
	Status func() string

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastStatText string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the heap counter is drawn.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// Draw renders any enabled overlays. Call last in the draw loop so they sit on
// top. Text is only recomputed every updateInterval frames.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}
	if d.Status != nil && d.lastStatText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		y = drawRight(d.lastFpsText, screenW, y, rl.Green)
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		y = drawRight(d.lastMemText, screenW, y, rl.Green)
	}
	if d.Status != nil {
		if update {
			d.lastStatText = d.Status()
		}
		drawRight(d.lastStatText, screenW, y, rl.SkyBlue)
	}
}

// drawRight draws one right-aligned overlay line and returns the next y.
func drawRight(text string, screenW, y int32, col rl.Color) int32 {
	if text == "" {
		return y
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, col)
	return y + lineHeight
}
