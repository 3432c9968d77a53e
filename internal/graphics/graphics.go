package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	defaultWidth  = 1280
	defaultHeight = 800
)

// Run starts the window and main loop. Each frame it calls update (input and
// animation) with the frame time in seconds, then clears the screen and calls
// draw. The window is resizable so the compact layout can be exercised by
// dragging it narrow. Returns when the window is closed.
func Run(title string, update func(dt float32), draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(defaultWidth, defaultHeight, title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // ESC toggles the console; close via window button
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(12, 13, 16, 255))
		draw()
		rl.EndDrawing()
	}
}
