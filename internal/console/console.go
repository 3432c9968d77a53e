// Package console is the ESC-toggled developer console: a one-line input bar
// with the recent log above it. Lines starting with "/" run registered
// commands; anything else is just logged.
package console

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"cubefolio/internal/commands"
	"cubefolio/internal/logger"
)

const (
	barHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 12
	lineHeight       = fontSize + 4
)

var (
	// Reused every frame to avoid per-frame color allocations.
	barColor  = rl.NewColor(40, 40, 40, 255)
	lineColor = rl.NewColor(80, 80, 80, 255)
	historyBg = rl.NewColor(24, 24, 24, 240)
)

// Console handles the input bar and log history. Closed by default; ESC opens.
type Console struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	font     rl.Font // optional; zero texture ID = raylib default font
}

// New returns a console that logs lines and runs "/..." through reg.
func New(log *logger.Logger, reg *commands.Registry) *Console {
	return &Console{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing input.
func (c *Console) IsOpen() bool {
	return c.open
}

// SetFont sets the font used to draw the console.
func (c *Console) SetFont(font rl.Font) {
	c.font = font
}

// Update handles ESC (toggle), and when open: typing, paste, backspace, enter.
// Call once per frame.
func (c *Console) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		c.open = !c.open
	}
	if !c.open {
		return
	}
	// Paste: Ctrl+V (Windows/Linux) or Cmd+V (macOS)
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			c.inputBuf += pasted
		}
	} else {
		for {
			ch := rl.GetCharPressed()
			if ch == 0 {
				break
			}
			c.inputBuf += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(c.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(c.inputBuf)
		c.inputBuf = c.inputBuf[:len(c.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && c.inputBuf != "" {
		line := c.inputBuf
		c.inputBuf = ""
		c.log.Log(line)

		if args, isCmd := commands.Parse(line); isCmd {
			if err := c.reg.Execute(args); err != nil {
				c.log.Log(err.Error())
			}
		}
	}
}

// Draw draws the input bar at the bottom when open, and the recent log lines
// above it.
func (c *Console) Draw() {
	if !c.open {
		return
	}
	screenW := int(rl.GetScreenWidth())
	screenH := int(rl.GetScreenHeight())
	barY := screenH - barHeight

	historyHeight := maxLinesOnScreen * lineHeight
	historyY := barY - historyHeight
	if historyY < 0 {
		historyHeight = barY
		historyY = 0
	}
	if historyHeight > 0 {
		rl.DrawRectangle(0, int32(historyY), int32(screenW), int32(historyHeight), historyBg)
	}
	lines := c.log.Lines()
	start := 0
	if len(lines) > maxLinesOnScreen {
		start = len(lines) - maxLinesOnScreen
	}
	for i := start; i < len(lines); i++ {
		y := historyY + (i-start)*lineHeight + padding
		line := lines[i]
		if len(line) > 200 {
			line = line[:197] + "..."
		}
		c.text(line, padding, y, rl.LightGray)
	}

	rl.DrawRectangle(0, int32(barY), int32(screenW), barHeight, barColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, lineColor)
	c.text(prompt+c.inputBuf+"|", padding, barY+padding, rl.White)
}

func (c *Console) text(s string, x, y int, col rl.Color) {
	if c.font.Texture.ID != 0 {
		rl.DrawTextEx(c.font, s, rl.NewVector2(float32(x), float32(y)), fontSize, 1, col)
	} else {
		rl.DrawText(s, int32(x), int32(y), fontSize, col)
	}
}
