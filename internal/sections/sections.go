// Package sections draws the portfolio copy as a 2D overlay paged by the
// virtual scroll offset. Layout is a single column: hero, bio, timeline,
// skills, projects. Narrow windows use the compact variant (full-width text;
// the cube shrinks upward instead of drifting aside).
package sections

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"cubefolio/internal/content"
)

const (
	headingSize = 34
	titleSize   = 24
	bodySize    = 20
	lineGap     = 6
	sectionGap  = 90
	cardGap     = 18
	margin      = 48
	// heroDrop pushes the hero block toward the lower third so the cube owns
	// the first screen.
	heroDrop = 0.58
)

var (
	headingColor = rl.NewColor(235, 238, 244, 255)
	bodyColor    = rl.NewColor(178, 184, 196, 255)
	accentColor  = rl.NewColor(120, 200, 255, 255)
	dimColor     = rl.NewColor(120, 126, 138, 255)
)

// View renders the content sections. Font is optional; zero texture ID means
// the raylib default font.
type View struct {
	c    content.Content
	font rl.Font
}

// New returns a view over the given content.
func New(c content.Content) *View {
	return &View{c: c}
}

// SetFont sets the font used for all section text.
func (v *View) SetFont(font rl.Font) {
	v.font = font
}

// Span returns the total virtual scroll distance covered by the sections for
// the given screen height; the caller clamps the scroll offset to it.
func (v *View) Span(screenH int) float32 {
	// One screen for the hero plus the measured height of the rest.
	h := float32(screenH)
	h += v.sectionHeight(len(v.c.Bio.Paragraphs)*2 + 1)
	h += v.sectionHeight(len(v.c.Timeline) * 3)
	h += v.sectionHeight(len(v.c.Skills) * 2)
	h += v.sectionHeight(len(v.c.Projects) * 3)
	return h
}

func (v *View) sectionHeight(lines int) float32 {
	return float32(headingSize + sectionGap + lines*(bodySize+lineGap) + cardGap)
}

// Draw renders all sections offset by the scroll position. Offscreen text is
// skipped cheaply by y bounds.
func (v *View) Draw(scroll float32, compact bool) {
	screenW := int(rl.GetScreenWidth())
	screenH := int(rl.GetScreenHeight())

	// Wide layout keeps the text in the left half so the cube can drift into
	// the right; compact centers a single column.
	x := float32(margin)
	if compact {
		x = float32(screenW) * 0.12
	}

	y := float32(screenH)*heroDrop - scroll
	y = v.drawHero(x, y)
	y += sectionGap

	y = v.drawHeadedSection(x, y, screenH, v.c.Bio.Heading, func(y float32) float32 {
		for _, p := range v.c.Bio.Paragraphs {
			y = v.line(x, y, p, bodySize, bodyColor)
			y += lineGap
		}
		return y
	})

	y = v.drawHeadedSection(x, y, screenH, "Timeline", func(y float32) float32 {
		for _, e := range v.c.Timeline {
			y = v.line(x, y, e.Year+"  "+e.Title, titleSize, accentColor)
			if e.Org != "" {
				y = v.line(x, y, e.Org, bodySize, dimColor)
			}
			y = v.line(x, y, e.Summary, bodySize, bodyColor)
			y += cardGap
		}
		return y
	})

	y = v.drawHeadedSection(x, y, screenH, "Skills", func(y float32) float32 {
		for _, g := range v.c.Skills {
			y = v.line(x, y, g.Name, titleSize, accentColor)
			y = v.line(x, y, joinItems(g.Items), bodySize, bodyColor)
			y += cardGap
		}
		return y
	})

	v.drawHeadedSection(x, y, screenH, "Projects", func(y float32) float32 {
		for _, p := range v.c.Projects {
			y = v.line(x, y, p.Name, titleSize, accentColor)
			y = v.line(x, y, p.Summary, bodySize, bodyColor)
			meta := joinItems(p.Tags)
			if p.Link != "" {
				if meta != "" {
					meta += "   "
				}
				meta += p.Link
			}
			if meta != "" {
				y = v.line(x, y, meta, bodySize, dimColor)
			}
			y += cardGap
		}
		return y
	})
}

// drawHero draws the name and tagline. Returns the y below the block.
func (v *View) drawHero(x, y float32) float32 {
	y = v.line(x, y, v.c.Hero.Name, headingSize+12, headingColor)
	y += lineGap
	y = v.line(x, y, v.c.Hero.Tagline, titleSize, bodyColor)
	return y
}

// drawHeadedSection draws a heading then the body via fn, skipping entirely
// when the whole section is above or below the screen.
func (v *View) drawHeadedSection(x, y float32, screenH int, heading string, fn func(y float32) float32) float32 {
	if y > float32(screenH) {
		// Below the viewport: still advance y so later sections stack, but
		// nothing past this point can be visible either.
		y = v.line(x, y, heading, headingSize, headingColor)
		y += cardGap
		return fn(y) + sectionGap
	}
	y = v.line(x, y, heading, headingSize, headingColor)
	y += cardGap
	y = fn(y)
	return y + sectionGap
}

// line draws one line of text at (x, y) if it is on screen and returns the y
// below it.
func (v *View) line(x, y float32, text string, size int, col rl.Color) float32 {
	next := y + float32(size) + lineGap
	if text == "" || y < -float32(size) || y > float32(rl.GetScreenHeight()) {
		return next
	}
	if v.font.Texture.ID != 0 {
		rl.DrawTextEx(v.font, text, rl.NewVector2(x, y), float32(size), 1, col)
	} else {
		rl.DrawText(text, int32(x), int32(y), int32(size), col)
	}
	return next
}

func joinItems(items []string) string {
	out := ""
	for i, it := range items {
		if i > 0 {
			out += "  ·  "
		}
		out += it
	}
	return out
}

// Footer draws a one-line scroll hint at the bottom while the page is at the top.
func (v *View) Footer(scroll float32) {
	if scroll > 40 {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	text := "scroll"
	w := rl.MeasureText(text, bodySize)
	rl.DrawText(text, screenW/2-w/2, screenH-bodySize-16, bodySize, dimColor)
}
