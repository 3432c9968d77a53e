// Package fonts finds and loads the UI font bundled under assets/fonts.
// Everything falls back to raylib's default pixel font, so a missing font is
// a cosmetic downgrade, not an error.
package fonts

import (
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// exts are the file extensions considered font files.
var exts = []string{".ttf", ".otf"}

// baseDirs are candidate font directories, relative to the process cwd, so the
// font is found whether run from the repo root or cmd/portfolio.
var baseDirs = []string{"assets/fonts", "../../assets/fonts"}

// loadSize is the rasterized glyph size; large enough for the hero heading.
const loadSize = 64

// Find returns the first font file under the candidate directories, preferring
// one whose name contains "regular". Empty string when none exists.
func Find() string {
	for _, base := range baseDirs {
		var first, regular string
		_ = filepath.Walk(filepath.Clean(base), func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			for _, e := range exts {
				if ext == e {
					if first == "" {
						first = path
					}
					if regular == "" && strings.Contains(strings.ToLower(path), "regular") {
						regular = path
					}
				}
			}
			return nil
		})
		if regular != "" {
			return regular
		}
		if first != "" {
			return first
		}
	}
	return ""
}

// Load loads the bundled font, or a zero font (use raylib's default) when no
// font file is present or loading fails. Call after the window/GL context exists.
func Load() rl.Font {
	path := Find()
	if path == "" {
		return rl.Font{}
	}
	f := rl.LoadFontEx(path, loadSize, nil)
	if f.Texture.ID == 0 {
		return rl.Font{}
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	return f
}
