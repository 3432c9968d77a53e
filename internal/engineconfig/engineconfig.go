package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ConfigPath is the path to the prefs file, relative to the process working directory.
const ConfigPath = "config/engine.json"

// Prefs holds presentation preferences (debug overlays, grid, motion).
// Persisted across runs. Portfolio content is separate (config/content.yaml).
type Prefs struct {
	ShowFPS      bool `json:"show_fps"`
	ShowMemAlloc bool `json:"show_memalloc"`
	GridVisible  bool `json:"grid_visible"`
	// ReducedMotion starts the cube paused (no scramble loop) for visitors who
	// prefer still pages; the scroll transform still works.
	ReducedMotion bool `json:"reduced_motion"`
	// CompactWidth is the window width (px) below which the compact layout is
	// used. Zero means the default.
	CompactWidth int `json:"compact_width,omitempty"`
}

// DefaultCompactWidth is the layout breakpoint when CompactWidth is unset.
const DefaultCompactWidth = 900

// Default returns default preferences (overlays off, grid off, full motion).
func Default() Prefs {
	return Prefs{
		ShowFPS:       false,
		ShowMemAlloc:  false,
		GridVisible:   false,
		ReducedMotion: false,
	}
}

// Breakpoint returns the effective compact-layout width threshold.
func (p Prefs) Breakpoint() int {
	if p.CompactWidth > 0 {
		return p.CompactWidth
	}
	return DefaultCompactWidth
}

// Load reads preferences from ConfigPath. If the file is missing or invalid,
// returns Default() and does not create a file.
func Load() (Prefs, error) {
	data, err := os.ReadFile(ConfigPath)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to ConfigPath, creating the config directory if needed.
func Save(p Prefs) error {
	dir := filepath.Dir(ConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigPath, data, 0644)
}
