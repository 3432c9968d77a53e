// Package tuning loads animation pacing and scroll-feel knobs from YAML.
// Everything has a default so the file is optional.
package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TuningPath is the default tuning file, relative to the working directory.
const TuningPath = "config/tuning.yaml"

type Tuning struct {
	TurnMs     int `yaml:"turn_ms"`       // one quarter-turn animation
	TurnGapMs  int `yaml:"turn_gap_ms"`   // pause between turns in a phase
	PhaseGapMs int `yaml:"phase_gap_ms"`  // pause between scramble and solve
	StartupMs  int `yaml:"startup_ms"`    // delay before the first turn
	ScrollSpan int `yaml:"scroll_span"`   // virtual scroll units over the full window
	SmoothRate int `yaml:"smooth_rate"`   // transform smoothing, 1/s
	SpinMilli  int `yaml:"spin_millirad"` // ambient spin speed, millirad/s
}

// Default returns the stock pacing.
func Default() Tuning {
	return Tuning{
		TurnMs:     400,
		TurnGapMs:  150,
		PhaseGapMs: 1500,
		StartupMs:  2000,
		ScrollSpan: 1200,
		SmoothRate: 6,
		SpinMilli:  150,
	}
}

// Load reads tuning from path. A missing file returns Default() without
// error; a malformed file returns Default() and the parse error. Fields left
// at zero in the file keep their defaults.
func Load(path string) (Tuning, error) {
	t := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, nil
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return Default(), fmt.Errorf("tuning: %w", err)
	}
	d := Default()
	if t.TurnMs <= 0 {
		t.TurnMs = d.TurnMs
	}
	if t.TurnGapMs <= 0 {
		t.TurnGapMs = d.TurnGapMs
	}
	if t.PhaseGapMs <= 0 {
		t.PhaseGapMs = d.PhaseGapMs
	}
	if t.StartupMs < 0 {
		t.StartupMs = d.StartupMs
	}
	if t.ScrollSpan <= 0 {
		t.ScrollSpan = d.ScrollSpan
	}
	if t.SmoothRate <= 0 {
		t.SmoothRate = d.SmoothRate
	}
	if t.SpinMilli < 0 {
		t.SpinMilli = d.SpinMilli
	}
	return t, nil
}

// Seconds converts a millisecond knob to float seconds.
func Seconds(ms int) float32 {
	return float32(ms) / 1000
}
