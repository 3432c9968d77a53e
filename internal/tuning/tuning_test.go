package tuning

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	tun, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if tun != Default() {
		t.Fatalf("got %+v, want defaults", tun)
	}
}

func TestLoadOverridesAndBackfills(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	doc := "turn_ms: 250\nphase_gap_ms: 3000\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	tun, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tun.TurnMs != 250 {
		t.Fatalf("turn_ms %d, want 250", tun.TurnMs)
	}
	if tun.PhaseGapMs != 3000 {
		t.Fatalf("phase_gap_ms %d, want 3000", tun.PhaseGapMs)
	}
	// Unset fields keep their defaults.
	if tun.TurnGapMs != Default().TurnGapMs {
		t.Fatalf("turn_gap_ms %d, want default %d", tun.TurnGapMs, Default().TurnGapMs)
	}
	if tun.ScrollSpan != Default().ScrollSpan {
		t.Fatalf("scroll_span %d, want default %d", tun.ScrollSpan, Default().ScrollSpan)
	}
}

func TestLoadMalformedFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("turn_ms: [what"), 0644); err != nil {
		t.Fatal(err)
	}
	tun, err := Load(path)
	if err == nil {
		t.Fatal("malformed file should return an error")
	}
	if tun != Default() {
		t.Fatal("malformed file should fall back to defaults")
	}
}

func TestSeconds(t *testing.T) {
	if got := Seconds(400); got != 0.4 {
		t.Fatalf("Seconds(400) = %v, want 0.4", got)
	}
	if got := Seconds(0); got != 0 {
		t.Fatalf("Seconds(0) = %v, want 0", got)
	}
}
