package rig

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"cubefolio/internal/xform"
)

func settle(s State, cfg Config, scroll float32, compact bool) State {
	for i := 0; i < 600; i++ {
		s = Step(s, cfg, scroll, compact, 0.016)
	}
	return s
}

func TestNewStateMatchesStartTargets(t *testing.T) {
	s := NewState(false)
	if s.Pos != wideTargets.StartPos || s.Scale != wideTargets.StartScale {
		t.Fatalf("wide start state %+v does not match targets", s)
	}
	s = NewState(true)
	if s.Pos != compactTargets.StartPos || s.Scale != compactTargets.StartScale {
		t.Fatalf("compact start state %+v does not match targets", s)
	}
}

func TestStepConvergesToScrollEndpoints(t *testing.T) {
	cfg := DefaultConfig()

	s := settle(NewState(false), cfg, 0, false)
	if math32.Abs(s.Scale-wideTargets.StartScale) > 0.01 {
		t.Fatalf("scale at scroll 0 is %v, want %v", s.Scale, wideTargets.StartScale)
	}

	s = settle(NewState(false), cfg, cfg.ScrollSpan, false)
	if math32.Abs(s.Scale-wideTargets.EndScale) > 0.01 {
		t.Fatalf("scale at full scroll is %v, want %v", s.Scale, wideTargets.EndScale)
	}
	if math32.Abs(s.Pos.X-wideTargets.EndPos.X) > 0.01 {
		t.Fatalf("x at full scroll is %v, want %v", s.Pos.X, wideTargets.EndPos.X)
	}
}

func TestStepClampsScroll(t *testing.T) {
	cfg := DefaultConfig()
	under := settle(NewState(false), cfg, -500, false)
	over := settle(NewState(false), cfg, cfg.ScrollSpan*10, false)
	atZero := settle(NewState(false), cfg, 0, false)
	atFull := settle(NewState(false), cfg, cfg.ScrollSpan, false)

	if math32.Abs(under.Scale-atZero.Scale) > 1e-3 {
		t.Fatal("negative scroll not clamped to 0")
	}
	if math32.Abs(over.Scale-atFull.Scale) > 1e-3 {
		t.Fatal("overscroll not clamped to 1")
	}
}

func TestCompactTargetsDiffer(t *testing.T) {
	cfg := DefaultConfig()
	wide := settle(NewState(false), cfg, cfg.ScrollSpan, false)
	compact := settle(NewState(true), cfg, cfg.ScrollSpan, true)
	if math32.Abs(wide.Pos.X-compact.Pos.X) < 0.5 {
		t.Fatalf("wide and compact endpoints too close: %v vs %v", wide.Pos.X, compact.Pos.X)
	}
}

func TestSpinAccumulates(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(false)
	s = Step(s, cfg, 0, false, 1.0)
	if math32.Abs(s.Spin-cfg.SpinRate) > 1e-5 {
		t.Fatalf("spin after 1s is %v, want %v", s.Spin, cfg.SpinRate)
	}
	s = Step(s, cfg, 0, false, 1.0)
	if math32.Abs(s.Spin-2*cfg.SpinRate) > 1e-5 {
		t.Fatalf("spin after 2s is %v, want %v", s.Spin, 2*cfg.SpinRate)
	}
}

func TestStepIsPure(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(false)
	a := Step(s, cfg, 300, false, 0.016)
	b := Step(s, cfg, 300, false, 0.016)
	if a != b {
		t.Fatal("Step is not deterministic")
	}
}

func TestApplyWritesGroupTransform(t *testing.T) {
	group := xform.New()
	s := State{Pos: rl.NewVector3(1, 2, 3), Scale: 0.5, Yaw: 0.3, Spin: 0.1}
	Apply(group, s)
	if group.Pos != s.Pos {
		t.Fatalf("group pos %v, want %v", group.Pos, s.Pos)
	}
	if group.Scale != 0.5 {
		t.Fatalf("group scale %v, want 0.5", group.Scale)
	}
	// Yaw and spin compose into one rotation about Y.
	v := rl.Vector3RotateByQuaternion(rl.NewVector3(1, 0, 0), group.Rot)
	want := rl.Vector3RotateByQuaternion(rl.NewVector3(1, 0, 0), rl.QuaternionFromAxisAngle(rl.NewVector3(0, 1, 0), 0.4))
	if math32.Abs(v.X-want.X) > 1e-5 || math32.Abs(v.Z-want.Z) > 1e-5 {
		t.Fatal("group rotation does not match yaw+spin")
	}
	// Nil group must not panic.
	Apply(nil, s)
}
