// Package rig eases the cube group's outer transform toward a target driven by
// the page's virtual scroll position. It never touches individual blocks, so
// it composes with the layer animation running underneath.
package rig

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"cubefolio/internal/tween"
	"cubefolio/internal/xform"
)

// Targets are the transform endpoints for scroll fraction 0 and 1.
type Targets struct {
	StartPos   rl.Vector3
	EndPos     rl.Vector3
	StartScale float32
	EndScale   float32
	YawSpan    float32 // additional yaw (radians) gained over the full scroll
}

// wideTargets parks the cube center stage and drifts it off to the side as the
// visitor scrolls into the content.
var wideTargets = Targets{
	StartPos:   rl.NewVector3(0, -0.2, 0),
	EndPos:     rl.NewVector3(2.4, 0.8, -1.0),
	StartScale: 1.0,
	EndScale:   0.55,
	YawSpan:    1.2,
}

// compactTargets keep the cube centered and shrink it upward instead, for
// narrow windows where there is no side to drift to.
var compactTargets = Targets{
	StartPos:   rl.NewVector3(0, -0.4, 0),
	EndPos:     rl.NewVector3(0, 1.6, -0.5),
	StartScale: 0.8,
	EndScale:   0.45,
	YawSpan:    0.8,
}

// Config tunes the scroll window and motion feel.
type Config struct {
	ScrollSpan float32 // virtual scroll units mapped onto the [0,1] fraction
	SmoothRate float32 // exponential smoothing rate toward targets, 1/s
	SpinRate   float32 // ambient yaw speed, rad/s
}

// DefaultConfig returns the stock motion tuning.
func DefaultConfig() Config {
	return Config{ScrollSpan: 1200, SmoothRate: 6, SpinRate: 0.15}
}

// State is the rig's smoothed output. Start from NewState so the cube does not
// ease in from a degenerate zero scale.
type State struct {
	Pos   rl.Vector3
	Scale float32
	Yaw   float32 // scroll-driven yaw, eased
	Spin  float32 // ambient spin, accumulates forever
}

// NewState returns a state resting at the scroll-0 target for the layout.
func NewState(compact bool) State {
	t := wideTargets
	if compact {
		t = compactTargets
	}
	return State{Pos: t.StartPos, Scale: t.StartScale}
}

// Step advances prev by dt given the sampled scroll offset and layout flag.
// Pure: same inputs, same output. The scroll fraction is clamped to [0,1],
// shaped with an out-cubic ease, and the transform is exponentially smoothed
// toward the interpolated target rather than jumping.
func Step(prev State, cfg Config, scroll float32, compact bool, dt float32) State {
	t := wideTargets
	if compact {
		t = compactTargets
	}
	f := float32(0)
	if cfg.ScrollSpan > 0 {
		f = scroll / cfg.ScrollSpan
	}
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	f = tween.OutCubic(f)

	target := State{
		Pos:   rl.Vector3Lerp(t.StartPos, t.EndPos, f),
		Scale: t.StartScale + (t.EndScale-t.StartScale)*f,
		Yaw:   t.YawSpan * f,
	}

	next := State{
		Pos: rl.NewVector3(
			tween.Smooth(prev.Pos.X, target.Pos.X, cfg.SmoothRate, dt),
			tween.Smooth(prev.Pos.Y, target.Pos.Y, cfg.SmoothRate, dt),
			tween.Smooth(prev.Pos.Z, target.Pos.Z, cfg.SmoothRate, dt),
		),
		Scale: tween.Smooth(prev.Scale, target.Scale, cfg.SmoothRate, dt),
		Yaw:   tween.Smooth(prev.Yaw, target.Yaw, cfg.SmoothRate, dt),
		Spin:  prev.Spin + cfg.SpinRate*dt,
	}
	return next
}

// Apply writes the state onto the cube group's outer transform.
func Apply(group *xform.Node, s State) {
	if group == nil {
		return
	}
	group.Pos = s.Pos
	group.Scale = s.Scale
	group.Rot = rl.QuaternionFromAxisAngle(rl.NewVector3(0, 1, 0), s.Yaw+s.Spin)
}
