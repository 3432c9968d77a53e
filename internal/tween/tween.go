package tween

import (
	"github.com/chewxy/math32"
)

// Ease maps linear progress t in [0,1] to eased progress.
type Ease func(t float32) float32

// Linear returns t unchanged.
func Linear(t float32) float32 { return t }

// InOutQuad accelerates through the first half and decelerates through the second.
func InOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := 1 - t
	return 1 - 2*u*u
}

// OutCubic decelerates toward the end. Used for scroll progress shaping.
func OutCubic(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u
}

// Tween interpolates a float32 from a start to an end value over a fixed duration.
// Advance it with Update(dt); OnUpdate receives the current value each step and
// OnComplete fires exactly once when the duration elapses. A Tween is single-use.
type Tween struct {
	from, to   float32
	duration   float32
	elapsed    float32
	ease       Ease
	done       bool
	OnUpdate   func(v float32)
	OnComplete func()
}

// New returns a tween from a to b over duration seconds with the given easing.
// A nil ease means Linear. A non-positive duration completes on the first Update.
func New(from, to, duration float32, ease Ease) *Tween {
	if ease == nil {
		ease = Linear
	}
	return &Tween{from: from, to: to, duration: duration, ease: ease}
}

// Done reports whether the tween has completed (or was cancelled).
func (t *Tween) Done() bool {
	return t.done
}

// Cancel marks the tween done without firing OnComplete or a final OnUpdate.
func (t *Tween) Cancel() {
	t.done = true
}

// Value returns the current interpolated value.
func (t *Tween) Value() float32 {
	if t.duration <= 0 || t.elapsed >= t.duration {
		return t.to
	}
	return t.from + (t.to-t.from)*t.ease(t.elapsed/t.duration)
}

// Update advances the tween by dt seconds, invoking OnUpdate with the current value
// and OnComplete when the end is reached. Calls after completion are no-ops.
func (t *Tween) Update(dt float32) {
	if t.done {
		return
	}
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.done = true
		if t.OnUpdate != nil {
			t.OnUpdate(t.to)
		}
		if t.OnComplete != nil {
			t.OnComplete()
		}
		return
	}
	if t.OnUpdate != nil {
		t.OnUpdate(t.Value())
	}
}

// Smooth moves current toward target with exponential smoothing: rate is the
// convergence speed in 1/seconds. Frame-rate independent; never overshoots.
func Smooth(current, target, rate, dt float32) float32 {
	if rate <= 0 || dt <= 0 {
		return current
	}
	k := 1 - math32.Exp(-rate*dt)
	return current + (target-current)*k
}
