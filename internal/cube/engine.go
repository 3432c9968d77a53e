package cube

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"cubefolio/internal/tween"
	"cubefolio/internal/xform"
)

// Turn phases. Exactly one turn runs at a time; the phases advance strictly
// Idle -> Grouping -> Rotating -> Settling -> Idle within one Turn/Update cycle.
type phase int

const (
	phaseIdle phase = iota
	phaseRotating
)

const (
	// defaultTurnDuration is the length of one quarter-turn animation.
	defaultTurnDuration = 0.4
	// posSnapUnit is the grid the local positions are rounded to after a turn.
	// Block offsets are multiples of it, so rounding only removes drift.
	posSnapUnit = float32(0.005)
	// quarterTurn is 90 degrees in radians.
	quarterTurn = math32.Pi / 2
)

// Block is one of the 27 sub-blocks: a stable id, the rendered size assigned
// once from its identity cell, and its scene node.
type Block struct {
	ID   int
	Size rl.Vector3
	Node *xform.Node
}

// Engine owns the block nodes, the logical position store, and the transient
// pivot used to rotate one layer at a time. All mutation of the store happens
// here, at the end of a completed turn.
type Engine struct {
	group  *xform.Node
	pivot  *xform.Node
	blocks [BlockCount]*Block
	store  *Store

	TurnDuration float32

	phase  phase
	axis   Axis
	dir    int
	active []int
	anim   *tween.Tween
	onDone func()
}

// NewEngine builds the 27 blocks at their configured offsets as children of
// group, plus the pivot node. The cube starts solved.
func NewEngine(group *xform.Node) *Engine {
	e := &Engine{
		group:        group,
		pivot:        xform.New(),
		store:        NewStore(),
		TurnDuration: defaultTurnDuration,
	}
	if group != nil {
		group.Attach(e.pivot)
	}
	for id := 0; id < BlockCount; id++ {
		c := Identity(id)
		size, offset := Configure(c.X, c.Y, c.Z)
		n := xform.New()
		n.Pos = offset
		if group != nil {
			group.Attach(n)
		}
		e.blocks[id] = &Block{ID: id, Size: size, Node: n}
	}
	return e
}

// Store returns the logical position table (read-only for callers).
func (e *Engine) Store() *Store {
	return e.store
}

// Blocks returns the block handles for rendering.
func (e *Engine) Blocks() []*Block {
	return e.blocks[:]
}

// Turning reports whether a turn is currently in flight.
func (e *Engine) Turning() bool {
	return e.phase != phaseIdle
}

// Turn starts one quarter turn. The done callback fires once, after the layer
// has settled (blocks reparented back, transforms snapped, store updated).
// Returns false without side effects when a turn is already running or the
// group or pivot handle is missing; the caller's loop retries naturally.
// A move selecting an empty layer still animates and completes.
func (e *Engine) Turn(m Move, done func()) bool {
	if e.phase != phaseIdle || e.group == nil || e.pivot == nil {
		return false
	}

	// Grouping: gather the layer under a zeroed pivot without a visual jump.
	e.pivot.Reset()
	e.active = e.active[:0]
	for _, id := range e.store.Layer(m.Axis, m.Layer) {
		b := e.blocks[id]
		if b == nil || b.Node == nil {
			continue
		}
		if xform.Reparent(b.Node, e.pivot) {
			e.active = append(e.active, id)
		}
	}

	e.phase = phaseRotating
	e.axis = m.Axis
	e.dir = m.Dir
	e.onDone = done

	target := -float32(m.Dir) * quarterTurn
	axisVec := axisVector(m.Axis)
	e.anim = tween.New(0, target, e.TurnDuration, tween.InOutQuad)
	e.anim.OnUpdate = func(angle float32) {
		e.pivot.Rot = rl.QuaternionFromAxisAngle(axisVec, angle)
	}
	e.anim.OnComplete = e.settle
	return true
}

// Update advances the in-flight turn animation by dt seconds. Safe to call
// every frame regardless of state.
func (e *Engine) Update(dt float32) {
	if e.anim != nil && !e.anim.Done() {
		e.anim.Update(dt)
	}
}

// Halt discards any in-flight turn without settling: the blocks stay wherever
// the animation left them and the store is not touched. Used on teardown.
func (e *Engine) Halt() {
	if e.anim != nil {
		e.anim.Cancel()
		e.anim = nil
	}
	e.phase = phaseIdle
	e.onDone = nil
	e.active = e.active[:0]
}

// settle reparents the rotated layer back under the group, snaps each block's
// local transform to the grid, applies the quarter turn to the store, zeroes
// the pivot, and signals completion.
func (e *Engine) settle() {
	for _, id := range e.active {
		b := e.blocks[id]
		if b == nil || b.Node == nil {
			continue
		}
		if !xform.Reparent(b.Node, e.group) {
			continue
		}
		snapNode(b.Node)
		e.store.rotate(id, e.axis, e.dir)
	}
	e.pivot.Reset()
	e.active = e.active[:0]
	e.anim = nil
	e.phase = phaseIdle

	done := e.onDone
	e.onDone = nil
	if done != nil {
		done()
	}
}

// snapNode rounds a node's local position to the nearest posSnapUnit and its
// rotation to the nearest quarter turn on every axis. Repeated reparenting and
// interpolation accumulate float error; without this the layers slowly shear
// apart over many cycles.
func snapNode(n *xform.Node) {
	n.Pos = rl.NewVector3(
		snapValue(n.Pos.X, posSnapUnit),
		snapValue(n.Pos.Y, posSnapUnit),
		snapValue(n.Pos.Z, posSnapUnit),
	)
	e := rl.QuaternionToEuler(n.Rot)
	n.Rot = rl.QuaternionFromEuler(
		snapValue(e.X, quarterTurn),
		snapValue(e.Y, quarterTurn),
		snapValue(e.Z, quarterTurn),
	)
	n.Scale = 1
}

// snapValue rounds v to the nearest multiple of unit.
func snapValue(v, unit float32) float32 {
	return math32.Round(v/unit) * unit
}

// axisVector returns the unit vector for a grid axis.
func axisVector(a Axis) rl.Vector3 {
	switch a {
	case AxisX:
		return rl.NewVector3(1, 0, 0)
	case AxisY:
		return rl.NewVector3(0, 1, 0)
	default:
		return rl.NewVector3(0, 0, 1)
	}
}
