package cube

// Timings are the delays between the driver's suspension points, in seconds.
type Timings struct {
	Startup  float32 // delay before the first scramble begins
	TurnGap  float32 // pause between turns within a phase
	PhaseGap float32 // longer pause between scramble and solve phases
}

// DefaultTimings returns the stock pacing.
func DefaultTimings() Timings {
	return Timings{Startup: 2.0, TurnGap: 0.15, PhaseGap: 1.5}
}

type driverState int

const (
	stateStartup driverState = iota
	stateTurning
	stateTurnGap
	statePhaseGap
)

// Driver plays the fixed move list forward (scramble), then the same list in
// reverse order with inverted directions (solve), pausing between phases, and
// repeats until Stop. It is stepped from the frame loop; a turn is never
// issued while another is in flight, so turns run strictly in list order.
type Driver struct {
	eng     *Engine
	moves   []Move
	timings Timings

	alive    bool
	paused   bool
	state    driverState
	idx      int
	reverse  bool
	timer    float32
	turnDone bool
}

// NewDriver returns a driver for eng playing moves with the given pacing.
// A nil or empty move list falls back to ScrambleMoves.
func NewDriver(eng *Engine, moves []Move, timings Timings) *Driver {
	if len(moves) == 0 {
		moves = ScrambleMoves
	}
	return &Driver{
		eng:     eng,
		moves:   moves,
		timings: timings,
		alive:   true,
		state:   stateStartup,
		timer:   timings.Startup,
	}
}

// Alive reports whether the driver is still running (Stop not yet called).
func (d *Driver) Alive() bool {
	return d.alive
}

// Reversing reports whether the current phase is the solve (reverse) phase.
func (d *Driver) Reversing() bool {
	return d.reverse
}

// Progress reports the current phase name and the 1-based move index within
// it, for status overlays.
func (d *Driver) Progress() (phase string, idx, total int) {
	phase = "scramble"
	if d.reverse {
		phase = "solve"
	}
	if d.paused {
		phase += " (paused)"
	}
	i := d.idx + 1
	if i > len(d.moves) {
		i = len(d.moves)
	}
	return phase, i, len(d.moves)
}

// SetPaused suspends issuing new turns. An in-flight turn still finishes;
// pacing resumes where it left off.
func (d *Driver) SetPaused(p bool) {
	d.paused = p
}

// Paused reports whether the driver is suspended.
func (d *Driver) Paused() bool {
	return d.paused
}

// Stop tears the driver down: no further turns are issued and any in-flight
// animation is discarded immediately. The cube may be left mid-turn; the
// logical position table is not mutated after this returns.
func (d *Driver) Stop() {
	if !d.alive {
		return
	}
	d.alive = false
	d.eng.Halt()
}

// Update advances the loop by dt seconds. Call once per frame.
func (d *Driver) Update(dt float32) {
	if !d.alive {
		return
	}
	d.eng.Update(dt)

	switch d.state {
	case stateStartup, stateTurnGap, statePhaseGap:
		d.timer -= dt
		if d.timer > 0 || d.paused {
			return
		}
		d.issueTurn()
	case stateTurning:
		if !d.turnDone {
			return
		}
		d.turnDone = false
		d.idx++
		if d.idx < len(d.moves) {
			d.state = stateTurnGap
			d.timer = d.timings.TurnGap
			return
		}
		// Phase complete: flip between scramble and solve.
		d.idx = 0
		d.reverse = !d.reverse
		d.state = statePhaseGap
		d.timer = d.timings.PhaseGap
	}
}

// issueTurn starts the move at the current index. If the engine declines
// (already turning, missing handles) the driver stays put and retries on the
// next tick.
func (d *Driver) issueTurn() {
	if d.eng.Turn(d.moveAt(d.idx), func() { d.turnDone = true }) {
		d.state = stateTurning
	}
}

// moveAt returns the idx-th move of the current phase: the list itself going
// forward, or the inverted list back-to-front when solving.
func (d *Driver) moveAt(idx int) Move {
	if !d.reverse {
		return d.moves[idx]
	}
	return d.moves[len(d.moves)-1-idx].Inverse()
}
