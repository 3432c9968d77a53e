package cube

// Move is one quarter turn: the axis to rotate about, the layer (-1, 0, or 1)
// on that axis, and the direction (+1 clockwise seen from the positive axis
// end, -1 counter-clockwise).
type Move struct {
	Axis  Axis
	Layer int
	Dir   int
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return Move{Axis: m.Axis, Layer: m.Layer, Dir: -m.Dir}
}

// Named face moves in the usual puzzle notation: R/L on the x axis, U/D on y,
// F/B on z. Prime variants turn the other way.
var (
	R      = Move{AxisX, 1, 1}
	RPrime = Move{AxisX, 1, -1}
	L      = Move{AxisX, -1, -1}
	LPrime = Move{AxisX, -1, 1}
	U      = Move{AxisY, 1, 1}
	UPrime = Move{AxisY, 1, -1}
	D      = Move{AxisY, -1, -1}
	DPrime = Move{AxisY, -1, 1}
	F      = Move{AxisZ, 1, 1}
	FPrime = Move{AxisZ, 1, -1}
	B      = Move{AxisZ, -1, -1}
	BPrime = Move{AxisZ, -1, 1}
)

// ScrambleMoves is the fixed sequence played forward to scramble the cube.
// Played in reverse order with inverted directions it restores the solved
// state exactly. Chosen so no move cancels its neighbor.
var ScrambleMoves = []Move{
	R, U, FPrime, D, LPrime,
	B, U, RPrime, F, DPrime,
	L, BPrime, U, R, F,
}
