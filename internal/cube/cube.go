// Package cube animates a 3x3x3 arrangement of blocks that scrambles and solves
// itself in a loop. The logical layer model lives in fixed arrays indexed by a
// stable block id; the visual layer is a small scene graph of nodes rotated a
// quarter turn at a time around a shared pivot.
package cube

// BlockCount is the number of blocks in the 3x3x3 arrangement.
const BlockCount = 27

// Axis selects one of the three grid axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "z"
	}
}

// Cell is an integer grid coordinate with each component in {-1, 0, 1}.
type Cell struct {
	X, Y, Z int
}

// Component returns the cell's coordinate on the given axis.
func (c Cell) Component(a Axis) int {
	switch a {
	case AxisX:
		return c.X
	case AxisY:
		return c.Y
	default:
		return c.Z
	}
}

// BlockID returns the stable id (0-26) for the block whose identity cell is c.
func BlockID(c Cell) int {
	return (c.X+1)*9 + (c.Y+1)*3 + c.Z + 1
}

// Identity returns the identity cell for block id (the inverse of BlockID).
func Identity(id int) Cell {
	return Cell{X: id/9 - 1, Y: (id/3)%3 - 1, Z: id%3 - 1}
}

// rotateCell rotates c a quarter turn about the axis. Direction +1 is clockwise
// as seen from the positive end of the axis: about Y it maps (x,z) to (-z,x).
func rotateCell(c Cell, axis Axis, dir int) Cell {
	switch axis {
	case AxisX:
		if dir > 0 {
			return Cell{c.X, c.Z, -c.Y}
		}
		return Cell{c.X, -c.Z, c.Y}
	case AxisY:
		if dir > 0 {
			return Cell{-c.Z, c.Y, c.X}
		}
		return Cell{c.Z, c.Y, -c.X}
	default:
		if dir > 0 {
			return Cell{c.Y, -c.X, c.Z}
		}
		return Cell{-c.Y, c.X, c.Z}
	}
}
