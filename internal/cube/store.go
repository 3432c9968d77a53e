package cube

// Store is the logical position table: for each block id it holds the block's
// current grid cell. It is the single source of truth for layer membership.
// Only the engine writes it, and only when a turn settles.
type Store struct {
	cells [BlockCount]Cell
}

// NewStore returns a store with every block at its identity cell (solved).
func NewStore() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Reset puts every block back at its identity cell.
func (s *Store) Reset() {
	for id := 0; id < BlockCount; id++ {
		s.cells[id] = Identity(id)
	}
}

// Cell returns the current cell of block id.
func (s *Store) Cell(id int) Cell {
	return s.cells[id]
}

// Layer returns the ids of all blocks whose coordinate on axis equals layer.
// A full layer holds 9 ids; an out-of-range layer selects none.
func (s *Store) Layer(axis Axis, layer int) []int {
	ids := make([]int, 0, 9)
	for id := 0; id < BlockCount; id++ {
		if s.cells[id].Component(axis) == layer {
			ids = append(ids, id)
		}
	}
	return ids
}

// Solved reports whether every block sits at its identity cell.
func (s *Store) Solved() bool {
	for id := 0; id < BlockCount; id++ {
		if s.cells[id] != Identity(id) {
			return false
		}
	}
	return true
}

// Consistent reports whether the cells form a bijection onto {-1,0,1}^3,
// i.e. all 27 grid cells are occupied exactly once. Holds between turns.
func (s *Store) Consistent() bool {
	var seen [BlockCount]bool
	for id := 0; id < BlockCount; id++ {
		c := s.cells[id]
		if c.X < -1 || c.X > 1 || c.Y < -1 || c.Y > 1 || c.Z < -1 || c.Z > 1 {
			return false
		}
		k := BlockID(c)
		if seen[k] {
			return false
		}
		seen[k] = true
	}
	return true
}

// rotate applies a quarter turn to the cell of block id.
func (s *Store) rotate(id int, axis Axis, dir int) {
	s.cells[id] = rotateCell(s.cells[id], axis, dir)
}
