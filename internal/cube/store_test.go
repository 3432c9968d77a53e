package cube

import "testing"

func TestNewStoreSolvedAndConsistent(t *testing.T) {
	s := NewStore()
	if !s.Solved() {
		t.Fatal("new store should be solved")
	}
	if !s.Consistent() {
		t.Fatal("new store should be consistent")
	}
}

func TestBlockIDRoundTrip(t *testing.T) {
	for id := 0; id < BlockCount; id++ {
		if got := BlockID(Identity(id)); got != id {
			t.Fatalf("id %d round-tripped to %d", id, got)
		}
	}
}

func TestRotateCellKnownCase(t *testing.T) {
	// One quarter turn of the y=1 layer, direction +1: (x,z) -> (-z,x).
	got := rotateCell(Cell{1, 1, 0}, AxisY, 1)
	want := Cell{0, 1, 1}
	if got != want {
		t.Fatalf("rotateCell((1,1,0), y, +1) = %v, want %v", got, want)
	}
	// And the opposite direction: (x,z) -> (z,-x).
	got = rotateCell(Cell{1, 1, 0}, AxisY, -1)
	want = Cell{0, 1, -1}
	if got != want {
		t.Fatalf("rotateCell((1,1,0), y, -1) = %v, want %v", got, want)
	}
}

func TestRotateCellInverse(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for id := 0; id < BlockCount; id++ {
			c := Identity(id)
			if got := rotateCell(rotateCell(c, axis, 1), axis, -1); got != c {
				t.Fatalf("axis %v: %v did not survive there-and-back, got %v", axis, c, got)
			}
		}
	}
}

func TestRotateCellFourTimesIsIdentity(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		c := Cell{1, -1, 0}
		got := c
		for i := 0; i < 4; i++ {
			got = rotateCell(got, axis, 1)
		}
		if got != c {
			t.Fatalf("axis %v: four quarter turns moved %v to %v", axis, c, got)
		}
	}
}

func TestLayerSelectsNine(t *testing.T) {
	s := NewStore()
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for layer := -1; layer <= 1; layer++ {
			ids := s.Layer(axis, layer)
			if len(ids) != 9 {
				t.Fatalf("layer %v=%d selected %d blocks, want 9", axis, layer, len(ids))
			}
			for _, id := range ids {
				if s.Cell(id).Component(axis) != layer {
					t.Fatalf("block %d selected for %v=%d but sits at %v", id, axis, layer, s.Cell(id))
				}
			}
		}
	}
}

func TestLayerOutOfRangeSelectsNone(t *testing.T) {
	s := NewStore()
	if ids := s.Layer(AxisY, 2); len(ids) != 0 {
		t.Fatalf("layer y=2 selected %d blocks, want 0", len(ids))
	}
}

func TestRotatePreservesBijection(t *testing.T) {
	s := NewStore()
	for _, id := range s.Layer(AxisX, -1) {
		s.rotate(id, AxisX, -1)
	}
	if !s.Consistent() {
		t.Fatal("store inconsistent after rotating a layer")
	}
	if s.Solved() {
		t.Fatal("rotating a layer should displace blocks")
	}
}
