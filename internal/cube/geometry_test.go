package cube

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestConfigureSizes(t *testing.T) {
	size, _ := Configure(-1, 0, 1)
	if got, want := size.X, thickX[0]-blockGap; got != want {
		t.Fatalf("width = %v, want %v", got, want)
	}
	if got, want := size.Y, thickY[1]-blockGap; got != want {
		t.Fatalf("height = %v, want %v", got, want)
	}
	if got, want := size.Z, thickZ[2]-blockGap; got != want {
		t.Fatalf("depth = %v, want %v", got, want)
	}
}

func TestConfigureDeterministic(t *testing.T) {
	s1, o1 := Configure(1, -1, 0)
	s2, o2 := Configure(1, -1, 0)
	if s1 != s2 || o1 != o2 {
		t.Fatal("Configure is not deterministic")
	}
}

// Neighboring blocks along an axis must touch at the full-thickness face: the
// distance between their centers is the mean of their thicknesses.
func TestConfigureNeighborsTouch(t *testing.T) {
	for i := -1; i < 1; i++ {
		_, a := Configure(i, 0, 0)
		_, b := Configure(i+1, 0, 0)
		gap := b.X - a.X
		want := (thickX[i+1] + thickX[i+2]) / 2
		if math32.Abs(gap-want) > 1e-6 {
			t.Fatalf("x layers %d,%d: center distance %v, want %v", i, i+1, gap, want)
		}
	}
}

// The stacked layers span exactly the grid: outermost faces at ±gridSpan/2.
func TestConfigureSpanCentered(t *testing.T) {
	_, lo := Configure(-1, -1, -1)
	_, hi := Configure(1, 1, 1)
	if got := lo.Y - thickY[0]/2; math32.Abs(got+gridSpan/2) > 1e-6 {
		t.Fatalf("bottom face at %v, want %v", got, -gridSpan/2)
	}
	if got := hi.Y + thickY[2]/2; math32.Abs(got-gridSpan/2) > 1e-6 {
		t.Fatalf("top face at %v, want %v", got, gridSpan/2)
	}
}

// Offsets must land on the snap grid or settling would fight the layout.
func TestConfigureOffsetsOnSnapGrid(t *testing.T) {
	for id := 0; id < BlockCount; id++ {
		c := Identity(id)
		_, o := Configure(c.X, c.Y, c.Z)
		for _, v := range []float32{o.X, o.Y, o.Z} {
			if math32.Abs(snapValue(v, posSnapUnit)-v) > 1e-6 {
				t.Fatalf("block %d offset %v is off the snap grid", id, v)
			}
		}
	}
}
