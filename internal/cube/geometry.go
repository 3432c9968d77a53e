package cube

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Per-axis block thicknesses indexed by coordinate+1. The layers are deliberately
// unequal so the solved shape reads as one mirrored block rather than a uniform
// grid; each axis sums to gridSpan.
var (
	thickX = [3]float32{1.25, 1.00, 0.75}
	thickY = [3]float32{0.70, 1.10, 1.20}
	thickZ = [3]float32{0.95, 1.25, 0.80}
)

const (
	// gridSpan is the full edge length of the solved arrangement.
	gridSpan = float32(3.0)
	// blockGap is shaved off each rendered face to leave a visible seam.
	// It affects drawn size only, never the stacking offsets.
	blockGap = float32(0.04)
)

// Configure returns the physical size and centered offset for the block whose
// identity cell is (ox, oy, oz). Pure; called once per block at creation.
// Offsets stack the full thicknesses so neighboring blocks touch; the seam gap
// is applied to the returned size only.
func Configure(ox, oy, oz int) (size, offset rl.Vector3) {
	size = rl.NewVector3(
		thickX[ox+1]-blockGap,
		thickY[oy+1]-blockGap,
		thickZ[oz+1]-blockGap,
	)
	offset = rl.NewVector3(
		stackOffset(thickX, ox),
		stackOffset(thickY, oy),
		stackOffset(thickZ, oz),
	)
	return size, offset
}

// stackOffset returns the centered position of layer i in {-1,0,1} along one
// axis: half the span back, plus the thickness of the inner layers, plus half
// of the block's own thickness.
func stackOffset(thick [3]float32, i int) float32 {
	o := -gridSpan / 2
	for k := 0; k < i+1; k++ {
		o += thick[k]
	}
	return o + thick[i+1]/2
}
