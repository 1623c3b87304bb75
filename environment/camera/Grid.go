package camera

import (
	"fmt"

	"github.com/samuelfneumann/camctl/utils/intutils"
)

// Grid is the fixed grid of orientations which the camera can take.
// An orientation is a pair of indices into Tilts and Pans. Angles are
// in degrees.
type Grid struct {
	Tilts []int
	Pans  []int
}

// DefaultGrid returns the default orientation grid of 7 tilts and 13
// pans
func DefaultGrid() Grid {
	return Grid{
		Tilts: []int{-60, -30, -15, 0, 15, 30, 60},
		Pans: []int{-90, -75, -60, -45, -30, -15, 0, 15, 30, 45, 60, 75,
			90},
	}
}

// NewGrid returns a new Grid, which holds copies of the argument
// angles. NewGrid returns an error if the grid is degenerate.
func NewGrid(tilts, pans []int) (Grid, error) {
	g := Grid{
		Tilts: append([]int(nil), tilts...),
		Pans:  append([]int(nil), pans...),
	}
	if err := g.Validate(); err != nil {
		return Grid{}, fmt.Errorf("newGrid: %w", err)
	}
	return g, nil
}

// Validate returns an error if either axis of the grid is empty or has
// no non-zero angle
func (g Grid) Validate() error {
	if len(g.Tilts) == 0 || len(g.Pans) == 0 {
		return fmt.Errorf("grid must have at least one tilt and one pan, "+
			"got %d tilts and %d pans", len(g.Tilts), len(g.Pans))
	}
	if intutils.MaxAbs(g.Tilts...) == 0 {
		return fmt.Errorf("tilts must contain a non-zero angle")
	}
	if intutils.MaxAbs(g.Pans...) == 0 {
		return fmt.Errorf("pans must contain a non-zero angle")
	}
	return nil
}

// Shape returns the number of tilts and pans in the grid
func (g Grid) Shape() (tilts, pans int) {
	return len(g.Tilts), len(g.Pans)
}

// Angles returns the tilt and pan angles at the argument indices
func (g Grid) Angles(tiltIndex, panIndex int) (tilt, pan int) {
	return g.Tilts[tiltIndex], g.Pans[panIndex]
}

// Move returns the indices reached by taking action a from the argument
// indices. Indices are clipped to the grid, so moving past the edge of
// the grid has no effect.
func (g Grid) Move(tiltIndex, panIndex int, a Action) (int, int) {
	dTilt, dPan := a.Delta()
	tiltIndex = intutils.Clip(tiltIndex+dTilt, 0, len(g.Tilts)-1)
	panIndex = intutils.Clip(panIndex+dPan, 0, len(g.Pans)-1)

	return tiltIndex, panIndex
}
