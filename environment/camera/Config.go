package camera

import "github.com/samuelfneumann/camctl/render"

// Config configures an Env
type Config struct {
	// Testing selects persons from the testing pool rather than the
	// training pool
	Testing bool

	// Interactive makes Render block until a key is pressed
	Interactive bool

	Grid  Grid
	Pools Pools

	// Mean is the per-channel RGB mean subtracted from input frames
	Mean [3]float64

	Discount float64

	// Display shows rendered frames. If nil, Render does nothing.
	Display render.Display
}

// DefaultConfig returns the default training configuration with no
// display
func DefaultConfig() Config {
	return Config{
		Grid:     DefaultGrid(),
		Pools:    DefaultPools(),
		Mean:     [3]float64{109, 114, 131},
		Discount: 0.99,
	}
}
