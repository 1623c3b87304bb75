// Package envconfig provides configuration structs for configuring
// camera control environments. Environment configurations in this
// package are JSON serializable.
package envconfig

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/camctl/dataset"
	env "github.com/samuelfneumann/camctl/environment"
	"github.com/samuelfneumann/camctl/environment/camera"
	"github.com/samuelfneumann/camctl/environment/wrappers"
	"github.com/samuelfneumann/camctl/render"
)

// Config implements a specific configuration of the camera control
// environment. If Tilts or Pans is empty, the default grid axis is
// used.
type Config struct {
	Testing       bool
	Interactive   bool
	EpisodeCutoff uint
	Discount      float64
	Tilts         []int `json:",omitempty"`
	Pans          []int `json:",omitempty"`
	Pools         camera.Pools
	Mean          [3]float64
}

// DefaultConfig returns the default training configuration with
// episodes cut off after cutoff steps
func DefaultConfig(cutoff uint) Config {
	c := camera.DefaultConfig()

	return Config{
		EpisodeCutoff: cutoff,
		Discount:      c.Discount,
		Pools:         c.Pools,
		Mean:          c.Mean,
	}
}

// Grid returns the orientation grid described by the Config
func (c Config) Grid() (camera.Grid, error) {
	g := camera.DefaultGrid()
	if len(c.Tilts) > 0 {
		g.Tilts = c.Tilts
	}
	if len(c.Pans) > 0 {
		g.Pans = c.Pans
	}
	return camera.NewGrid(g.Tilts, g.Pans)
}

// Create returns the environment described by the Config as well as
// the underlying camera environment. If EpisodeCutoff is positive, the
// camera environment is wrapped in a wrappers.Horizon. Frames are
// looked up in lookup, and rendered frames are shown on display, which
// may be nil.
func (c Config) Create(lookup dataset.Lookup, seed uint64,
	display render.Display) (env.Environment, *camera.Env, error) {
	grid, err := c.Grid()
	if err != nil {
		return nil, nil, fmt.Errorf("create: %w", err)
	}

	cameraConfig := camera.Config{
		Testing:     c.Testing,
		Interactive: c.Interactive,
		Grid:        grid,
		Pools:       c.Pools,
		Mean:        c.Mean,
		Discount:    c.Discount,
		Display:     display,
	}

	cam, err := camera.New(lookup, cameraConfig, rand.NewSource(seed))
	if err != nil {
		return nil, nil, fmt.Errorf("create: %w", err)
	}

	if c.EpisodeCutoff == 0 {
		return cam, cam, nil
	}

	horizon, err := wrappers.NewHorizon(cam, int(c.EpisodeCutoff))
	if err != nil {
		return nil, nil, fmt.Errorf("create: %w", err)
	}
	return horizon, cam, nil
}

func (c Config) String() string {
	mode := "Training"
	if c.Testing {
		mode = "Testing"
	}
	return fmt.Sprintf("CameraControl  |  %v  |  Cutoff: %d  |  Discount: %v",
		mode, c.EpisodeCutoff, c.Discount)
}
