// Package camera implements a pan/tilt camera control environment.
//
// In this environment, a camera looks at a person and the agent must
// turn the camera so that the person's face is centred in the frame.
// The camera can take a fixed grid of orientations and each
// observation is looked up from a table of precomputed frames, keyed
// by person and orientation.
package camera

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/camctl/dataset"
	env "github.com/samuelfneumann/camctl/environment"
	"github.com/samuelfneumann/camctl/render"
	ts "github.com/samuelfneumann/camctl/timestep"
	"github.com/samuelfneumann/camctl/utils/tensorutils"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

const (
	// ObservationDims is the length of an observation vector, which
	// holds an input frame in height, width, channel order
	ObservationDims int = dataset.InputSize * dataset.InputSize *
		dataset.Channels

	// ObservationBound bounds the nominal range of observation values
	ObservationBound float64 = 127

	ActionDims int = 1
)

// ErrNotReset is returned when an Env is used before its first Reset
var ErrNotReset = errors.New("environment has not been reset")

// Env implements the camera control environment. Each episode, a
// person is drawn uniformly at random from the configured pool and the
// camera starts at an orientation drawn uniformly at random from the
// grid. The agent then moves the camera through the grid with the
// actions described by Action.
//
// Rewards are computed by the Centre task. The environment never ends
// an episode itself: every step is a Mid step, and episode lengths are
// imposed from outside, for example with wrappers.Horizon.
//
// Env implements the environment.Environment interface.
type Env struct {
	lookup      dataset.Lookup
	grid        Grid
	task        Centre
	pool        Pool
	mean        [3]float64
	discount    float64
	interactive bool
	display     render.Display

	src     rand.Source
	persons distuv.Categorical
	starter *env.CategoricalStarter

	// Episode state
	started    bool
	person     int
	tiltIndex  int
	panIndex   int
	errors     []float64
	steps      int
	stateText  string
	actionText string
	obs        *mat.VecDense
	frame      image.Image
	lastStep   ts.TimeStep

	stats Statistics
}

// New returns a new camera control environment which looks up frames
// in lookup and draws all random choices from src. The lookup must
// hold frames for every person of the selected pool at every
// orientation of the grid.
func New(lookup dataset.Lookup, c Config, src rand.Source) (*Env, error) {
	if lookup == nil {
		return nil, fmt.Errorf("new: lookup cannot be nil")
	}
	if src == nil {
		return nil, fmt.Errorf("new: source cannot be nil")
	}
	if err := c.Grid.Validate(); err != nil {
		return nil, fmt.Errorf("new: invalid grid: %w", err)
	}
	if err := c.Pools.Validate(); err != nil {
		return nil, fmt.Errorf("new: invalid pools: %w", err)
	}

	grid, _ := NewGrid(c.Grid.Tilts, c.Grid.Pans)
	pool := c.Pools.Select(c.Testing)
	if err := dataset.Validate(lookup, pool.Persons(), grid.Tilts,
		grid.Pans); err != nil {
		return nil, fmt.Errorf("new: lookup does not cover pool %v: %w",
			pool, err)
	}

	// Uniform distribution over persons in the pool
	weights := make([]float64, pool.Len())
	for i := range weights {
		weights[i] = 1.0
	}
	persons := distuv.NewCategorical(weights, src)

	nTilts, nPans := grid.Shape()
	starter, err := env.NewCategoricalStarter([]int{nTilts, nPans}, src)
	if err != nil {
		return nil, fmt.Errorf("new: could not create starter: %w", err)
	}

	e := &Env{
		lookup:      lookup,
		grid:        grid,
		task:        NewCentre(grid),
		pool:        pool,
		mean:        c.Mean,
		discount:    c.Discount,
		interactive: c.Interactive,
		display:     c.Display,
		src:         src,
		persons:     persons,
		starter:     starter,
		actionText:  "None",
		obs:         mat.NewVecDense(ObservationDims, nil),
		frame: image.NewRGBA(image.Rect(0, 0, dataset.DisplaySize,
			dataset.DisplaySize)),
	}
	e.person = e.drawPerson()

	return e, nil
}

// drawPerson draws a person uniformly at random from the pool
func (e *Env) drawPerson() int {
	return e.pool.Min + int(e.persons.Rand())
}

// Seed reseeds the environment's random source
func (e *Env) Seed(seed uint64) {
	e.src.Seed(seed)
}

// Reset starts a new episode with a new random person and orientation
// and returns the first TimeStep of the episode
func (e *Env) Reset() (ts.TimeStep, error) {
	person := e.drawPerson()
	start := e.starter.Start()
	tiltIndex, panIndex := int(start.AtVec(0)), int(start.AtVec(1))
	tilt, pan := e.grid.Angles(tiltIndex, panIndex)

	frames, err := e.lookup.Frames(person, tilt, pan)
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: could not look up "+
			"frames: %w", err)
	}

	e.started = true
	e.person = person
	e.tiltIndex, e.panIndex = tiltIndex, panIndex
	e.errors = nil
	e.steps = 0
	e.setFrames(frames)
	e.stats.begin(tilt, pan)
	e.stateText = fmt.Sprintf("%d/%d", tilt, pan)
	e.actionText = "None"

	e.lastStep = ts.New(ts.First, 0, e.discount, e.obs, 0)
	return e.lastStep, nil
}

// Step takes one environmental step given a 1-dimensional action
// vector holding an Action. The returned bool is always false since
// the environment never ends an episode itself.
func (e *Env) Step(a *mat.VecDense) (ts.TimeStep, bool, error) {
	if a == nil {
		return ts.TimeStep{}, false, fmt.Errorf("step: %w: nil action",
			ErrInvalidAction)
	}
	if a.Len() != ActionDims {
		return ts.TimeStep{}, false, fmt.Errorf("step: %w: actions should "+
			"be %d-dimensional, got %d", ErrInvalidAction, ActionDims,
			a.Len())
	}

	action, err := ParseAction(a.AtVec(0))
	if err != nil {
		return ts.TimeStep{}, false, fmt.Errorf("step: %w", err)
	}
	return e.StepAction(action)
}

// StepAction takes one environmental step given an Action. If the
// action is invalid or its frames cannot be found, an error is
// returned and the environment is left unchanged.
func (e *Env) StepAction(a Action) (ts.TimeStep, bool, error) {
	if !e.started {
		return ts.TimeStep{}, false, fmt.Errorf("step: %w", ErrNotReset)
	}
	if !a.Valid() {
		return ts.TimeStep{}, false, fmt.Errorf("step: %w: %v",
			ErrInvalidAction, a)
	}

	tiltIndex, panIndex := e.grid.Move(e.tiltIndex, e.panIndex, a)
	tilt, pan := e.grid.Angles(tiltIndex, panIndex)

	frames, err := e.lookup.Frames(e.person, tilt, pan)
	if err != nil {
		return ts.TimeStep{}, false, fmt.Errorf("step: could not look up "+
			"frames: %w", err)
	}

	e.tiltIndex, e.panIndex = tiltIndex, panIndex
	e.stats.update(tilt, pan)
	e.setFrames(frames)

	e.errors = append(e.errors, e.task.Error(tilt, pan))
	reward := e.task.GetReward(e.errors)

	e.steps++
	e.stateText = fmt.Sprintf("%d/%d", tilt, pan)
	e.actionText = a.Text()

	e.lastStep = ts.New(ts.Mid, reward, e.discount, e.obs, e.steps)
	return e.lastStep, false, nil
}

// setFrames sets the current observation and display frame. Each
// observation is a new vector, so previously returned observations are
// never modified.
func (e *Env) setFrames(f dataset.Frames) {
	e.obs = centre(f.Input, e.mean)
	e.frame = f.Display
}

// centre returns the pixels of img in height, width, channel order
// with the per-channel mean subtracted
func centre(img image.Image, mean [3]float64) *mat.VecDense {
	b := img.Bounds()
	data := make([]float64, 0, b.Dx()*b.Dy()*dataset.Channels)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			data = append(data,
				float64(r>>8)-mean[0],
				float64(g>>8)-mean[1],
				float64(bl>>8)-mean[2],
			)
		}
	}

	return mat.NewVecDense(len(data), data)
}

// CurrentTimeStep returns the last TimeStep that occurred in the
// environment
func (e *Env) CurrentTimeStep() ts.TimeStep {
	return e.lastStep
}

// Orientation returns the current tilt and pan indices
func (e *Env) Orientation() (tiltIndex, panIndex int) {
	return e.tiltIndex, e.panIndex
}

// Angles returns the current tilt and pan angles
func (e *Env) Angles() (tilt, pan int) {
	return e.grid.Angles(e.tiltIndex, e.panIndex)
}

// Person returns the person of the current episode
func (e *Env) Person() int {
	return e.person
}

// Errors returns a copy of the errors of the current episode, one per
// step
func (e *Env) Errors() []float64 {
	return append([]float64(nil), e.errors...)
}

// Steps returns the number of steps taken in the current episode
func (e *Env) Steps() int {
	return e.steps
}

// Statistics returns a copy of the cross-episode statistics
func (e *Env) Statistics() Statistics {
	return e.stats.Clone()
}

// Grid returns the orientation grid
func (e *Env) Grid() Grid {
	return e.grid
}

// ObservationTensor returns the current observation as a tensor of
// shape (InputSize, InputSize, Channels)
func (e *Env) ObservationTensor() (*tensor.Dense, error) {
	return tensorutils.FromVec(e.obs, dataset.InputSize, dataset.InputSize,
		dataset.Channels)
}

// ActionSpec returns the action specification of the environment
func (e *Env) ActionSpec() env.Spec {
	return env.NewBoxSpec(ActionDims, env.Action, float64(MinAction),
		float64(MaxAction), env.Discrete)
}

// ObservationSpec returns the observation specification of the
// environment
func (e *Env) ObservationSpec() env.Spec {
	return env.NewBoxSpec(ObservationDims, env.Observation,
		-ObservationBound, ObservationBound, env.Continuous)
}

// RewardSpec returns the reward specification of the environment
func (e *Env) RewardSpec() env.Spec {
	return env.NewBoxSpec(1, env.Reward, e.task.Min(), e.task.Max(),
		env.Continuous)
}

// DiscountSpec returns the discounting specification of the environment
func (e *Env) DiscountSpec() env.Spec {
	return env.NewBoxSpec(1, env.Discount, e.discount, e.discount,
		env.Continuous)
}

func (e *Env) String() string {
	str := "CameraControlEnvironment  |  Person: %v  |  Tilt/Pan: %v  |  " +
		"Action: %v  |  Step: %v"
	return fmt.Sprintf(str, e.person, e.stateText, e.actionText, e.steps)
}
