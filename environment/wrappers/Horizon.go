// Package wrappers provides wrappers for environments
package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/camctl/environment"
	ts "github.com/samuelfneumann/camctl/timestep"
	"gonum.org/v1/gonum/mat"
)

// Horizon wraps an environment and ends each episode after a fixed
// number of steps. The step at which the episode ends has its StepType
// set to timestep.Last and its EndType set to timestep.Timeout.
//
// Horizon is needed for environments which never end episodes
// themselves. Horizon itself implements the environment.Environment
// interface and is therefore itself an environment.
type Horizon struct {
	environment.Environment
	ender    *environment.StepLimit
	steps    int
	lastStep ts.TimeStep
}

// NewHorizon returns a new Horizon wrapping env, which ends episodes
// after steps steps
func NewHorizon(env environment.Environment, steps int) (*Horizon, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("newHorizon: steps must be positive, got %d",
			steps)
	}

	return &Horizon{
		Environment: env,
		ender:       environment.NewStepLimit(steps),
		steps:       steps,
		lastStep:    env.CurrentTimeStep(),
	}, nil
}

// Reset resets the wrapped environment
func (h *Horizon) Reset() (ts.TimeStep, error) {
	step, err := h.Environment.Reset()
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: %w", err)
	}

	h.lastStep = step
	return step, nil
}

// Step takes one step in the wrapped environment and ends the episode
// if the horizon has been reached
func (h *Horizon) Step(a *mat.VecDense) (ts.TimeStep, bool, error) {
	step, last, err := h.Environment.Step(a)
	if err != nil {
		return ts.TimeStep{}, false, fmt.Errorf("step: %w", err)
	}

	if !last {
		last = h.ender.End(&step)
	}

	h.lastStep = step
	return step, last, nil
}

// CurrentTimeStep returns the last TimeStep that occurred in the
// environment
func (h *Horizon) CurrentTimeStep() ts.TimeStep {
	return h.lastStep
}

// Steps returns the number of steps in each episode
func (h *Horizon) Steps() int {
	return h.steps
}

func (h *Horizon) String() string {
	return fmt.Sprintf("Horizon(%d)  |  %v", h.steps, h.Environment)
}
