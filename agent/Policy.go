// Package agent defines the interfaces of agents which act in
// environments
package agent

import (
	ts "github.com/samuelfneumann/camctl/timestep"
	"gonum.org/v1/gonum/mat"
)

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. Learned policies, such
// as a network trained on camera frames, satisfy the same interface.
type Policy interface {
	SelectAction(t ts.TimeStep) *mat.VecDense
}
