// Package random implements a policy which selects actions uniformly
// at random
package random

import (
	"fmt"

	"golang.org/x/exp/rand"

	env "github.com/samuelfneumann/camctl/environment"
	ts "github.com/samuelfneumann/camctl/timestep"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Random selects discrete actions uniformly at random from an action
// specification. Random is a baseline for learned policies.
type Random struct {
	low  float64
	dist distuv.Categorical
}

// New returns a new Random policy over the actions of the argument
// action specification, which must describe 1-dimensional discrete
// actions
func New(actions env.Spec, seed uint64) (*Random, error) {
	// Ensure actions are 1-dimensional
	if actions.Shape.Len() != 1 {
		return nil, fmt.Errorf("new: actions must be 1-dimensional, got %d "+
			"dimensions", actions.Shape.Len())
	}

	// Ensure actions are discrete
	if actions.Cardinality != env.Discrete {
		return nil, fmt.Errorf("new: actions must be discrete, got %v",
			actions.Cardinality)
	}

	// Calculate the number of actions
	low := actions.LowerBound.AtVec(0)
	numActions := int(actions.UpperBound.AtVec(0)-low) + 1
	if numActions <= 0 {
		return nil, fmt.Errorf("new: action bounds [%v, %v] are empty", low,
			actions.UpperBound.AtVec(0))
	}

	probs := make([]float64, numActions)
	for i := range probs {
		probs[i] = 1.0 / float64(numActions)
	}

	dist := distuv.NewCategorical(probs, rand.NewSource(seed))
	return &Random{low, dist}, nil
}

// SelectAction selects an action uniformly at random. The timestep is
// ignored.
func (r *Random) SelectAction(_ ts.TimeStep) *mat.VecDense {
	return mat.NewVecDense(1, []float64{r.low + r.dist.Rand()})
}
