package random

import (
	"testing"

	"github.com/samuelfneumann/camctl/agent"
	env "github.com/samuelfneumann/camctl/environment"
	ts "github.com/samuelfneumann/camctl/timestep"
)

var _ agent.Policy = &Random{}

func TestSelectAction(t *testing.T) {
	spec := env.NewBoxSpec(1, env.Action, 0, 4, env.Discrete)
	p, err := New(spec, 1)
	if err != nil {
		t.Fatal(err)
	}

	counts := make([]int, 5)
	for i := 0; i < 5000; i++ {
		a := p.SelectAction(ts.TimeStep{}).AtVec(0)
		if a != float64(int(a)) || a < 0 || a > 4 {
			t.Fatalf("selectAction: illegal action %v", a)
		}
		counts[int(a)]++
	}

	for a, n := range counts {
		if n < 800 || n > 1200 {
			t.Errorf("selectAction: action %d selected %d times out of 5000",
				a, n)
		}
	}
}

func TestNewErrors(t *testing.T) {
	specs := []env.Spec{
		env.NewBoxSpec(2, env.Action, 0, 4, env.Discrete),
		env.NewBoxSpec(1, env.Action, 0, 4, env.Continuous),
		env.NewBoxSpec(1, env.Action, 4, 0, env.Discrete),
	}

	for _, spec := range specs {
		if _, err := New(spec, 1); err == nil {
			t.Errorf("new: expected error for spec %v", spec)
		}
	}
}
