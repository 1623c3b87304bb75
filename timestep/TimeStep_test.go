package timestep

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNew(t *testing.T) {
	obs := mat.NewVecDense(2, []float64{1, 2})
	step := New(Mid, 0.5, 0.99, obs, 3)

	if !step.Mid() || step.First() || step.Last() {
		t.Errorf("new: expected Mid step, got %v", step.StepType)
	}
	if step.Info == nil || len(step.Info) != 0 {
		t.Errorf("new: expected empty non-nil info, got %v", step.Info)
	}
	if step.Number != 3 || step.Reward != 0.5 || step.Discount != 0.99 {
		t.Errorf("new: fields not stored: %v", step)
	}
}

func TestSetEnd(t *testing.T) {
	step := New(Last, 0, 1, nil, 10)
	step.SetEnd(Timeout)
	if step.EndType() != Timeout {
		t.Errorf("setEnd: want %v, have %v", Timeout, step.EndType())
	}

	defer func() {
		if recover() == nil {
			t.Error("setEnd: expected panic on non-last timestep")
		}
	}()
	mid := New(Mid, 0, 1, nil, 1)
	mid.SetEnd(Timeout)
}
