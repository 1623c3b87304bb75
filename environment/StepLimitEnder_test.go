package environment

import (
	"testing"

	ts "github.com/samuelfneumann/camctl/timestep"
)

func TestStepLimit(t *testing.T) {
	limit := NewStepLimit(3)

	for n := 0; n < 3; n++ {
		step := ts.New(ts.Mid, 0, 1, nil, n)
		if limit.End(&step) {
			t.Errorf("end: step %d should not end the episode", n)
		}
		if !step.Mid() {
			t.Errorf("end: step %d type changed to %v", n, step.StepType)
		}
	}

	step := ts.New(ts.Mid, 0, 1, nil, 3)
	if !limit.End(&step) {
		t.Fatal("end: step 3 should end the episode")
	}
	if !step.Last() || step.EndType() != ts.Timeout {
		t.Errorf("end: want Last/Timeout, have %v/%v", step.StepType,
			step.EndType())
	}
}
