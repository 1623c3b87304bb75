package camera_test

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/camctl/dataset"
	"github.com/samuelfneumann/camctl/environment/camera"
)

func Example() {
	c := camera.DefaultConfig()
	c.Pools = camera.Pools{
		Train: camera.Pool{Min: 0, Max: 1},
		Test:  camera.Pool{Min: 1, Max: 2},
	}

	table := dataset.Synthetic([]int{0}, c.Grid.Tilts, c.Grid.Pans, 1)
	e, err := camera.New(table, c, rand.NewSource(1))
	if err != nil {
		panic(err)
	}

	step, err := e.Reset()
	if err != nil {
		panic(err)
	}
	fmt.Println(step.Observation.Len(), step.First())

	step, done, err := e.StepAction(camera.Stay)
	if err != nil {
		panic(err)
	}
	fmt.Println(step.Number, done, len(e.Errors()))

	// Output:
	// 12288 true
	// 1 false 1
}
