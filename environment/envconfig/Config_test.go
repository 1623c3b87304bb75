package envconfig

import (
	"encoding/json"
	"testing"

	"github.com/samuelfneumann/camctl/dataset"
	"github.com/samuelfneumann/camctl/environment/camera"
	"github.com/samuelfneumann/camctl/environment/wrappers"
)

func smallConfig(cutoff uint) Config {
	c := DefaultConfig(cutoff)
	c.Tilts = []int{-15, 0, 15}
	c.Pans = []int{-30, 0, 30}
	c.Pools = camera.Pools{
		Train: camera.Pool{Min: 0, Max: 1},
		Test:  camera.Pool{Min: 1, Max: 2},
	}
	return c
}

func TestCreate(t *testing.T) {
	c := smallConfig(4)
	table := dataset.Synthetic([]int{0, 1}, c.Tilts, c.Pans, 1)

	e, cam, err := c.Create(table, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := e.(*wrappers.Horizon); !ok {
		t.Errorf("create: want *wrappers.Horizon, have %T", e)
	}
	if g := cam.Grid(); len(g.Tilts) != 3 || len(g.Pans) != 3 {
		t.Errorf("create: want 3x3 grid, have %v", g)
	}

	if _, err := e.Reset(); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 4; i++ {
		_, last, err := e.Step(cam.ActionSpec().LowerBound)
		if err != nil {
			t.Fatal(err)
		}
		if last != (i == 4) {
			t.Errorf("step %d: want last = %v, have %v", i, i == 4, last)
		}
	}

	e, _, err = smallConfig(0).Create(table, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := e.(*camera.Env); !ok {
		t.Errorf("create: want *camera.Env without cutoff, have %T", e)
	}
}

func TestCreateErrors(t *testing.T) {
	c := smallConfig(4)
	table := dataset.Synthetic([]int{0}, c.Tilts, c.Pans, 1)

	c.Testing = true
	if _, _, err := c.Create(table, 1, nil); err == nil {
		t.Error("create: expected error for uncovered testing pool")
	}

	c = smallConfig(4)
	c.Pans = []int{0}
	if _, _, err := c.Create(table, 1, nil); err == nil {
		t.Error("create: expected error for degenerate grid")
	}
}

func TestJSON(t *testing.T) {
	c := smallConfig(10)
	c.Testing = true

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}

	var got Config
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.String() != c.String() || got.Pools != c.Pools || got.Mean != c.Mean ||
		len(got.Tilts) != len(c.Tilts) {
		t.Errorf("json: want %v, have %v", c, got)
	}

	// Empty axes use the default grid
	var defaults Config
	g, err := defaults.Grid()
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Tilts) != 7 || len(g.Pans) != 13 {
		t.Errorf("grid: want default 7x13 grid, have %dx%d", len(g.Tilts),
			len(g.Pans))
	}
}
