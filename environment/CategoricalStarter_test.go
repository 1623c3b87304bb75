package environment

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestCategoricalStarterBounds(t *testing.T) {
	bounds := []int{7, 13}
	s, err := NewCategoricalStarter(bounds, rand.NewSource(1))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 1000; i++ {
		start := s.Start()
		if start.Len() != len(bounds) {
			t.Fatalf("start: want %d features, have %d", len(bounds),
				start.Len())
		}
		for j, b := range bounds {
			v := start.AtVec(j)
			if v < 0 || v >= float64(b) || v != float64(int(v)) {
				t.Errorf("start: feature %d = %v outside {0, ..., %d}", j, v,
					b-1)
			}
		}
	}
}

func TestCategoricalStarterReseed(t *testing.T) {
	src := rand.NewSource(42)
	s, err := NewCategoricalStarter([]int{7, 13}, src)
	if err != nil {
		t.Fatal(err)
	}

	first := make([]float64, 0, 20)
	for i := 0; i < 10; i++ {
		v := s.Start()
		first = append(first, v.AtVec(0), v.AtVec(1))
	}

	src.Seed(42)
	for i := 0; i < 10; i++ {
		v := s.Start()
		if v.AtVec(0) != first[2*i] || v.AtVec(1) != first[2*i+1] {
			t.Fatalf("reseed: sample %d differs after reseeding", i)
		}
	}
}

func TestNewCategoricalStarterErrors(t *testing.T) {
	if _, err := NewCategoricalStarter([]int{3, 0}, rand.NewSource(1)); err == nil {
		t.Error("newCategoricalStarter: expected error for zero bound")
	}
	if _, err := NewCategoricalStarter([]int{3}, nil); err == nil {
		t.Error("newCategoricalStarter: expected error for nil source")
	}
}
