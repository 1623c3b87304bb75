package camera

import "fmt"

// Pool is a half-open range [Min, Max) of person identifiers
type Pool struct {
	Min int
	Max int
}

// Len returns the number of persons in the pool
func (p Pool) Len() int {
	return p.Max - p.Min
}

// Contains returns whether person is in the pool
func (p Pool) Contains(person int) bool {
	return person >= p.Min && person < p.Max
}

// Persons returns the persons in the pool in ascending order
func (p Pool) Persons() []int {
	if p.Len() <= 0 {
		return nil
	}

	persons := make([]int, p.Len())
	for i := range persons {
		persons[i] = p.Min + i
	}
	return persons
}

func (p Pool) String() string {
	return fmt.Sprintf("[%d, %d)", p.Min, p.Max)
}

// Pools holds the disjoint training and testing pools of persons
type Pools struct {
	Train Pool
	Test  Pool
}

// DefaultPools returns the default pools, training on persons [0, 20)
// and testing on persons [20, 30)
func DefaultPools() Pools {
	return Pools{
		Train: Pool{0, 20},
		Test:  Pool{20, 30},
	}
}

// NewPools returns new Pools, or an error if the pools are empty or
// overlap
func NewPools(train, test Pool) (Pools, error) {
	p := Pools{train, test}
	if err := p.Validate(); err != nil {
		return Pools{}, fmt.Errorf("newPools: %w", err)
	}
	return p, nil
}

// Validate returns an error if either pool is empty or if the pools
// overlap
func (p Pools) Validate() error {
	if p.Train.Len() <= 0 {
		return fmt.Errorf("training pool %v is empty", p.Train)
	}
	if p.Test.Len() <= 0 {
		return fmt.Errorf("testing pool %v is empty", p.Test)
	}
	if p.Train.Min < p.Test.Max && p.Test.Min < p.Train.Max {
		return fmt.Errorf("training pool %v and testing pool %v overlap",
			p.Train, p.Test)
	}
	return nil
}

// Select returns the testing pool if testing is true and the training
// pool otherwise
func (p Pools) Select(testing bool) Pool {
	if testing {
		return p.Test
	}
	return p.Train
}
