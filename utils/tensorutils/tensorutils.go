// Package tensorutils provides utilities for moving data between gonum
// vectors and gorgonia tensors
package tensorutils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

// FromVec returns a dense tensor of the given shape holding a copy of
// the vector's data in row-major order
func FromVec(v mat.Vector, shape ...int) (*tensor.Dense, error) {
	size := 1
	for _, dim := range shape {
		size *= dim
	}
	if size != v.Len() {
		return nil, fmt.Errorf("fromVec: cannot reshape vector of length %d "+
			"to shape %v", v.Len(), shape)
	}

	data := make([]float64, v.Len())
	for i := range data {
		data[i] = v.AtVec(i)
	}

	return tensor.New(tensor.WithShape(shape...), tensor.WithBacking(data)),
		nil
}
