//go:build !gocv

package main

import (
	"fmt"
	"io"

	"github.com/samuelfneumann/camctl/render"
)

func newWindow(_ io.Writer) (render.Display, error) {
	return nil, fmt.Errorf("newWindow: camctl was built without the gocv " +
		"build tag")
}
