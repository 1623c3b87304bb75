//go:build gocv

package main

import (
	"io"

	"github.com/samuelfneumann/camctl/render"
)

func newWindow(out io.Writer) (render.Display, error) {
	return render.NewWindow(out), nil
}
