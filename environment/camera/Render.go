package camera

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/samuelfneumann/camctl/dataset"
	"github.com/samuelfneumann/camctl/render"
	"github.com/samuelfneumann/camctl/utils/floatutils"
)

const (
	// ViewWindow names the frame showing the annotated display image
	ViewWindow string = "View"

	// InputWindow names the frame showing the input image
	InputWindow string = "CNN Input"
)

// Render shows the current display frame, annotated with the current
// orientation and the last action, along with the current input frame.
// Only the "human" mode is supported. In interactive mode, Render
// blocks until a key is pressed.
//
// Render does not change the state of the environment. If no display
// was configured, Render does nothing.
func (e *Env) Render(mode string) error {
	if mode != "human" {
		return fmt.Errorf("render: unsupported mode %q", mode)
	}
	if !e.started {
		return fmt.Errorf("render: %w", ErrNotReset)
	}
	if e.display == nil {
		return nil
	}

	view := render.Annotate(e.frame,
		render.Line{Text: "Tilt/Pan: " + e.stateText, X: 10, Y: 25},
		render.Line{Text: "Sel. Action: " + e.actionText, X: 10, Y: 50},
	)
	if err := e.display.Show(ViewWindow, view); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := e.display.Show(InputWindow, e.InputImage()); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := e.display.WaitKey(e.interactive); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// InputImage returns the current observation as an image, adding back
// the per-channel mean
func (e *Env) InputImage() image.Image {
	size := dataset.InputSize
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := (y*size + x) * dataset.Channels
			img.SetRGBA(x, y, color.RGBA{
				R: pixel(e.obs.AtVec(i) + e.mean[0]),
				G: pixel(e.obs.AtVec(i+1) + e.mean[1]),
				B: pixel(e.obs.AtVec(i+2) + e.mean[2]),
				A: 255,
			})
		}
	}
	return img
}

func pixel(v float64) uint8 {
	return uint8(floatutils.Clip(v, 0, 255) + 0.5)
}

// Close closes the display if it can be closed
func (e *Env) Close() error {
	if closer, ok := e.display.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("close: %w", err)
		}
	}
	return nil
}
