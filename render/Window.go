//go:build gocv

package render

import (
	"fmt"
	"image"
	"io"

	"gocv.io/x/gocv"
)

// Window is a Display which shows frames in OpenCV windows, one
// window per frame name. Window is only available when building with
// the gocv build tag.
type Window struct {
	windows map[string]*gocv.Window
	last    *gocv.Window
	out     io.Writer
}

// NewWindow returns a new Window display which writes its keypress
// prompts to out
func NewWindow(out io.Writer) *Window {
	return &Window{windows: make(map[string]*gocv.Window), out: out}
}

// Show shows img in the window called name, opening the window if
// needed
func (w *Window) Show(name string, img image.Image) error {
	frame, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return fmt.Errorf("show: could not convert frame %q: %w", name, err)
	}
	defer frame.Close()

	window, ok := w.windows[name]
	if !ok {
		window = gocv.NewWindow(name)
		w.windows[name] = window
	}
	window.IMShow(frame)
	w.last = window

	return nil
}

// WaitKey waits for a keypress in any open window if block is true,
// otherwise it waits one millisecond so the windows are redrawn
func (w *Window) WaitKey(block bool) error {
	if w.last == nil {
		return nil
	}

	delay := 1
	if block {
		prompt(w.out)
		delay = 0
	}
	w.last.WaitKey(delay)

	return nil
}

// Close closes all open windows
func (w *Window) Close() error {
	for name, window := range w.windows {
		if err := window.Close(); err != nil {
			return fmt.Errorf("close: could not close window %q: %w", name,
				err)
		}
		delete(w.windows, name)
	}
	w.last = nil
	return nil
}
