// Package render implements displays on which environment frames can
// be shown
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

// WaitPrompt is written by displays before blocking for a keypress
const WaitPrompt = "Press any key to proceed"

// TextColour is the colour of annotation text
var TextColour = color.RGBA{R: 0, G: 0, B: 255, A: 255}

// Display shows named frames and waits for user input between frames
type Display interface {
	// Show shows img in the frame named name, replacing the
	// previous image shown in that frame
	Show(name string, img image.Image) error

	// WaitKey waits for a keypress if block is true. Otherwise,
	// WaitKey refreshes the display without blocking.
	WaitKey(block bool) error
}

// Line is a single line of annotation text with its baseline position
// in pixels
type Line struct {
	Text string
	X, Y float64
}

// Annotate returns a copy of img with the argument lines of text drawn
// over it. The argument image is not modified.
func Annotate(img image.Image, lines ...Line) image.Image {
	dc := gg.NewContextForImage(img)
	dc.SetColor(TextColour)
	for _, line := range lines {
		dc.DrawString(line.Text, line.X, line.Y)
	}

	return dc.Image()
}

func prompt(out io.Writer) {
	if out != nil {
		fmt.Fprintln(out, WaitPrompt)
	}
}
