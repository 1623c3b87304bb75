package render

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
)

// PNG is a Display which writes every shown frame to a separate PNG
// file in a directory. Frames named "CNN Input" are saved as
// cnn-input1.png, cnn-input2.png, and so on.
//
// Blocking waits print a prompt and read a line from the input reader.
type PNG struct {
	dir    string
	in     *bufio.Reader
	out    io.Writer
	counts map[string]int
}

// NewPNG returns a new PNG display saving frames to dir, which is
// created if it does not exist. Keypresses are read from in and
// prompts written to out.
func NewPNG(dir string, in io.Reader, out io.Writer) (*PNG, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("newPNG: could not create directory: %w", err)
	}

	return &PNG{
		dir:    dir,
		in:     bufio.NewReader(in),
		out:    out,
		counts: make(map[string]int),
	}, nil
}

// Show saves img as the next enumerated PNG file for the frame name
func (p *PNG) Show(name string, img image.Image) error {
	if err := gg.SavePNG(p.filename(name), img); err != nil {
		return fmt.Errorf("show: could not save frame %q: %w", name, err)
	}
	return nil
}

// WaitKey blocks until a line can be read from the input reader if
// block is true. Frames are written to disk as soon as they are shown,
// so a non-blocking wait has nothing to refresh.
func (p *PNG) WaitKey(block bool) error {
	if !block {
		return nil
	}

	prompt(p.out)
	_, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("waitKey: %w", err)
	}
	return nil
}

// filename returns the path of the next PNG file for frames called
// name. Counters start at 1 and are kept per frame name.
func (p *PNG) filename(name string) string {
	p.counts[name]++
	base := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ",
		"-"))
	return filepath.Join(p.dir, fmt.Sprintf("%v%d.png", base,
		p.counts[name]))
}
