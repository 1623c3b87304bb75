package render

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAnnotateDoesNotModify(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 256, 256))
	annotated := Annotate(img, Line{"Tilt/Pan: 0/0", 10, 25},
		Line{"Sel. Action: Stay", 10, 50})

	if annotated.Bounds() != img.Bounds() {
		t.Fatalf("annotate: bounds changed from %v to %v", img.Bounds(),
			annotated.Bounds())
	}

	drawn := false
	b := annotated.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !drawn; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, blue, _ := annotated.At(x, y).RGBA(); blue > 0 {
				drawn = true
				break
			}
		}
	}
	if !drawn {
		t.Error("annotate: no text was drawn")
	}

	for i := range img.Pix {
		if img.Pix[i] != 0 {
			t.Fatal("annotate: source image was modified")
		}
	}
}

func TestPNGFilename(t *testing.T) {
	dir := t.TempDir()
	p, err := NewPNG(dir, strings.NewReader(""), &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		want string
	}{
		{"View", "view1.png"},
		{"CNN Input", "cnn-input1.png"},
		{"View", "view2.png"},
		{"CNN Input", "cnn-input2.png"},
	}
	for _, test := range tests {
		if got := p.filename(test.name); got != filepath.Join(dir, test.want) {
			t.Errorf("filename(%q): want %v, have %v", test.name,
				filepath.Join(dir, test.want), got)
		}
	}
}

func TestPrompt(t *testing.T) {
	var out bytes.Buffer
	prompt(&out)
	if out.String() != WaitPrompt+"\n" {
		t.Errorf("prompt: want %q, have %q", WaitPrompt+"\n", out.String())
	}

	// A nil writer discards the prompt
	prompt(nil)
}

func TestPNGShow(t *testing.T) {
	dir := t.TempDir()
	p, err := NewPNG(dir, strings.NewReader(""), &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.White)
	for i := 0; i < 2; i++ {
		if err := p.Show("CNN Input", img); err != nil {
			t.Fatal(err)
		}
	}

	for _, name := range []string{"cnn-input1.png", "cnn-input2.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("show: expected file %v: %v", name, err)
		}
	}
}

func TestPNGWaitKey(t *testing.T) {
	var out bytes.Buffer
	p, err := NewPNG(t.TempDir(), strings.NewReader("\n"), &out)
	if err != nil {
		t.Fatal(err)
	}

	if err := p.WaitKey(false); err != nil {
		t.Errorf("waitKey: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("waitKey: non-blocking wait printed %q", out.String())
	}

	if err := p.WaitKey(true); err != nil {
		t.Errorf("waitKey: %v", err)
	}
	if !strings.Contains(out.String(), WaitPrompt) {
		t.Errorf("waitKey: expected prompt, have %q", out.String())
	}

	// Input is exhausted, EOF must not be an error
	if err := p.WaitKey(true); err != nil {
		t.Errorf("waitKey: %v", err)
	}
}
