package dataset

import (
	"errors"
	"image"
	"testing"
)

func TestTableFrames(t *testing.T) {
	table := NewTable()
	input := image.NewRGBA(image.Rect(0, 0, InputSize, InputSize))
	display := image.NewRGBA(image.Rect(0, 0, DisplaySize, DisplaySize))

	if err := table.Add(Key{1, 0, 15}, Frames{input, display}); err != nil {
		t.Fatal(err)
	}

	f, err := table.Frames(1, 0, 15)
	if err != nil {
		t.Fatalf("frames: %v", err)
	}
	if f.Input != input || f.Display != display {
		t.Error("frames: returned frames differ from stored frames")
	}

	_, err = table.Frames(1, 15, 0)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("frames: want ErrNotFound, have %v", err)
	}
}

func TestTableAddRejectsNil(t *testing.T) {
	table := NewTable()
	input := image.NewRGBA(image.Rect(0, 0, InputSize, InputSize))
	if err := table.Add(Key{0, 0, 0}, Frames{Input: input}); err == nil {
		t.Error("add: expected error for missing display frame")
	}
	if table.Len() != 0 {
		t.Errorf("add: want empty table, have %d entries", table.Len())
	}
}

func TestSyntheticCoverage(t *testing.T) {
	persons := []int{0, 1, 2}
	tilts := []int{-60, 0, 60}
	pans := []int{-90, -45, 0, 45, 90}

	table := Synthetic(persons, tilts, pans, 7)

	if want := len(persons) * len(tilts) * len(pans); table.Len() != want {
		t.Errorf("synthetic: want %d entries, have %d", want, table.Len())
	}
	if err := Validate(table, persons, tilts, pans); err != nil {
		t.Errorf("synthetic: %v", err)
	}

	got := table.Persons()
	if len(got) != len(persons) {
		t.Fatalf("persons: want %v, have %v", persons, got)
	}
	for i := range persons {
		if got[i] != persons[i] {
			t.Errorf("persons: want %v, have %v", persons, got)
		}
	}

	f, _ := table.Frames(0, 0, 0)
	if b := f.Display.Bounds(); b.Dx() != DisplaySize || b.Dy() != DisplaySize {
		t.Errorf("synthetic: display frame is %dx%d", b.Dx(), b.Dy())
	}
}

func TestSyntheticCentredFace(t *testing.T) {
	table := Synthetic([]int{0}, []int{-60, 0, 60}, []int{-90, 0, 90}, 3)

	centre := func(person, tilt, pan int) (r, g, b uint32) {
		f, err := table.Frames(person, tilt, pan)
		if err != nil {
			t.Fatal(err)
		}
		r, g, b, _ = f.Input.At(InputSize/2, InputSize/2).RGBA()
		return
	}

	// At the centre orientation the face covers the frame centre, at
	// an extreme orientation the background does
	r0, g0, b0 := centre(0, 0, 0)
	r1, g1, b1 := centre(0, 60, 90)
	if r0 == r1 && g0 == g1 && b0 == b1 {
		t.Error("synthetic: frame centre identical for centred and " +
			"extreme orientations")
	}
}

func TestValidate(t *testing.T) {
	table := Synthetic([]int{0}, []int{0, 15}, []int{0}, 1)

	if err := Validate(table, []int{0, 1}, []int{0, 15}, []int{0}); !errors.Is(err, ErrNotFound) {
		t.Errorf("validate: want ErrNotFound for missing person, have %v", err)
	}

	small := image.NewRGBA(image.Rect(0, 0, 8, 8))
	table.Add(Key{0, 15, 0}, Frames{small, small})
	if err := Validate(table, []int{0}, []int{0, 15}, []int{0}); err == nil {
		t.Error("validate: expected error for wrongly sized input frame")
	}
}
