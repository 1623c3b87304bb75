// Package dataset implements lookup tables of precomputed camera frames.
//
// A lookup table maps a person and a camera orientation, given as a
// (tilt, pan) pair of angles in degrees, to the pair of frames that
// the camera would see in that orientation: a small input frame which
// is fed to a policy and a larger display frame which is used for
// visualization.
package dataset

import (
	"errors"
	"fmt"
	"image"
	"sort"
)

const (
	// InputSize is the width and height of input frames
	InputSize int = 64

	// DisplaySize is the width and height of display frames
	DisplaySize int = 256

	// Channels is the number of colour channels in a frame
	Channels int = 3
)

// ErrNotFound is returned when a lookup table has no entry for a key
var ErrNotFound = errors.New("entry not found")

// Key indexes a lookup table
type Key struct {
	Person int
	Tilt   int
	Pan    int
}

// String returns the string representation of the Key
func (k Key) String() string {
	return fmt.Sprintf("(%d, (%d, %d))", k.Person, k.Tilt, k.Pan)
}

// Frames is the pair of frames stored for each Key
type Frames struct {
	Input   image.Image
	Display image.Image
}

// Lookup is a read-only table of Frames indexed by person and angles
type Lookup interface {
	Frames(person, tilt, pan int) (Frames, error)
}

// Table is an in-memory Lookup
type Table struct {
	frames map[Key]Frames
}

// NewTable returns a new, empty Table
func NewTable() *Table {
	return &Table{frames: make(map[Key]Frames)}
}

// Add adds an entry to the table, replacing any previous entry for the
// same Key
func (t *Table) Add(k Key, f Frames) error {
	if f.Input == nil || f.Display == nil {
		return fmt.Errorf("add: entry %v must have both input and display "+
			"frames", k)
	}
	t.frames[k] = f
	return nil
}

// Frames returns the frames stored for the argument person at the
// argument tilt and pan angles. If no such entry exists, the returned
// error wraps ErrNotFound.
func (t *Table) Frames(person, tilt, pan int) (Frames, error) {
	k := Key{person, tilt, pan}
	f, ok := t.frames[k]
	if !ok {
		return Frames{}, fmt.Errorf("frames: %w: %v", ErrNotFound, k)
	}
	return f, nil
}

// Len returns the number of entries in the table
func (t *Table) Len() int {
	return len(t.frames)
}

// Persons returns the sorted set of persons which have at least one
// entry in the table
func (t *Table) Persons() []int {
	seen := make(map[int]struct{})
	for k := range t.frames {
		seen[k.Person] = struct{}{}
	}

	persons := make([]int, 0, len(seen))
	for p := range seen {
		persons = append(persons, p)
	}
	sort.Ints(persons)

	return persons
}

// Validate ensures that l has an entry for every combination of the
// argument persons, tilts, and pans and that each input frame is
// InputSize x InputSize. The first violation found is returned.
func Validate(l Lookup, persons, tilts, pans []int) error {
	for _, person := range persons {
		for _, tilt := range tilts {
			for _, pan := range pans {
				f, err := l.Frames(person, tilt, pan)
				if err != nil {
					return fmt.Errorf("validate: %w", err)
				}

				b := f.Input.Bounds()
				if b.Dx() != InputSize || b.Dy() != InputSize {
					return fmt.Errorf("validate: input frame for %v is %dx%d, "+
						"want %dx%d", Key{person, tilt, pan}, b.Dx(), b.Dy(),
						InputSize, InputSize)
				}
			}
		}
	}
	return nil
}
