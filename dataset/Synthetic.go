package dataset

import (
	"image"
	"math"

	"golang.org/x/exp/rand"

	"github.com/fogleman/gg"
	"github.com/samuelfneumann/camctl/utils/intutils"
)

// offsetScale is the fraction of the frame size by which a face at the
// most extreme angle is displaced from the frame centre
const offsetScale float64 = 0.35

// Synthetic returns a Table covering every combination of the argument
// persons, tilts, and pans. Each person is drawn as a face of a random
// colour; the face sits in the centre of the frame at tilt = pan = 0
// and moves away from the centre in proportion to the angles.
//
// Synthetic tables are deterministic given the seed.
func Synthetic(persons, tilts, pans []int, seed uint64) *Table {
	maxTilt := float64(intutils.MaxAbs(tilts...))
	maxPan := float64(intutils.MaxAbs(pans...))

	t := NewTable()
	for _, person := range persons {
		rng := rand.New(rand.NewSource(seed + uint64(person)))
		f := face{
			skin:       [3]float64{0.5 + 0.5*rng.Float64(), 0.3 + 0.5*rng.Float64(), 0.2 + 0.5*rng.Float64()},
			background: [3]float64{0.2 * rng.Float64(), 0.2 * rng.Float64(), 0.2 * rng.Float64()},
			radius:     0.12 + 0.06*rng.Float64(),
		}

		for _, tilt := range tilts {
			for _, pan := range pans {
				// Panning right moves the face left in the frame, tilting
				// up moves the face down in the frame
				dx := -normalize(float64(pan), maxPan)
				dy := normalize(float64(tilt), maxTilt)

				// Frames are always non-nil, so Add cannot fail
				t.Add(Key{person, tilt, pan}, Frames{
					Input:   f.draw(InputSize, dx, dy),
					Display: f.draw(DisplaySize, dx, dy),
				})
			}
		}
	}

	return t
}

func normalize(v, max float64) float64 {
	if max == 0 {
		return 0
	}
	return v / max
}

type face struct {
	skin       [3]float64
	background [3]float64
	radius     float64 // as a fraction of the frame size
}

// draw renders the face on a size x size frame, displaced from the
// frame centre by (dx, dy) in [-1, 1] units of the maximum offset
func (f face) draw(size int, dx, dy float64) image.Image {
	s := float64(size)
	dc := gg.NewContext(size, size)

	dc.SetRGB(f.background[0], f.background[1], f.background[2])
	dc.Clear()

	cx := s/2 + dx*offsetScale*s
	cy := s/2 + dy*offsetScale*s
	r := f.radius * s

	dc.DrawCircle(cx, cy, r)
	dc.SetRGB(f.skin[0], f.skin[1], f.skin[2])
	dc.Fill()

	// Eyes
	eye := math.Max(1, r/6)
	dc.DrawCircle(cx-r/3, cy-r/4, eye)
	dc.DrawCircle(cx+r/3, cy-r/4, eye)
	dc.SetRGB(0.05, 0.05, 0.05)
	dc.Fill()

	return dc.Image()
}
