package camera

import (
	"fmt"

	"github.com/samuelfneumann/camctl/utils/floatutils"
	"gonum.org/v1/gonum/stat"
)

// Statistics tracks the orientations at which episodes start and end
// across all episodes of an environment.
//
// InitialTilt and InitialPan hold one entry per episode. FinalTilt and
// FinalPan hold one entry per episode as well; the entry of the current
// episode is overwritten after every step, so that it holds the
// orientation at which the episode ended once the next episode starts.
type Statistics struct {
	InitialTilt []float64
	InitialPan  []float64
	FinalTilt   []float64
	FinalPan    []float64
	Episodes    int
}

// begin starts tracking a new episode starting at the argument angles
func (s *Statistics) begin(tilt, pan int) {
	s.InitialTilt = append(s.InitialTilt, float64(tilt))
	s.InitialPan = append(s.InitialPan, float64(pan))
	s.FinalTilt = append(s.FinalTilt, float64(tilt))
	s.FinalPan = append(s.FinalPan, float64(pan))
	s.Episodes++
}

// update sets the final angles of the current episode
func (s *Statistics) update(tilt, pan int) {
	if len(s.FinalTilt) == 0 {
		return
	}
	s.FinalTilt[len(s.FinalTilt)-1] = float64(tilt)
	s.FinalPan[len(s.FinalPan)-1] = float64(pan)
}

// Clone returns a deep copy of the statistics
func (s Statistics) Clone() Statistics {
	return Statistics{
		InitialTilt: append([]float64(nil), s.InitialTilt...),
		InitialPan:  append([]float64(nil), s.InitialPan...),
		FinalTilt:   append([]float64(nil), s.FinalTilt...),
		FinalPan:    append([]float64(nil), s.FinalPan...),
		Episodes:    s.Episodes,
	}
}

// Summary summarizes Statistics by the mean absolute angles over all
// episodes
type Summary struct {
	Episodes    int
	InitialTilt float64
	InitialPan  float64
	FinalTilt   float64
	FinalPan    float64
}

func (s Summary) String() string {
	return fmt.Sprintf("Episodes: %d  |  Initial |Tilt|/|Pan|: %.2f/%.2f"+
		"  |  Final |Tilt|/|Pan|: %.2f/%.2f", s.Episodes, s.InitialTilt,
		s.InitialPan, s.FinalTilt, s.FinalPan)
}

// Summary returns the mean absolute initial and final angles. If no
// episodes have been tracked, all means are 0.
func (s Statistics) Summary() Summary {
	if len(s.InitialTilt) == 0 {
		return Summary{Episodes: s.Episodes}
	}

	return Summary{
		Episodes:    s.Episodes,
		InitialTilt: stat.Mean(floatutils.Abs(s.InitialTilt), nil),
		InitialPan:  stat.Mean(floatutils.Abs(s.InitialPan), nil),
		FinalTilt:   stat.Mean(floatutils.Abs(s.FinalTilt), nil),
		FinalPan:    stat.Mean(floatutils.Abs(s.FinalPan), nil),
	}
}
