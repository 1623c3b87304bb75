package camera

import "github.com/samuelfneumann/camctl/utils/intutils"

const (
	// Threshold is the normalized reward below which no reward is given
	Threshold float64 = 0.95

	// ImproveBonus is added to the reward when the error decreases
	ImproveBonus float64 = 0.1

	// WorsenPenalty is added to the reward when the error increases
	WorsenPenalty float64 = -0.15
)

// Centre implements the task of centring a face in the camera frame.
//
// The error of an orientation is its normalized squared distance from
// the centre of the grid:
//
//	error = (tilt / max|tilt|)² + (pan / max|pan|)²
//
// which lies in [0, 2]. The reward for an error is sparse: with
// raw = (2 - error) / 2, the reward is 0 if raw < Threshold and
// (raw - Threshold) / (1 - Threshold) otherwise. A shaping bonus is
// added based on the trend of the two most recent errors of the
// episode, but only once the episode has seen more than two errors.
type Centre struct {
	maxTilt float64
	maxPan  float64
}

// NewCentre returns a new Centre task for the argument grid. The grid
// should be valid.
func NewCentre(g Grid) Centre {
	return Centre{
		maxTilt: float64(intutils.MaxAbs(g.Tilts...)),
		maxPan:  float64(intutils.MaxAbs(g.Pans...)),
	}
}

// Error returns the normalized squared error of the argument angles
func (c Centre) Error(tilt, pan int) float64 {
	t := float64(tilt) / c.maxTilt
	p := float64(pan) / c.maxPan
	return t*t + p*p
}

// BaseReward returns the reward for an error without shaping
func (c Centre) BaseReward(err float64) float64 {
	raw := (2 - err) / 2
	if raw < Threshold {
		return 0
	}
	return (raw - Threshold) / (1 - Threshold)
}

// Bonus returns the shaping bonus for a sequence of errors
func (c Centre) Bonus(errors []float64) float64 {
	n := len(errors)
	if n <= 2 {
		return 0
	}

	switch prev, last := errors[n-2], errors[n-1]; {
	case prev > last:
		return ImproveBonus
	case prev < last:
		return WorsenPenalty
	default:
		return 0
	}
}

// GetReward returns the reward for the last error in a sequence of
// errors of an episode
func (c Centre) GetReward(errors []float64) float64 {
	if len(errors) == 0 {
		return 0
	}
	return c.BaseReward(errors[len(errors)-1]) + c.Bonus(errors)
}

// Min returns the minimum possible reward
func (c Centre) Min() float64 {
	return WorsenPenalty
}

// Max returns the maximum possible reward
func (c Centre) Max() float64 {
	return 1.0 + ImproveBonus
}
