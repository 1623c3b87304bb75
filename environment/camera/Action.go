package camera

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidAction is returned when an action outside of the action
// set is taken
var ErrInvalidAction = errors.New("invalid action")

// Action is a discrete camera action. Legal actions are:
//
//	Action	Meaning			Index change
//	  0		Stay			none
//	  1		Tilt down		tilt - 1
//	  2		Tilt up			tilt + 1
//	  3		Pan right		pan - 1
//	  4		Pan left		pan + 1
type Action int

const (
	Stay Action = iota
	TiltDown
	TiltUp
	PanRight
	PanLeft
)

const (
	// MinAction and MaxAction are the bounds of the action set
	MinAction = Stay
	MaxAction = PanLeft
)

// deltas maps each action to its change in (tilt, pan) indices
var deltas = [...][2]int{
	Stay:     {0, 0},
	TiltDown: {-1, 0},
	TiltUp:   {1, 0},
	PanRight: {0, -1},
	PanLeft:  {0, 1},
}

// text is the annotation shown when rendering an action. It describes
// the direction in which the face moves in the frame.
var text = [...]string{
	Stay:     "Stay",
	TiltDown: "Up",
	TiltUp:   "Down",
	PanRight: "Left",
	PanLeft:  "Right",
}

// ParseAction converts a numeric action to an Action. The value must
// be an integer in [MinAction, MaxAction], otherwise the returned error
// wraps ErrInvalidAction.
func ParseAction(v float64) (Action, error) {
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("parseAction: %w: %v is not integral",
			ErrInvalidAction, v)
	}
	if v < float64(MinAction) || v > float64(MaxAction) {
		return 0, fmt.Errorf("parseAction: %w: %v ∉ [%d, %d]",
			ErrInvalidAction, v, MinAction, MaxAction)
	}
	return Action(v), nil
}

// Valid returns whether the action is in the action set
func (a Action) Valid() bool {
	return a >= MinAction && a <= MaxAction
}

// Delta returns the change in tilt and pan indices caused by the action.
// Delta panics if the action is not valid.
func (a Action) Delta() (tilt, pan int) {
	if !a.Valid() {
		panic(fmt.Sprintf("delta: %v", a))
	}
	return deltas[a][0], deltas[a][1]
}

// Text returns the text shown for the action when rendering
func (a Action) Text() string {
	if !a.Valid() {
		return "None"
	}
	return text[a]
}

func (a Action) String() string {
	switch a {
	case Stay:
		return "Stay"
	case TiltDown:
		return "TiltDown"
	case TiltUp:
		return "TiltUp"
	case PanRight:
		return "PanRight"
	case PanLeft:
		return "PanLeft"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}
