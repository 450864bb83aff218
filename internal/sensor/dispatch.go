package sensor

import (
	"errors"
	"fmt"

	"github.com/meltforce/fittrack/internal/workout"
)

// Workout type codes as sent by the sensors.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

// ErrUnknownCode is returned when a package carries a workout type code the
// dispatcher has no constructor for.
var ErrUnknownCode = errors.New("unknown workout code")

// ErrArity is returned when a package carries the wrong number of values for
// its workout type code.
var ErrArity = errors.New("wrong number of values")

// Values per code: action count, duration and weight for every workout,
// plus pool length and lap count for swimming, height for walking.
const (
	swimmingValues = 5
	runningValues  = 3
	walkingValues  = 4
)

// ArityError reports a package whose value count does not match its code.
type ArityError struct {
	Code string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s expects %d values, got %d", e.Code, e.Want, e.Got)
}

func (e *ArityError) Unwrap() error { return ErrArity }

// Decode turns a sensor package into the workout it describes. The value
// count is checked against the code before the workout is constructed.
func Decode(pkg Package) (workout.Workout, error) {
	switch pkg.Code {
	case CodeSwimming:
		if len(pkg.Values) != swimmingValues {
			return nil, &ArityError{Code: pkg.Code, Want: swimmingValues, Got: len(pkg.Values)}
		}
		sw, err := workout.NewSwimming(int(pkg.Values[0]), pkg.Values[1], pkg.Values[2], int(pkg.Values[3]), int(pkg.Values[4]))
		if err != nil {
			return nil, err
		}
		return sw, nil

	case CodeRunning:
		if len(pkg.Values) != runningValues {
			return nil, &ArityError{Code: pkg.Code, Want: runningValues, Got: len(pkg.Values)}
		}
		r, err := workout.NewRunning(int(pkg.Values[0]), pkg.Values[1], pkg.Values[2])
		if err != nil {
			return nil, err
		}
		return r, nil

	case CodeWalking:
		if len(pkg.Values) != walkingValues {
			return nil, &ArityError{Code: pkg.Code, Want: walkingValues, Got: len(pkg.Values)}
		}
		w, err := workout.NewSportsWalking(int(pkg.Values[0]), pkg.Values[1], pkg.Values[2], pkg.Values[3])
		if err != nil {
			return nil, err
		}
		return w, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCode, pkg.Code)
	}
}
