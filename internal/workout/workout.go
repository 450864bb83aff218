// Package workout implements the derived-metrics formulas for the supported
// workout kinds: running, sports walking and swimming. All metrics are pure
// functions of the raw sensor measurements and are computed on demand.
package workout

import (
	"errors"
	"fmt"
)

// Physical constants shared by the distance and speed formulas.
const (
	stepLengthM   = 0.65 // distance covered by one step
	strokeLengthM = 1.38 // distance covered by one swim stroke
	mInKm         = 1000
	minInHr       = 60
)

var (
	// ErrCaloriesUndefined is returned when the calorie formula is invoked on
	// a bare Session instead of a concrete workout kind.
	ErrCaloriesUndefined = errors.New("calories undefined for this workout")
	// ErrInvalidDuration is returned by constructors when the workout
	// duration is zero or negative. Mean speed divides by the duration, so a
	// session with a non-positive duration has no meaningful metrics.
	ErrInvalidDuration = errors.New("workout duration must be positive")
	// ErrInvalidHeight is returned by NewSportsWalking when the athlete
	// height is zero. The walking calorie formula divides by the height.
	ErrInvalidHeight = errors.New("athlete height must be non-zero")
)

// Workout is the contract implemented by every workout kind.
type Workout interface {
	// Kind returns the display name of the workout type.
	Kind() string
	// DurationHours returns the session duration in hours.
	DurationHours() float64
	// DistanceKm returns the covered distance in kilometers.
	DistanceKm() float64
	// MeanSpeedKmh returns the mean speed in km/h.
	MeanSpeedKmh() float64
	// CaloriesKcal returns the spent calories. It fails only when no calorie
	// formula exists for the receiver, which is the case for a bare Session.
	CaloriesKcal() (float64, error)
}

// Session holds the raw sensor measurements shared by all workout kinds.
// Concrete kinds embed it. A Session used directly satisfies Workout but has
// no calorie formula of its own; only the constructors of the concrete kinds
// validate invariants, so prefer those over literal construction.
type Session struct {
	Action     int     // steps or strokes counted by the sensor
	DurationHr float64 // workout duration in hours, must be positive
	WeightKg   float64 // athlete weight
}

// Kind implements Workout for the bare session.
func (s Session) Kind() string { return "Session" }

// DurationHours returns the session duration in hours.
func (s Session) DurationHours() float64 { return s.DurationHr }

// DistanceKm returns the distance covered by the counted steps.
func (s Session) DistanceKm() float64 {
	return float64(s.Action) * stepLengthM / mInKm
}

// MeanSpeedKmh returns the covered distance over the session duration.
func (s Session) MeanSpeedKmh() float64 {
	return s.DistanceKm() / s.DurationHr
}

// CaloriesKcal fails on a bare session: the calorie formula is defined by the
// concrete workout kinds only.
func (s Session) CaloriesKcal() (float64, error) {
	return 0, ErrCaloriesUndefined
}

// durationMin converts the session duration to minutes, as the running and
// walking calorie formulas expect.
func (s Session) durationMin() float64 {
	return s.DurationHr * minInHr
}

// validate checks the invariants shared by all workout kinds.
func (s Session) validate() error {
	if s.DurationHr <= 0 {
		return fmt.Errorf("%w: got %g h", ErrInvalidDuration, s.DurationHr)
	}
	return nil
}
