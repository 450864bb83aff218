package workout

import (
	"fmt"
	"math"
)

// Sports walking calorie formula coefficients.
const (
	walkCalorieWeightMultiplier = 0.035
	walkCalorieSpeedMultiplier  = 0.029
)

// SportsWalking is a sports walking workout. The athlete height participates
// in the calorie formula as a divisor.
type SportsWalking struct {
	Session
	HeightCm float64
}

// NewSportsWalking builds a sports walking workout from raw sensor
// measurements.
func NewSportsWalking(action int, durationHr, weightKg, heightCm float64) (*SportsWalking, error) {
	w := &SportsWalking{
		Session:  Session{Action: action, DurationHr: durationHr, WeightKg: weightKg},
		HeightCm: heightCm,
	}
	if err := w.validate(); err != nil {
		return nil, err
	}
	if w.HeightCm == 0 {
		return nil, fmt.Errorf("%w: got %g cm", ErrInvalidHeight, w.HeightCm)
	}
	return w, nil
}

// Kind implements Workout.
func (w SportsWalking) Kind() string { return "SportsWalking" }

// CaloriesKcal implements the walking calorie formula. The quotient of
// squared speed by height is floored before it enters the middle term, so
// that term contributes in whole multiples only.
func (w SportsWalking) CaloriesKcal() (float64, error) {
	speed := w.MeanSpeedKmh()
	return (walkCalorieWeightMultiplier*w.WeightKg +
		math.Floor(speed*speed/w.HeightCm)*walkCalorieSpeedMultiplier*w.WeightKg) *
		w.durationMin(), nil
}
