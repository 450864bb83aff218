package workout

// Swimming calorie formula coefficients.
const (
	swimCalorieSpeedShift       = 1.1
	swimCalorieWeightMultiplier = 2
)

// Swimming is a pool swimming workout. Distance follows the stroke length
// rather than the step length, and mean speed is derived from the pool
// geometry alone.
type Swimming struct {
	Session
	PoolLenM int // pool length in meters
	PoolLaps int // times the pool was swum end to end
}

// NewSwimming builds a swimming workout from raw sensor measurements.
func NewSwimming(action int, durationHr, weightKg float64, poolLenM, poolLaps int) (*Swimming, error) {
	sw := &Swimming{
		Session:  Session{Action: action, DurationHr: durationHr, WeightKg: weightKg},
		PoolLenM: poolLenM,
		PoolLaps: poolLaps,
	}
	if err := sw.validate(); err != nil {
		return nil, err
	}
	return sw, nil
}

// Kind implements Workout.
func (sw Swimming) Kind() string { return "Swimming" }

// DistanceKm returns the distance covered by the counted strokes.
func (sw Swimming) DistanceKm() float64 {
	return float64(sw.Action) * strokeLengthM / mInKm
}

// MeanSpeedKmh derives the mean speed from the pool length and lap count,
// independent of the stroke count.
func (sw Swimming) MeanSpeedKmh() float64 {
	return float64(sw.PoolLenM) * float64(sw.PoolLaps) / mInKm / sw.DurationHr
}

// CaloriesKcal implements the swimming calorie formula.
func (sw Swimming) CaloriesKcal() (float64, error) {
	return (sw.MeanSpeedKmh() + swimCalorieSpeedShift) *
		swimCalorieWeightMultiplier * sw.WeightKg, nil
}
