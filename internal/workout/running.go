package workout

// Running calorie formula coefficients.
const (
	runCalorieSpeedMultiplier = 18
	runCalorieSpeedShift      = 20
)

// Running is a running workout. It carries no measurements beyond the shared
// session fields.
type Running struct {
	Session
}

// NewRunning builds a running workout from raw sensor measurements.
func NewRunning(action int, durationHr, weightKg float64) (*Running, error) {
	r := &Running{
		Session: Session{Action: action, DurationHr: durationHr, WeightKg: weightKg},
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Kind implements Workout.
func (r Running) Kind() string { return "Running" }

// CaloriesKcal implements the running calorie formula.
func (r Running) CaloriesKcal() (float64, error) {
	return (runCalorieSpeedMultiplier*r.MeanSpeedKmh() - runCalorieSpeedShift) *
		r.WeightKg / mInKm * r.durationMin(), nil
}
