package workout

import "fmt"

// InfoMessage is the derived-metrics summary of a single workout session. It
// is produced once per report request and never mutated.
type InfoMessage struct {
	TrainingType string
	DurationHr   float64
	DistanceKm   float64
	SpeedKmh     float64
	CaloriesKcal float64
}

// Summary computes all derived metrics of a workout and returns them as an
// InfoMessage. Calories are computed first: they are the only metric that can
// be undefined, and no partial message is produced when they are.
func Summary(w Workout) (InfoMessage, error) {
	calories, err := w.CaloriesKcal()
	if err != nil {
		return InfoMessage{}, fmt.Errorf("building workout summary: %w", err)
	}
	return InfoMessage{
		TrainingType: w.Kind(),
		DurationHr:   w.DurationHours(),
		DistanceKm:   w.DistanceKm(),
		SpeedKmh:     w.MeanSpeedKmh(),
		CaloriesKcal: calories,
	}, nil
}
