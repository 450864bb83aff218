package report

import (
	"fmt"

	"github.com/meltforce/fittrack/internal/workout"
)

// messageTemplate is the fixed report line. Wording, order and the three
// decimal places are part of the output contract and must not change.
const messageTemplate = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// Format renders an info message as the canonical report line.
func Format(info workout.InfoMessage) string {
	return fmt.Sprintf(messageTemplate,
		info.TrainingType,
		info.DurationHr,
		info.DistanceKm,
		info.SpeedKmh,
		info.CaloriesKcal,
	)
}

// Render summarizes a workout and formats it as the canonical report line.
func Render(w workout.Workout) (string, error) {
	info, err := workout.Summary(w)
	if err != nil {
		return "", fmt.Errorf("rendering workout report: %w", err)
	}
	return Format(info), nil
}
