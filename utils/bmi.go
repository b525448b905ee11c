package utils

import (
	"math"

	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/models"
)

// CalculateBMI expects height in centimeters and weight in kilograms.
// The second return value is false when BMI is unavailable, i.e. either
// input is missing or non-positive.
func CalculateBMI(heightCm, weightKg float64) (float64, bool) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, false
	}

	h := heightCm / 100.0 // to meters
	return round2(weightKg / (h * h)), true
}

// RecommendGoal maps a BMI value onto one of the three fitness goals.
// An unavailable BMI recommends the general plan.
func RecommendGoal(bmi float64, ok bool) string {
	switch {
	case !ok:
		return models.GoalGeneral
	case bmi < 18.5:
		return models.GoalMuscleGain
	case bmi <= 24.9:
		return models.GoalGeneral
	default:
		return models.GoalWeightLoss
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
