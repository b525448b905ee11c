package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/models"
)

func TestDietPlans(t *testing.T) {
	svc := NewPlanService()

	assert.Equal(t, "Weight Loss Diet", svc.DietPlan(models.GoalWeightLoss).Type)
	assert.Equal(t, "Muscle Gain Diet", svc.DietPlan(models.GoalMuscleGain).Type)
	assert.Equal(t, "General Fitness Diet", svc.DietPlan(models.GoalGeneral).Type)

	// unknown goals fall back to the general plan
	assert.Equal(t, "General Fitness Diet", svc.DietPlan("keto").Type)

	assert.NotEmpty(t, svc.DietPlan(models.GoalWeightLoss).Items)
}

func TestWorkoutPlans(t *testing.T) {
	svc := NewPlanService()

	assert.Equal(t, "Weight Loss Workout", svc.WorkoutPlan(models.GoalWeightLoss).Type)
	assert.Equal(t, "Muscle Gain Workout", svc.WorkoutPlan(models.GoalMuscleGain).Type)
	assert.Equal(t, "General Fitness", svc.WorkoutPlan(models.GoalGeneral).Type)
	assert.Equal(t, "General Fitness", svc.WorkoutPlan("").Type)
}

func TestQuoteOfDay(t *testing.T) {
	svc := NewPlanService()

	day3 := time.Date(2024, 6, 3, 12, 0, 0, 0, time.Local)
	day4 := time.Date(2024, 6, 4, 12, 0, 0, 0, time.Local)
	day6 := time.Date(2024, 6, 6, 12, 0, 0, 0, time.Local)

	// deterministic by day of month, cycling through three quotes
	assert.Equal(t, svc.QuoteOfDay(day3), svc.QuoteOfDay(day6))
	assert.NotEqual(t, svc.QuoteOfDay(day3), svc.QuoteOfDay(day4))
	assert.NotEmpty(t, svc.QuoteOfDay(time.Now()))
}
