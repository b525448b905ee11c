package services

import (
	"time"

	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/models"
)

// Plan is a fixed diet or workout prescription for one goal.
type Plan struct {
	Type  string   `json:"type"`
	Items []string `json:"items"`
}

// PlanService serves the static plan tables and the quote of the day.
// There is no computation here, just lookups.
type PlanService struct{}

func NewPlanService() *PlanService {
	return &PlanService{}
}

var dietPlans = map[string]Plan{
	models.GoalWeightLoss: {
		Type: "Weight Loss Diet",
		Items: []string{
			"Breakfast: Oatmeal with fruits",
			"Lunch: Brown rice + grilled veggies + lean protein",
			"Snack: Fruit / nuts",
			"Dinner: Soup + salad",
		},
	},
	models.GoalMuscleGain: {
		Type: "Muscle Gain Diet",
		Items: []string{
			"Breakfast: Eggs + wholegrain toast",
			"Lunch: Rice + chicken/beans + veggies",
			"Snack: Protein shake",
			"Dinner: Paneer / tofu with roti",
		},
	},
	models.GoalGeneral: {
		Type: "General Fitness Diet",
		Items: []string{
			"Breakfast: Fruit + oats",
			"Lunch: Balanced plate with carbs+protein+veg",
			"Snack: Yogurt / nuts",
			"Dinner: Light meal",
		},
	},
}

var workoutPlans = map[string]Plan{
	models.GoalWeightLoss: {
		Type: "Weight Loss Workout",
		Items: []string{
			"Jumping Jacks — 30s",
			"Burpees — 10 reps",
			"Mountain Climbers — 20 reps",
			"Squats — 3 x 15",
			"Plank — 3 x 30s",
		},
	},
	models.GoalMuscleGain: {
		Type: "Muscle Gain Workout",
		Items: []string{
			"Push-ups — 4 x 12",
			"Squats — 4 x 12",
			"Lunges — 3 x 12 each leg",
			"Dumbbell curls — 3 x 12",
		},
	},
	models.GoalGeneral: {
		Type: "General Fitness",
		Items: []string{
			"Brisk walk — 20 min",
			"Bodyweight squats — 3 x 15",
			"Light stretching",
		},
	},
}

var quotes = []string{
	"Small steps every day lead to big results.",
	"Consistency is the key to progress.",
	"Progress > Perfection.",
}

// DietPlan returns the diet plan for a goal; unknown goals get the general plan.
func (s *PlanService) DietPlan(goal string) Plan {
	if plan, ok := dietPlans[goal]; ok {
		return plan
	}
	return dietPlans[models.GoalGeneral]
}

// WorkoutPlan returns the workout plan for a goal; unknown goals get the general plan.
func (s *PlanService) WorkoutPlan(goal string) Plan {
	if plan, ok := workoutPlans[goal]; ok {
		return plan
	}
	return workoutPlans[models.GoalGeneral]
}

// QuoteOfDay picks a quote deterministically by day of month.
func (s *PlanService) QuoteOfDay(t time.Time) string {
	return quotes[t.Day()%len(quotes)]
}
