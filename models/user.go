package models

import (
	"gorm.io/gorm"
)

const (
	GoalWeightLoss = "weight_loss"
	GoalMuscleGain = "muscle_gain"
	GoalGeneral    = "general"
)

// User is the aggregate root for all per-user queries. Height, weight and BMI
// are optional; BMI is derived from height/weight and never set directly.
type User struct {
	gorm.Model
	Name     string `gorm:"not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	HeightCm *float64
	WeightKg *float64
	BMI      *float64
	Goal     string `gorm:"default:general"`
}
