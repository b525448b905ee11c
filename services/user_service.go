package services

import (
	"gorm.io/gorm"

	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/models"
	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/utils"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GoalFor returns the user's current goal, defaulting to general when the
// user cannot be loaded.
func (s *UserService) GoalFor(id uint) string {
	user, err := s.GetByID(id)
	if err != nil || user.Goal == "" {
		return models.GoalGeneral
	}
	return user.Goal
}

// UpdateGoal persists a goal override chosen on the diet or workout page.
func (s *UserService) UpdateGoal(id uint, goal string) error {
	return s.db.Model(&models.User{}).Where("id = ?", id).Update("goal", goal).Error
}

// UpdateProfile replaces name, height and weight, recomputing BMI and goal
// from the new measurements. Non-positive measurements are stored as absent.
func (s *UserService) UpdateProfile(id uint, name string, heightCm, weightKg float64) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}

	bmi, ok := utils.CalculateBMI(heightCm, weightKg)

	user.Name = name
	user.HeightCm = optional(heightCm)
	user.WeightKg = optional(weightKg)
	user.Goal = utils.RecommendGoal(bmi, ok)
	user.BMI = nil
	if ok {
		user.BMI = &bmi
	}

	updates := map[string]interface{}{
		"name":      user.Name,
		"height_cm": user.HeightCm,
		"weight_kg": user.WeightKg,
		"bmi":       user.BMI,
		"goal":      user.Goal,
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
