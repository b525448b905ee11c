package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/models"
	"github.com/juikulkarni2806/smart-fitness-and-diet-recommandation-system/utils"
)

var (
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so a caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register creates a new user with a hashed password and a BMI-derived goal.
// Height and weight are optional; non-positive values are stored as absent.
func (s *AuthService) Register(name, email, password string, heightCm, weightKg float64) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	bmi, ok := utils.CalculateBMI(heightCm, weightKg)

	user := models.User{
		Name:     strings.TrimSpace(name),
		Email:    NormalizeEmail(email),
		Password: hashed,
		HeightCm: optional(heightCm),
		WeightKg: optional(weightKg),
		Goal:     utils.RecommendGoal(bmi, ok),
	}
	if ok {
		user.BMI = &bmi
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate looks a user up by normalized email and verifies the password.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", NormalizeEmail(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func optional(v float64) *float64 {
	if v <= 0 {
		return nil
	}
	return &v
}
