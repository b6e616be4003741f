package services

import (
	"fmt"

	"github.com/hafsatabk/jamb-master-cbt-arena/internal/models"

	"gorm.io/gorm"
)

// UserService covers the privileged user administration surface.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (s *UserService) UpdateRole(userID uint, role string) (*models.User, error) {
	switch role {
	case models.RoleStudent, models.RoleAdmin, models.RoleViewer:
	default:
		return nil, fmt.Errorf("role must be student, admin or viewer: %w", ErrValidation)
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}

	user.Role = role
	if err := s.db.Model(&user).Update("role", role).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) DeleteUser(userID uint) error {
	result := s.db.Delete(&models.User{}, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %w", ErrNotFound)
	}
	return nil
}

// QuestionStat is the admin view of question inventory per subject and
// difficulty.
type QuestionStat struct {
	SubjectID   uint   `json:"subject_id"`
	SubjectName string `json:"subject_name"`
	Difficulty  string `json:"difficulty"`
	Count       int    `json:"count"`
}

func (s *UserService) QuestionStats() ([]QuestionStat, error) {
	var stats []QuestionStat
	err := s.db.Model(&models.Question{}).
		Select("questions.subject_id, subjects.name AS subject_name, questions.difficulty, COUNT(*) AS count").
		Joins("JOIN subjects ON subjects.id = questions.subject_id").
		Group("questions.subject_id, subjects.name, questions.difficulty").
		Order("subjects.name ASC, questions.difficulty ASC").
		Scan(&stats).Error
	return stats, err
}
