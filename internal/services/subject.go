package services

import (
	"fmt"

	"github.com/hafsatabk/jamb-master-cbt-arena/internal/models"

	"gorm.io/gorm"
)

type SubjectService struct {
	db *gorm.DB
}

func NewSubjectService(db *gorm.DB) *SubjectService {
	return &SubjectService{db: db}
}

func (s *SubjectService) ListSubjects() ([]models.Subject, error) {
	var subjects []models.Subject
	err := s.db.Order("name ASC").Find(&subjects).Error
	return subjects, err
}

func (s *SubjectService) GetSubject(subjectID uint) (*models.Subject, error) {
	var subject models.Subject
	if err := s.db.First(&subject, subjectID).Error; err != nil {
		return nil, fmt.Errorf("subject %w", ErrNotFound)
	}
	return &subject, nil
}

func (s *SubjectService) CreateSubject(name, description, icon string) (*models.Subject, error) {
	if name == "" {
		return nil, fmt.Errorf("subject name is required: %w", ErrValidation)
	}

	var count int64
	if err := s.db.Model(&models.Subject{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("subject %q %w", name, ErrConflict)
	}

	subject := models.Subject{Name: name, Description: description, Icon: icon}
	if err := s.db.Create(&subject).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (s *SubjectService) UpdateSubject(subjectID uint, name, description, icon string) (*models.Subject, error) {
	var subject models.Subject
	if err := s.db.First(&subject, subjectID).Error; err != nil {
		return nil, fmt.Errorf("subject %w", ErrNotFound)
	}

	if name != "" && name != subject.Name {
		var count int64
		if err := s.db.Model(&models.Subject{}).Where("name = ? AND id != ?", name, subjectID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, fmt.Errorf("subject %q %w", name, ErrConflict)
		}
		subject.Name = name
	}
	if description != "" {
		subject.Description = description
	}
	if icon != "" {
		subject.Icon = icon
	}

	if err := s.db.Save(&subject).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (s *SubjectService) DeleteSubject(subjectID uint) error {
	result := s.db.Delete(&models.Subject{}, subjectID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("subject %w", ErrNotFound)
	}
	return nil
}
