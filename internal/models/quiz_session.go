package models

import "time"

type QuizSession struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"not null;index" json:"user_id"`
	User            User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	SubjectID       uint       `gorm:"not null;index" json:"subject_id"`
	Subject         Subject    `gorm:"foreignKey:SubjectID" json:"-"`
	TotalQuestions  int        `gorm:"not null" json:"total_questions"`
	DurationSeconds int        `gorm:"not null" json:"duration_seconds"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	Status          string     `gorm:"size:20;not null;default:'active';check:status IN ('active','completed','abandoned')" json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
}

const (
	SessionActive    = "active"
	SessionCompleted = "completed"
	SessionAbandoned = "abandoned"
)
