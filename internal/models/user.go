package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Username     string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	FirstName    string    `gorm:"size:100" json:"first_name,omitempty"`
	LastName     string    `gorm:"size:100" json:"last_name,omitempty"`
	Role         string    `gorm:"size:20;not null;default:'student';check:role IN ('student','admin','viewer')" json:"role"`
	Points       int       `gorm:"not null;default:0;check:points >= 0" json:"points"`
	Rank         string    `gorm:"size:50;not null;default:'Beginner'" json:"rank"`
	Streak       int       `gorm:"not null;default:0" json:"streak"`
	LastQuizDate string    `gorm:"size:10" json:"last_quiz_date,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
	RoleViewer  = "viewer"
)
