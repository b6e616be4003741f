package models

import "time"

type UserBadge struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	User            User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	BadgeName       string    `gorm:"size:50;not null" json:"badge_name"`
	ScorePercentage int       `json:"score_percentage,omitempty"`
	EarnedAt        time.Time `json:"earned_at"`
}
