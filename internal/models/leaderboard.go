package models

import "time"

// LeaderboardEntry is the per-user aggregate recomputed from results;
// it is never edited directly.
type LeaderboardEntry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	User         User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	TotalQuizzes int       `gorm:"not null;default:0" json:"total_quizzes"`
	AverageScore float64   `gorm:"not null;default:0" json:"average_score"`
	HighestScore float64   `gorm:"not null;default:0" json:"highest_score"`
	TotalPoints  int       `gorm:"not null;default:0" json:"total_points"`
	RankLevel    string    `gorm:"size:50;not null;default:'Beginner'" json:"rank_level"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (LeaderboardEntry) TableName() string {
	return "leaderboard_data"
}
