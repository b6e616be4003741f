package models

import "time"

type QuizResult struct {
	ID               uint        `gorm:"primaryKey" json:"id"`
	SessionID        uint        `gorm:"not null;uniqueIndex" json:"session_id"`
	Session          QuizSession `gorm:"foreignKey:SessionID" json:"-"`
	UserID           uint        `gorm:"not null;index" json:"user_id"`
	User             User        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	SubjectID        uint        `gorm:"not null;index" json:"subject_id"`
	Subject          Subject     `gorm:"foreignKey:SubjectID" json:"-"`
	TotalQuestions   int         `gorm:"not null" json:"total_questions"`
	CorrectAnswers   int         `gorm:"not null" json:"correct_answers"`
	Score            float64     `gorm:"not null" json:"score"`
	Percentage       float64     `gorm:"not null" json:"percentage"`
	Status           string      `gorm:"size:10;not null;check:status IN ('pass','fail')" json:"status"`
	TimeTakenSeconds int         `gorm:"not null" json:"time_taken_seconds"`
	Badge            string      `gorm:"size:50" json:"badge,omitempty"`
	PointsEarned     int         `gorm:"not null;default:0" json:"points_earned"`
	CreatedAt        time.Time   `json:"created_at"`
}

const (
	ResultPass = "pass"
	ResultFail = "fail"
)
