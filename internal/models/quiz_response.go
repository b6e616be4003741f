package models

import "time"

type QuizResponse struct {
	ID               uint        `gorm:"primaryKey" json:"id"`
	SessionID        uint        `gorm:"not null;uniqueIndex:idx_response_unique" json:"session_id"`
	Session          QuizSession `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"-"`
	QuestionID       uint        `gorm:"not null;uniqueIndex:idx_response_unique" json:"question_id"`
	Question         Question    `gorm:"foreignKey:QuestionID" json:"-"`
	UserAnswer       string      `gorm:"size:10;check:user_answer IN ('A','B','C','D','SKIP','FLAGGED')" json:"user_answer"`
	IsCorrect        bool        `gorm:"not null;default:false" json:"is_correct"`
	TimeSpentSeconds int         `gorm:"not null;default:0" json:"time_spent_seconds"`
	Flagged          bool        `gorm:"not null;default:false" json:"flagged"`
	CreatedAt        time.Time   `json:"created_at"`
}

const (
	AnswerSkip    = "SKIP"
	AnswerFlagged = "FLAGGED"
)

// ValidResponse reports whether s is an option letter, SKIP or FLAGGED.
func ValidResponse(s string) bool {
	return ValidAnswer(s) || s == AnswerSkip || s == AnswerFlagged
}
