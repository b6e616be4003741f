package models

import "time"

type Question struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SubjectID     uint      `gorm:"not null;index" json:"subject_id"`
	Subject       Subject   `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"-"`
	QuestionText  string    `gorm:"type:text;not null" json:"question_text"`
	OptionA       string    `gorm:"size:500;not null" json:"option_a"`
	OptionB       string    `gorm:"size:500;not null" json:"option_b"`
	OptionC       string    `gorm:"size:500;not null" json:"option_c"`
	OptionD       string    `gorm:"size:500;not null" json:"option_d"`
	CorrectAnswer string    `gorm:"size:1;not null;check:correct_answer IN ('A','B','C','D')" json:"correct_answer,omitempty"`
	Explanation   string    `gorm:"type:text" json:"explanation,omitempty"`
	Difficulty    string    `gorm:"size:10;not null;default:'medium';check:difficulty IN ('easy','medium','hard')" json:"difficulty"`
	Topic         string    `gorm:"size:100" json:"topic,omitempty"`
	ImageURL      string    `gorm:"size:500" json:"image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

const (
	AnswerA = "A"
	AnswerB = "B"
	AnswerC = "C"
	AnswerD = "D"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// ValidAnswer reports whether s is one of the four option letters.
func ValidAnswer(s string) bool {
	switch s {
	case AnswerA, AnswerB, AnswerC, AnswerD:
		return true
	}
	return false
}

// ValidDifficulty reports whether s is a known difficulty level.
func ValidDifficulty(s string) bool {
	switch s {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}
