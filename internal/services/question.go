package services

import (
	"fmt"

	"github.com/hafsatabk/jamb-master-cbt-arena/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type QuestionFilter struct {
	SubjectID  uint
	Difficulty string
	Topic      string
	Limit      int
}

func (s *QuestionService) ListQuestions(filter QuestionFilter) ([]models.Question, error) {
	query := s.db.Model(&models.Question{})
	if filter.SubjectID != 0 {
		query = query.Where("subject_id = ?", filter.SubjectID)
	}
	if filter.Difficulty != "" {
		if !models.ValidDifficulty(filter.Difficulty) {
			return nil, fmt.Errorf("difficulty must be easy, medium or hard: %w", ErrValidation)
		}
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Topic != "" {
		query = query.Where("topic = ?", filter.Topic)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var questions []models.Question
	err := query.Order("id ASC").Find(&questions).Error
	return questions, err
}

func (s *QuestionService) GetQuestion(questionID uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		return nil, fmt.Errorf("question %w", ErrNotFound)
	}
	return &question, nil
}

type QuestionInput struct {
	SubjectID     uint
	QuestionText  string
	OptionA       string
	OptionB       string
	OptionC       string
	OptionD       string
	CorrectAnswer string
	Explanation   string
	Difficulty    string
	Topic         string
	ImageURL      string
}

func validateQuestionInput(input QuestionInput) error {
	if input.QuestionText == "" || input.OptionA == "" || input.OptionB == "" ||
		input.OptionC == "" || input.OptionD == "" {
		return fmt.Errorf("question text and all four options are required: %w", ErrValidation)
	}
	if !models.ValidAnswer(input.CorrectAnswer) {
		return fmt.Errorf("correct_answer must be A, B, C or D: %w", ErrValidation)
	}
	if input.Difficulty != "" && !models.ValidDifficulty(input.Difficulty) {
		return fmt.Errorf("difficulty must be easy, medium or hard: %w", ErrValidation)
	}
	return nil
}

func (s *QuestionService) CreateQuestion(input QuestionInput) (*models.Question, error) {
	if err := validateQuestionInput(input); err != nil {
		return nil, err
	}

	var subject models.Subject
	if err := s.db.First(&subject, input.SubjectID).Error; err != nil {
		return nil, fmt.Errorf("subject %w", ErrNotFound)
	}

	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}

	question := models.Question{
		SubjectID:     input.SubjectID,
		QuestionText:  input.QuestionText,
		OptionA:       input.OptionA,
		OptionB:       input.OptionB,
		OptionC:       input.OptionC,
		OptionD:       input.OptionD,
		CorrectAnswer: input.CorrectAnswer,
		Explanation:   input.Explanation,
		Difficulty:    difficulty,
		Topic:         input.Topic,
		ImageURL:      input.ImageURL,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		return tx.Model(&models.Subject{}).Where("id = ?", input.SubjectID).
			UpdateColumn("question_count", gorm.Expr("question_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *QuestionService) UpdateQuestion(questionID uint, input QuestionInput) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		return nil, fmt.Errorf("question %w", ErrNotFound)
	}

	if err := validateQuestionInput(input); err != nil {
		return nil, err
	}

	if input.SubjectID != 0 && input.SubjectID != question.SubjectID {
		return nil, fmt.Errorf("question cannot move between subjects: %w", ErrValidation)
	}

	question.QuestionText = input.QuestionText
	question.OptionA = input.OptionA
	question.OptionB = input.OptionB
	question.OptionC = input.OptionC
	question.OptionD = input.OptionD
	question.CorrectAnswer = input.CorrectAnswer
	question.Explanation = input.Explanation
	if input.Difficulty != "" {
		question.Difficulty = input.Difficulty
	}
	question.Topic = input.Topic
	question.ImageURL = input.ImageURL

	if err := s.db.Save(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *QuestionService) DeleteQuestion(questionID uint) error {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		return fmt.Errorf("question %w", ErrNotFound)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&question).Error; err != nil {
			return err
		}
		return tx.Model(&models.Subject{}).
			Where("id = ? AND question_count > 0", question.SubjectID).
			UpdateColumn("question_count", gorm.Expr("question_count - 1")).Error
	})
}

// Sanitize blanks the fields that would give the answer away before a
// question is shown to a quiz taker.
func Sanitize(questions []models.Question) []models.Question {
	out := make([]models.Question, len(questions))
	for i, q := range questions {
		q.CorrectAnswer = ""
		q.Explanation = ""
		out[i] = q
	}
	return out
}
