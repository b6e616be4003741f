package services

import (
	"fmt"

	"github.com/hafsatabk/jamb-master-cbt-arena/internal/models"

	"gorm.io/gorm"
)

type ResultService struct {
	db *gorm.DB
}

func NewResultService(db *gorm.DB) *ResultService {
	return &ResultService{db: db}
}

// ResultSummary is a result row joined with its subject name.
type ResultSummary struct {
	models.QuizResult
	SubjectName string `json:"subject_name"`
}

func (s *ResultService) ListResults(userID uint) ([]ResultSummary, error) {
	var results []ResultSummary
	err := s.db.Model(&models.QuizResult{}).
		Select("quiz_results.*, subjects.name AS subject_name").
		Joins("JOIN subjects ON subjects.id = quiz_results.subject_id").
		Where("quiz_results.user_id = ?", userID).
		Order("quiz_results.created_at DESC").
		Scan(&results).Error
	return results, err
}

// ResponseDetail is one item of the per-question breakdown.
type ResponseDetail struct {
	QuestionID    uint   `json:"question_id"`
	QuestionText  string `json:"question_text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
	UserAnswer    string `json:"user_answer"`
	IsCorrect     bool   `json:"is_correct"`
	TimeSpent     int    `json:"time_spent_seconds"`
	Flagged       bool   `json:"flagged"`
}

type ResultDetail struct {
	ResultSummary
	Responses []ResponseDetail `json:"responses"`
}

func (s *ResultService) GetResult(resultID, userID uint) (*ResultDetail, error) {
	var summary ResultSummary
	err := s.db.Model(&models.QuizResult{}).
		Select("quiz_results.*, subjects.name AS subject_name").
		Joins("JOIN subjects ON subjects.id = quiz_results.subject_id").
		Where("quiz_results.id = ?", resultID).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	if summary.ID == 0 {
		return nil, fmt.Errorf("result %w", ErrNotFound)
	}
	if summary.UserID != userID {
		return nil, fmt.Errorf("result belongs to another user: %w", ErrForbidden)
	}

	var responses []ResponseDetail
	err = s.db.Model(&models.QuizResponse{}).
		Select(`quiz_responses.question_id, questions.question_text,
			questions.option_a, questions.option_b, questions.option_c, questions.option_d,
			questions.correct_answer, questions.explanation,
			quiz_responses.user_answer, quiz_responses.is_correct,
			quiz_responses.time_spent_seconds AS time_spent, quiz_responses.flagged`).
		Joins("JOIN questions ON questions.id = quiz_responses.question_id").
		Where("quiz_responses.session_id = ?", summary.SessionID).
		Order("quiz_responses.id ASC").
		Scan(&responses).Error
	if err != nil {
		return nil, err
	}

	return &ResultDetail{ResultSummary: summary, Responses: responses}, nil
}

// Standing is a leaderboard row joined with the user's public identity.
type Standing struct {
	UserID       uint    `json:"user_id"`
	Username     string  `json:"username"`
	TotalQuizzes int     `json:"total_quizzes"`
	AverageScore float64 `json:"average_score"`
	HighestScore float64 `json:"highest_score"`
	TotalPoints  int     `json:"total_points"`
	RankLevel    string  `json:"rank_level"`
	Position     int     `json:"position"`
}

func (s *ResultService) Leaderboard(limit int) ([]Standing, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var standings []Standing
	err := s.db.Model(&models.LeaderboardEntry{}).
		Select(`leaderboard_data.user_id, users.username, leaderboard_data.total_quizzes,
			leaderboard_data.average_score, leaderboard_data.highest_score,
			leaderboard_data.total_points, leaderboard_data.rank_level`).
		Joins("JOIN users ON users.id = leaderboard_data.user_id").
		Order("leaderboard_data.total_points DESC, leaderboard_data.average_score DESC").
		Limit(limit).
		Scan(&standings).Error
	if err != nil {
		return nil, err
	}

	for i := range standings {
		standings[i].Position = i + 1
	}
	return standings, nil
}
