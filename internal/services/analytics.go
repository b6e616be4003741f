package services

import (
	"fmt"

	"github.com/hafsatabk/jamb-master-cbt-arena/internal/models"

	"gorm.io/gorm"
)

// AnalyticsService answers read-only aggregate queries; it owns no
// state of its own.
type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

type Overview struct {
	TotalQuizzes      int     `json:"total_quizzes"`
	AveragePercentage float64 `json:"average_percentage"`
	HighestPercentage float64 `json:"highest_percentage"`
	TotalPoints       int     `json:"total_points"`
	PassRate          float64 `json:"pass_rate"`
	Streak            int     `json:"streak"`
	Rank              string  `json:"rank"`
	BadgeCount        int     `json:"badge_count"`
}

func (s *AnalyticsService) Overview(userID uint) (*Overview, error) {
	var out Overview
	err := s.db.Model(&models.QuizResult{}).
		Select(`COUNT(*) AS total_quizzes,
			COALESCE(AVG(percentage), 0) AS average_percentage,
			COALESCE(MAX(percentage), 0) AS highest_percentage,
			COALESCE(AVG(CASE WHEN status = 'pass' THEN 100.0 ELSE 0 END), 0) AS pass_rate`).
		Where("user_id = ?", userID).
		Scan(&out).Error
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}
	out.TotalPoints = user.Points
	out.Streak = user.Streak
	out.Rank = user.Rank

	var badges int64
	if err := s.db.Model(&models.UserBadge{}).Where("user_id = ?", userID).Count(&badges).Error; err != nil {
		return nil, err
	}
	out.BadgeCount = int(badges)

	return &out, nil
}

type SubjectAccuracy struct {
	SubjectID         uint    `json:"subject_id"`
	SubjectName       string  `json:"subject_name"`
	QuizzesTaken      int     `json:"quizzes_taken"`
	AveragePercentage float64 `json:"average_percentage"`
	BestPercentage    float64 `json:"best_percentage"`
	QuestionsAnswered int     `json:"questions_answered"`
	CorrectAnswers    int     `json:"correct_answers"`
}

func (s *AnalyticsService) BySubject(userID uint) ([]SubjectAccuracy, error) {
	var rows []SubjectAccuracy
	err := s.db.Model(&models.QuizResult{}).
		Select(`quiz_results.subject_id, subjects.name AS subject_name,
			COUNT(*) AS quizzes_taken,
			COALESCE(AVG(quiz_results.percentage), 0) AS average_percentage,
			COALESCE(MAX(quiz_results.percentage), 0) AS best_percentage,
			COALESCE(SUM(quiz_results.total_questions), 0) AS questions_answered,
			COALESCE(SUM(quiz_results.correct_answers), 0) AS correct_answers`).
		Joins("JOIN subjects ON subjects.id = quiz_results.subject_id").
		Where("quiz_results.user_id = ?", userID).
		Group("quiz_results.subject_id, subjects.name").
		Order("average_percentage DESC").
		Scan(&rows).Error
	return rows, err
}

type TrendPoint struct {
	Day               string  `json:"day"`
	QuizzesTaken      int     `json:"quizzes_taken"`
	AveragePercentage float64 `json:"average_percentage"`
	PointsEarned      int     `json:"points_earned"`
}

// Trend buckets the caller's results per day over the last `days` days.
func (s *AnalyticsService) Trend(userID uint, days int) ([]TrendPoint, error) {
	if days <= 0 || days > 365 {
		days = 30
	}

	var points []TrendPoint
	err := s.db.Model(&models.QuizResult{}).
		Select(`DATE(created_at) AS day,
			COUNT(*) AS quizzes_taken,
			COALESCE(AVG(percentage), 0) AS average_percentage,
			COALESCE(SUM(points_earned), 0) AS points_earned`).
		Where("user_id = ? AND created_at >= DATE('now', ?)", userID, fmt.Sprintf("-%d days", days)).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&points).Error
	return points, err
}
