package services

import (
	"fmt"
	"time"

	"github.com/hafsatabk/jamb-master-cbt-arena/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuizService struct {
	db      *gorm.DB
	scoring *ScoringService
}

func NewQuizService(db *gorm.DB, scoring *ScoringService) *QuizService {
	return &QuizService{db: db, scoring: scoring}
}

// StartedQuiz is what a client needs to run an attempt: the session and
// the drawn questions with answers stripped.
type StartedQuiz struct {
	Session   models.QuizSession `json:"session"`
	Questions []models.Question  `json:"questions"`
}

func (s *QuizService) StartQuiz(userID, subjectID uint, totalQuestions, durationSeconds int) (*StartedQuiz, error) {
	if totalQuestions <= 0 {
		return nil, fmt.Errorf("total_questions must be positive: %w", ErrValidation)
	}
	if durationSeconds <= 0 {
		return nil, fmt.Errorf("duration_seconds must be positive: %w", ErrValidation)
	}

	var subject models.Subject
	if err := s.db.First(&subject, subjectID).Error; err != nil {
		return nil, fmt.Errorf("subject %w", ErrNotFound)
	}

	var available int64
	if err := s.db.Model(&models.Question{}).Where("subject_id = ?", subjectID).Count(&available).Error; err != nil {
		return nil, err
	}
	if int64(totalQuestions) > available {
		return nil, fmt.Errorf("only %d questions available for %s: %w", available, subject.Name, ErrValidation)
	}

	session := models.QuizSession{
		UserID:          userID,
		SubjectID:       subjectID,
		TotalQuestions:  totalQuestions,
		DurationSeconds: durationSeconds,
		StartTime:       time.Now(),
		Status:          models.SessionActive,
	}

	var questions []models.Question
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return err
		}

		if err := tx.Where("subject_id = ?", subjectID).
			Order("RANDOM()").Limit(totalQuestions).
			Find(&questions).Error; err != nil {
			return err
		}

		// One SKIP row per drawn question pins the set: responses and
		// grading never see a question beyond these rows.
		placeholders := make([]models.QuizResponse, 0, len(questions))
		for _, q := range questions {
			placeholders = append(placeholders, models.QuizResponse{
				SessionID:  session.ID,
				QuestionID: q.ID,
				UserAnswer: models.AnswerSkip,
			})
		}
		return tx.Create(&placeholders).Error
	})
	if err != nil {
		return nil, err
	}

	return &StartedQuiz{Session: session, Questions: Sanitize(questions)}, nil
}

func (s *QuizService) activeSession(sessionID, userID uint) (*models.QuizSession, error) {
	var session models.QuizSession
	if err := s.db.First(&session, sessionID).Error; err != nil {
		return nil, fmt.Errorf("session %w", ErrNotFound)
	}
	if session.UserID != userID {
		return nil, fmt.Errorf("session belongs to another user: %w", ErrForbidden)
	}
	if session.Status != models.SessionActive {
		return nil, fmt.Errorf("session is %s, not active: %w", session.Status, ErrValidation)
	}
	return &session, nil
}

type ResponseInput struct {
	QuestionID       uint
	UserAnswer       string
	TimeSpentSeconds int
	Flagged          bool
}

// RecordResponse stores one answered, skipped or flagged item. Only
// questions drawn for the session are accepted; an item answered twice
// before submission keeps the latest answer.
func (s *QuizService) RecordResponse(sessionID, userID uint, input ResponseInput) (*models.QuizResponse, error) {
	_, err := s.activeSession(sessionID, userID)
	if err != nil {
		return nil, err
	}

	if !models.ValidResponse(input.UserAnswer) {
		return nil, fmt.Errorf("answer must be A, B, C, D, SKIP or FLAGGED: %w", ErrValidation)
	}

	var question models.Question
	if err := s.db.First(&question, input.QuestionID).Error; err != nil {
		return nil, fmt.Errorf("question %w", ErrNotFound)
	}

	var response models.QuizResponse
	if err := s.db.Where("session_id = ? AND question_id = ?", sessionID, input.QuestionID).
		First(&response).Error; err != nil {
		return nil, fmt.Errorf("question is not part of this quiz: %w", ErrValidation)
	}

	response.UserAnswer = input.UserAnswer
	response.IsCorrect = input.UserAnswer == question.CorrectAnswer
	response.TimeSpentSeconds = input.TimeSpentSeconds
	response.Flagged = input.Flagged || input.UserAnswer == models.AnswerFlagged

	err = s.db.Model(&response).Updates(map[string]interface{}{
		"user_answer":        response.UserAnswer,
		"is_correct":         response.IsCorrect,
		"time_spent_seconds": response.TimeSpentSeconds,
		"flagged":            response.Flagged,
	}).Error
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// SubmitQuiz closes an active session and finalizes it: grade, result
// row, leaderboard upsert, badge and user progress all commit in one
// transaction or not at all.
func (s *QuizService) SubmitQuiz(sessionID, userID uint) (*models.QuizResult, error) {
	session, err := s.activeSession(sessionID, userID)
	if err != nil {
		return nil, err
	}

	var existing int64
	if err := s.db.Model(&models.QuizResult{}).Where("session_id = ?", sessionID).Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, fmt.Errorf("session result %w", ErrConflict)
	}

	var correct int64
	if err := s.db.Model(&models.QuizResponse{}).
		Where("session_id = ? AND is_correct = ?", sessionID, true).
		Count(&correct).Error; err != nil {
		return nil, err
	}

	grade := s.scoring.GradeSession(int(correct), session.TotalQuestions)
	now := time.Now()
	timeTaken := int(now.Sub(session.StartTime).Seconds())

	result := models.QuizResult{
		SessionID:        sessionID,
		UserID:           userID,
		SubjectID:        session.SubjectID,
		TotalQuestions:   session.TotalQuestions,
		CorrectAnswers:   int(correct),
		Score:            grade.Score,
		Percentage:       grade.Percentage,
		Status:           grade.Status,
		TimeTakenSeconds: timeTaken,
		Badge:            grade.Badge,
		PointsEarned:     grade.PointsEarned,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.QuizSession{}).
			Where("id = ? AND status = ?", sessionID, models.SessionActive).
			Updates(map[string]interface{}{"status": models.SessionCompleted, "end_time": now}).Error; err != nil {
			return err
		}

		if err := tx.Create(&result).Error; err != nil {
			return err
		}

		if grade.Badge != "" {
			badge := models.UserBadge{
				UserID:          userID,
				BadgeName:       grade.Badge,
				ScorePercentage: int(grade.Percentage),
				EarnedAt:        now,
			}
			if err := tx.Create(&badge).Error; err != nil {
				return err
			}
		}

		if err := s.updateUserProgress(tx, userID, grade.PointsEarned, now); err != nil {
			return err
		}

		return s.refreshLeaderboard(tx, userID, now)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// AbandonQuiz closes an active session without grading it.
func (s *QuizService) AbandonQuiz(sessionID, userID uint) (*models.QuizSession, error) {
	session, err := s.activeSession(sessionID, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.db.Model(session).
		Updates(map[string]interface{}{"status": models.SessionAbandoned, "end_time": now}).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// SessionState is an in-flight attempt with the responses so far.
type SessionState struct {
	Session   models.QuizSession    `json:"session"`
	Responses []models.QuizResponse `json:"responses"`
}

func (s *QuizService) GetSession(sessionID, userID uint) (*SessionState, error) {
	var session models.QuizSession
	if err := s.db.First(&session, sessionID).Error; err != nil {
		return nil, fmt.Errorf("session %w", ErrNotFound)
	}
	if session.UserID != userID {
		return nil, fmt.Errorf("session belongs to another user: %w", ErrForbidden)
	}

	var responses []models.QuizResponse
	if err := s.db.Where("session_id = ?", sessionID).Order("id ASC").Find(&responses).Error; err != nil {
		return nil, err
	}
	return &SessionState{Session: session, Responses: responses}, nil
}

func (s *QuizService) updateUserProgress(tx *gorm.DB, userID uint, pointsEarned int, now time.Time) error {
	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		return err
	}

	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	switch user.LastQuizDate {
	case today:
		// streak already counted for today
	case yesterday:
		user.Streak++
	default:
		user.Streak = 1
	}

	user.Points += pointsEarned
	user.Rank = s.scoring.RankFor(user.Points)
	user.LastQuizDate = today

	return tx.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"points":         user.Points,
		"rank":           user.Rank,
		"streak":         user.Streak,
		"last_quiz_date": user.LastQuizDate,
	}).Error
}

func (s *QuizService) refreshLeaderboard(tx *gorm.DB, userID uint, now time.Time) error {
	var agg struct {
		TotalQuizzes int
		AverageScore float64
		HighestScore float64
	}
	err := tx.Model(&models.QuizResult{}).
		Select("COUNT(*) AS total_quizzes, COALESCE(AVG(percentage), 0) AS average_score, COALESCE(MAX(percentage), 0) AS highest_score").
		Where("user_id = ?", userID).
		Scan(&agg).Error
	if err != nil {
		return err
	}

	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		return err
	}

	entry := models.LeaderboardEntry{
		UserID:       userID,
		TotalQuizzes: agg.TotalQuizzes,
		AverageScore: agg.AverageScore,
		HighestScore: agg.HighestScore,
		TotalPoints:  user.Points,
		RankLevel:    user.Rank,
		UpdatedAt:    now,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_quizzes", "average_score", "highest_score", "total_points", "rank_level", "updated_at",
		}),
	}).Create(&entry).Error
}
