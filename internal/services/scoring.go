package services

import (
	"math"

	"github.com/hafsatabk/jamb-master-cbt-arena/internal/models"
)

const passMark = 50.0

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// Grade summarizes one finished session.
type Grade struct {
	Score        float64
	Percentage   float64
	Status       string
	Badge        string
	PointsEarned int
}

func (s *ScoringService) GradeSession(correct, total int) Grade {
	if total <= 0 {
		return Grade{Status: models.ResultFail}
	}

	percentage := math.Round(float64(correct)/float64(total)*1000) / 10

	status := models.ResultFail
	if percentage >= passMark {
		status = models.ResultPass
	}

	points := correct * 10
	if percentage == 100 {
		points += 50
	}

	return Grade{
		Score:        float64(correct),
		Percentage:   percentage,
		Status:       status,
		Badge:        s.BadgeFor(percentage),
		PointsEarned: points,
	}
}

func (s *ScoringService) BadgeFor(percentage float64) string {
	switch {
	case percentage == 100:
		return "Perfect Score"
	case percentage >= 90:
		return "Excellent"
	case percentage >= 75:
		return "Distinction"
	case percentage >= passMark:
		return "Achiever"
	}
	return ""
}

// RankFor maps cumulative points to a rank label.
func (s *ScoringService) RankFor(totalPoints int) string {
	switch {
	case totalPoints >= 5000:
		return "Master"
	case totalPoints >= 1500:
		return "Expert"
	case totalPoints >= 500:
		return "Advanced"
	case totalPoints >= 100:
		return "Intermediate"
	}
	return "Beginner"
}
