package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/hafsatabk/jamb-master-cbt-arena/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Subject{},
		&models.Question{},
		&models.QuizSession{},
		&models.QuizResponse{},
		&models.QuizResult{},
		&models.UserBadge{},
		&models.LeaderboardEntry{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createSubject(t *testing.T, db *gorm.DB, name string) *models.Subject {
	t.Helper()
	subject := models.Subject{Name: name, Description: name}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("create subject %q: %v", name, err)
	}
	return &subject
}

func createStudent(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		Email:        username + "@x.com",
		Username:     username,
		PasswordHash: "irrelevant",
		Role:         models.RoleStudent,
		Rank:         "Beginner",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return &user
}

func createQuestion(t *testing.T, db *gorm.DB, qs *QuestionService, subjectID uint, correct string) *models.Question {
	t.Helper()
	question, err := qs.CreateQuestion(QuestionInput{
		SubjectID:     subjectID,
		QuestionText:  "What is 2 + 2?",
		OptionA:       "3",
		OptionB:       "4",
		OptionC:       "5",
		OptionD:       "6",
		CorrectAnswer: correct,
	})
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	return question
}
