package services

import (
	"errors"
	"testing"

	"github.com/hafsatabk/jamb-master-cbt-arena/internal/models"
)

func TestCreateQuestionRequiresExistingSubject(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)

	_, err := svc.CreateQuestion(QuestionInput{
		SubjectID:    999,
		QuestionText: "orphan?",
		OptionA:      "a", OptionB: "b", OptionC: "c", OptionD: "d",
		CorrectAnswer: models.AnswerA,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	var count int64
	db.Model(&models.Question{}).Count(&count)
	if count != 0 {
		t.Fatalf("orphan question row created: %d", count)
	}
}

func TestCreateQuestionValidatesEnums(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)
	subject := createSubject(t, db, "Mathematics")

	base := QuestionInput{
		SubjectID:    subject.ID,
		QuestionText: "What is 2 + 2?",
		OptionA:      "3", OptionB: "4", OptionC: "5", OptionD: "6",
	}

	cases := []struct {
		name   string
		mutate func(*QuestionInput)
	}{
		{"correct answer E", func(q *QuestionInput) { q.CorrectAnswer = "E" }},
		{"correct answer lowercase", func(q *QuestionInput) { q.CorrectAnswer = "b" }},
		{"empty correct answer", func(q *QuestionInput) { q.CorrectAnswer = "" }},
		{"bad difficulty", func(q *QuestionInput) { q.CorrectAnswer = "B"; q.Difficulty = "impossible" }},
		{"missing option", func(q *QuestionInput) { q.CorrectAnswer = "B"; q.OptionC = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := base
			tc.mutate(&input)
			if _, err := svc.CreateQuestion(input); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestQuestionCountMaintained(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)
	subject := createSubject(t, db, "Physics")

	q1 := createQuestion(t, db, svc, subject.ID, models.AnswerB)
	createQuestion(t, db, svc, subject.ID, models.AnswerC)

	var got models.Subject
	db.First(&got, subject.ID)
	if got.QuestionCount != 2 {
		t.Fatalf("expected question_count 2, got %d", got.QuestionCount)
	}

	if err := svc.DeleteQuestion(q1.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	db.First(&got, subject.ID)
	if got.QuestionCount != 1 {
		t.Fatalf("expected question_count 1 after delete, got %d", got.QuestionCount)
	}
}

func TestListQuestionsFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(db)
	math := createSubject(t, db, "Mathematics")
	physics := createSubject(t, db, "Physics")

	if _, err := svc.CreateQuestion(QuestionInput{
		SubjectID: math.ID, QuestionText: "q1",
		OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d",
		CorrectAnswer: models.AnswerA, Difficulty: models.DifficultyEasy, Topic: "algebra",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateQuestion(QuestionInput{
		SubjectID: math.ID, QuestionText: "q2",
		OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d",
		CorrectAnswer: models.AnswerB, Difficulty: models.DifficultyHard, Topic: "geometry",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateQuestion(QuestionInput{
		SubjectID: physics.ID, QuestionText: "q3",
		OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d",
		CorrectAnswer: models.AnswerC,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	cases := []struct {
		name   string
		filter QuestionFilter
		want   int
	}{
		{"by subject", QuestionFilter{SubjectID: math.ID}, 2},
		{"by difficulty", QuestionFilter{SubjectID: math.ID, Difficulty: models.DifficultyEasy}, 1},
		{"by topic", QuestionFilter{Topic: "geometry"}, 1},
		{"with limit", QuestionFilter{Limit: 1}, 1},
		{"no filter", QuestionFilter{}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			questions, err := svc.ListQuestions(tc.filter)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(questions) != tc.want {
				t.Fatalf("expected %d questions, got %d", tc.want, len(questions))
			}
		})
	}

	if _, err := svc.ListQuestions(QuestionFilter{Difficulty: "nope"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for bad difficulty filter, got %v", err)
	}
}

func TestSanitizeStripsAnswers(t *testing.T) {
	questions := []models.Question{{CorrectAnswer: models.AnswerB, Explanation: "because"}}
	clean := Sanitize(questions)
	if clean[0].CorrectAnswer != "" || clean[0].Explanation != "" {
		t.Fatalf("answer leaked: %+v", clean[0])
	}
	if questions[0].CorrectAnswer != models.AnswerB {
		t.Fatal("sanitize mutated its input")
	}
}
