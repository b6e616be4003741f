package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hafsatabk/jamb-master-cbt-arena/internal/middleware"
	"github.com/hafsatabk/jamb-master-cbt-arena/internal/models"
	"github.com/hafsatabk/jamb-master-cbt-arena/internal/policy"
	"github.com/hafsatabk/jamb-master-cbt-arena/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{}, &models.Subject{}, &models.Question{},
		&models.QuizSession{}, &models.QuizResponse{}, &models.QuizResult{},
		&models.UserBadge{}, &models.LeaderboardEntry{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	authService := services.NewAuthService(db, "test-secret")
	authHandler := NewAuthHandler(authService)
	subjectHandler := NewSubjectHandler(services.NewSubjectService(db))
	questionHandler := NewQuestionHandler(services.NewQuestionService(db))

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", middleware.JWTAuth(authService), authHandler.Me)
	api.GET("/subjects", subjectHandler.ListSubjects)

	questions := api.Group("/questions")
	questions.Use(middleware.JWTAuth(authService))
	questions.GET("", middleware.Authorize(policy.ViewQuestions), questionHandler.ListQuestions)
	questions.POST("", middleware.Authorize(policy.ManageQuestions), questionHandler.CreateQuestion)

	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "alice@x.com",
		"username": "alice",
		"password": "password123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" || resp.User.Role != models.RoleStudent {
		t.Fatalf("unexpected response: %+v", resp)
	}

	// Same email again conflicts.
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "alice@x.com",
		"username": "alice2",
		"password": "password123",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing email", gin.H{"username": "alice", "password": "password123"}},
		{"bad email", gin.H{"email": "nope", "username": "alice", "password": "password123"}},
		{"short password", gin.H{"email": "alice@x.com", "username": "alice", "password": "123"}},
		{"short username", gin.H{"email": "alice@x.com", "username": "al", "password": "password123"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestLoginAndMe(t *testing.T) {
	r, _ := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "alice@x.com", "username": "alice", "password": "password123",
	})

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "alice@x.com", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "alice@x.com", "password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", resp.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /me, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", "garbage", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", w.Code)
	}
}

func TestQuestionRoutesEnforcePolicy(t *testing.T) {
	r, db := newTestRouter(t)

	db.Create(&models.Subject{Name: "Mathematics", Description: "Pure Mathematics"})

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "alice@x.com", "username": "alice", "password": "password123",
	})
	var student AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &student); err != nil {
		t.Fatalf("decode: %v", err)
	}

	body := gin.H{
		"subject_id": 1, "question_text": "What is 2 + 2?",
		"option_a": "3", "option_b": "4", "option_c": "5", "option_d": "6",
		"correct_answer": "B",
	}

	// A student may not create questions.
	w = doJSON(t, r, http.MethodPost, "/api/questions", student.Token, body)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for student create, got %d", w.Code)
	}

	// Promote to admin and retry.
	db.Model(&models.User{}).Where("username = ?", "alice").Update("role", models.RoleAdmin)
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "alice@x.com", "password": "password123",
	})
	var admin AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &admin); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = doJSON(t, r, http.MethodPost, "/api/questions", admin.Token, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// Students see questions with the answers stripped.
	w = doJSON(t, r, http.MethodGet, "/api/questions", student.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var listed []models.Question
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 || listed[0].CorrectAnswer != "" {
		t.Fatalf("answer leaked to student: %+v", listed)
	}

	// Admins see the full rows.
	w = doJSON(t, r, http.MethodGet, "/api/questions", admin.Token, nil)
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 || listed[0].CorrectAnswer != "B" {
		t.Fatalf("admin should see the answer: %+v", listed)
	}

	// Unauthenticated access is rejected outright.
	w = doJSON(t, r, http.MethodGet, "/api/questions", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}
