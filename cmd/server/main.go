package main

import (
	"log"
	"net/http"
	"time"

	"github.com/hafsatabk/jamb-master-cbt-arena/internal/config"
	"github.com/hafsatabk/jamb-master-cbt-arena/internal/database"
	"github.com/hafsatabk/jamb-master-cbt-arena/internal/handlers"
	"github.com/hafsatabk/jamb-master-cbt-arena/internal/middleware"
	"github.com/hafsatabk/jamb-master-cbt-arena/internal/policy"
	"github.com/hafsatabk/jamb-master-cbt-arena/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Question payloads may carry inline images.
const maxBodyBytes = 50 << 20

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	if err := database.Seed(db); err != nil {
		log.Printf("seed incomplete: %v", err)
	}

	authService := services.NewAuthService(db, cfg.JWTSecret)
	subjectService := services.NewSubjectService(db)
	questionService := services.NewQuestionService(db)
	scoringService := services.NewScoringService()
	quizService := services.NewQuizService(db, scoringService)
	resultService := services.NewResultService(db)
	analyticsService := services.NewAnalyticsService(db)
	userService := services.NewUserService(db)

	authHandler := handlers.NewAuthHandler(authService)
	subjectHandler := handlers.NewSubjectHandler(subjectService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	quizHandler := handlers.NewQuizHandler(quizService)
	resultHandler := handlers.NewResultHandler(resultService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	adminHandler := handlers.NewAdminHandler(userService, subjectService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))
	r.Use(func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
		c.Next()
	})

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "OK", "timestamp": time.Now()})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.JWTAuth(authService), authHandler.Me)
		}

		subjects := api.Group("/subjects")
		{
			subjects.GET("", subjectHandler.ListSubjects)
			subjects.GET("/:id", subjectHandler.GetSubject)
		}

		questions := api.Group("/questions")
		questions.Use(middleware.JWTAuth(authService))
		{
			questions.GET("", middleware.Authorize(policy.ViewQuestions), questionHandler.ListQuestions)
			questions.POST("", middleware.Authorize(policy.ManageQuestions), questionHandler.CreateQuestion)
			questions.PUT("/:id", middleware.Authorize(policy.ManageQuestions), questionHandler.UpdateQuestion)
			questions.DELETE("/:id", middleware.Authorize(policy.ManageQuestions), questionHandler.DeleteQuestion)
		}

		quizzes := api.Group("/quizzes")
		quizzes.Use(middleware.JWTAuth(authService), middleware.Authorize(policy.TakeQuiz))
		{
			quizzes.POST("/start", quizHandler.StartQuiz)
			quizzes.GET("/:id", quizHandler.GetSession)
			quizzes.POST("/:id/responses", quizHandler.RecordResponse)
			quizzes.POST("/:id/submit", quizHandler.SubmitQuiz)
			quizzes.POST("/:id/abandon", quizHandler.AbandonQuiz)
		}

		results := api.Group("/results")
		results.Use(middleware.JWTAuth(authService))
		{
			results.GET("", resultHandler.ListResults)
			results.GET("/leaderboard", resultHandler.Leaderboard)
			results.GET("/:id", resultHandler.GetResult)
		}

		analytics := api.Group("/analytics")
		analytics.Use(middleware.JWTAuth(authService), middleware.Authorize(policy.ViewAnalytics))
		{
			analytics.GET("/overview", analyticsHandler.Overview)
			analytics.GET("/subjects", analyticsHandler.BySubject)
			analytics.GET("/trend", analyticsHandler.Trend)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.JWTAuth(authService))
		{
			users := admin.Group("/users")
			users.Use(middleware.Authorize(policy.ManageUsers))
			{
				users.GET("", adminHandler.ListUsers)
				users.PUT("/:id/role", adminHandler.UpdateUserRole)
				users.DELETE("/:id", adminHandler.DeleteUser)
			}

			adminSubjects := admin.Group("/subjects")
			adminSubjects.Use(middleware.Authorize(policy.ManageSubjects))
			{
				adminSubjects.POST("", adminHandler.CreateSubject)
				adminSubjects.PUT("/:id", adminHandler.UpdateSubject)
				adminSubjects.DELETE("/:id", adminHandler.DeleteSubject)
			}

			admin.GET("/questions/stats", middleware.Authorize(policy.ManageQuestions), adminHandler.QuestionStats)
		}
	}

	log.Printf("JAMB Master CBT Arena server running on :%s", cfg.ServerPort)
	if err := r.Run("0.0.0.0:" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
