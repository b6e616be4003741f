package database

import (
	"fmt"
	"log"

	"github.com/hafsatabk/jamb-master-cbt-arena/internal/config"
	"github.com/hafsatabk/jamb-master-cbt-arena/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)", cfg.DBPath)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
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
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	log.Println("database migrated")
}
