package database

import (
	"log"

	"github.com/hafsatabk/jamb-master-cbt-arena/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Bootstrap credentials for the seed admin account. Operators are
// expected to rotate the password after the first deployment.
const (
	AdminEmail    = "admin@jamb.local"
	AdminUsername = "admin"
	adminPassword = "admin@123"
)

var defaultSubjects = []models.Subject{
	{Name: "English", Description: "English Language"},
	{Name: "Mathematics", Description: "Pure Mathematics"},
	{Name: "Physics", Description: "Physics"},
	{Name: "Chemistry", Description: "Chemistry"},
	{Name: "Biology", Description: "Biology"},
	{Name: "Government", Description: "Government/Civics"},
	{Name: "Economics", Description: "Economics"},
}

// Seed inserts the fixed subject list and the default admin account.
// Safe to call on every startup: inserts are conflict-ignoring, so a
// second run changes nothing. Each row is attempted independently; the
// first error is returned after all rows have been processed.
func Seed(db *gorm.DB) error {
	var firstErr error

	for _, subject := range defaultSubjects {
		s := subject
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&s).Error
		if err != nil {
			log.Printf("seed subject %q: %v", subject.Name, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if err := seedAdmin(db); err != nil {
		log.Printf("seed admin user: %v", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	if firstErr == nil {
		log.Println("database seeded")
	}
	return firstErr
}

func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).
		Where("email = ? OR username = ?", AdminEmail, AdminUsername).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:        AdminEmail,
		Username:     AdminUsername,
		PasswordHash: string(hash),
		FirstName:    "Admin",
		LastName:     "User",
		Role:         models.RoleAdmin,
		Rank:         "Beginner",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("default admin user created (%s)", AdminEmail)
	return nil
}
