package database

import (
	"fmt"
	"testing"

	"github.com/hafsatabk/jamb-master-cbt-arena/internal/models"

	"golang.org/x/crypto/bcrypt"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	AutoMigrate(db)
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	db := testDB(t)

	for i := 0; i < 2; i++ {
		if err := Seed(db); err != nil {
			t.Fatalf("seed run %d: %v", i+1, err)
		}
	}

	var subjects int64
	db.Model(&models.Subject{}).Count(&subjects)
	if subjects != 7 {
		t.Fatalf("expected 7 seeded subjects, got %d", subjects)
	}

	var admins int64
	db.Model(&models.User{}).Where("email = ?", AdminEmail).Count(&admins)
	if admins != 1 {
		t.Fatalf("expected exactly 1 admin account, got %d", admins)
	}
}

func TestSeedSubjectList(t *testing.T) {
	db := testDB(t)
	if err := Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	for _, name := range []string{"English", "Mathematics", "Physics", "Chemistry", "Biology", "Government", "Economics"} {
		var subject models.Subject
		if err := db.Where("name = ?", name).First(&subject).Error; err != nil {
			t.Errorf("subject %q missing after seed", name)
		}
	}
}

func TestSeedAdminPasswordIsHashed(t *testing.T) {
	db := testDB(t)
	if err := Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var admin models.User
	if err := db.Where("email = ?", AdminEmail).First(&admin).Error; err != nil {
		t.Fatalf("admin missing: %v", err)
	}
	if admin.Role != models.RoleAdmin {
		t.Fatalf("expected role admin, got %q", admin.Role)
	}
	if admin.PasswordHash == "admin@123" {
		t.Fatal("admin password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin@123")); err != nil {
		t.Fatalf("stored digest does not verify bootstrap password: %v", err)
	}
}

func TestSeedKeepsExistingAdminUntouched(t *testing.T) {
	db := testDB(t)
	if err := Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Simulate an operator rotating the bootstrap password.
	db.Model(&models.User{}).Where("email = ?", AdminEmail).Update("password_hash", "rotated")

	if err := Seed(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var admin models.User
	db.Where("email = ?", AdminEmail).First(&admin)
	if admin.PasswordHash != "rotated" {
		t.Fatalf("second seed overwrote rotated credential: %q", admin.PasswordHash)
	}
}
