package services

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"biketours-backend/config"
	"biketours-backend/models"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, role models.Role) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

func createTestGuide(t *testing.T, db *gorm.DB, username string) models.Guide {
	t.Helper()
	user := createTestUser(t, db, username, models.RoleGuide)
	guide := models.Guide{UserID: user.ID, Experience: 5}
	if err := db.Create(&guide).Error; err != nil {
		t.Fatalf("failed to create guide: %v", err)
	}
	return guide
}

func createTestTour(t *testing.T, db *gorm.DB, name string, duration int, price float64) models.Tour {
	t.Helper()
	tour := models.Tour{
		Name:     name,
		Duration: duration,
		Price:    price,
		Location: "Riverside",
		IsActive: true,
	}
	if err := db.Create(&tour).Error; err != nil {
		t.Fatalf("failed to create tour %s: %v", name, err)
	}
	return tour
}

func createTestLocation(t *testing.T, db *gorm.DB, name string) models.Location {
	t.Helper()
	loc := models.Location{Name: name, Address: "1 Main St"}
	if err := db.Create(&loc).Error; err != nil {
		t.Fatalf("failed to create location: %v", err)
	}
	return loc
}

func createTestBike(t *testing.T, db *gorm.DB, statusName string, hourly, daily float64) models.Bike {
	t.Helper()
	loc := createTestLocation(t, db, fmt.Sprintf("loc-%d", time.Now().UnixNano()))

	var status models.BikeStatus
	if err := db.Where("status_name = ?", statusName).First(&status).Error; err != nil {
		status = models.BikeStatus{StatusName: statusName}
		if err := db.Create(&status).Error; err != nil {
			t.Fatalf("failed to create bike status: %v", err)
		}
	}

	bike := models.Bike{
		Type:            models.BikeTypeStandard,
		StatusID:        status.ID,
		RentalPriceHour: hourly,
		RentalPriceDay:  daily,
		LocationID:      loc.ID,
	}
	if err := db.Create(&bike).Error; err != nil {
		t.Fatalf("failed to create bike: %v", err)
	}
	return bike
}

func createTestSlot(t *testing.T, db *gorm.DB, tourID, guideID uint, bikeID *uint, at time.Time) models.Slot {
	t.Helper()
	slot := models.Slot{TourID: tourID, GuideID: guideID, BikeID: bikeID, Datetime: at}
	if err := db.Create(&slot).Error; err != nil {
		t.Fatalf("failed to create slot: %v", err)
	}
	return slot
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return n
}
