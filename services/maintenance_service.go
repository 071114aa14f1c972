// services/maintenance_service.go
package services

import (
	"log"
	"math/rand"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"biketours-backend/models"
)

// MaintenanceService runs the daily catalog housekeeping: undated tours get
// a future start time assigned, stale tours are deactivated.
type MaintenanceService struct {
	db *gorm.DB
}

func NewMaintenanceService(db *gorm.DB) *MaintenanceService {
	return &MaintenanceService{db: db}
}

func (s *MaintenanceService) StartScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@daily", s.RunDaily); err != nil {
		log.Printf("failed to schedule daily maintenance: %v", err)
		return c
	}

	c.Start()
	log.Println("Maintenance scheduler started")
	return c
}

func (s *MaintenanceService) RunDaily() {
	log.Println("Starting daily catalog maintenance...")
	updated := s.AssignTourStartTimes()
	deactivated := s.DeactivateStaleTours(30)
	log.Printf("Daily maintenance done: %d start times assigned, %d tours deactivated", updated, deactivated)
}

// AssignTourStartTimes gives every tour without a start time a random future
// departure within the next 30 days, between 09:00 and 18:00 on a quarter
// hour. Returns how many tours were updated.
func (s *MaintenanceService) AssignTourStartTimes() int {
	var tours []models.Tour
	if err := s.db.Where("start_time IS NULL").Find(&tours).Error; err != nil {
		log.Printf("failed to fetch undated tours: %v", err)
		return 0
	}

	now := time.Now()
	quarters := []int{0, 15, 30, 45}
	updated := 0
	for i := range tours {
		day := now.AddDate(0, 0, 1+rand.Intn(30))
		start := time.Date(day.Year(), day.Month(), day.Day(),
			9+rand.Intn(10), quarters[rand.Intn(len(quarters))], 0, 0, day.Location())

		if err := s.db.Model(&tours[i]).Update("start_time", start).Error; err != nil {
			log.Printf("failed to set start time for tour %d: %v", tours[i].ID, err)
			continue
		}
		updated++
	}
	return updated
}

// DeactivateStaleTours turns off tours created more than maxAgeDays ago.
func (s *MaintenanceService) DeactivateStaleTours(maxAgeDays int) int {
	cutoff := time.Now().AddDate(0, 0, -maxAgeDays)
	res := s.db.Model(&models.Tour{}).
		Where("created_at <= ? AND is_active = ?", cutoff, true).
		Update("is_active", false)
	if res.Error != nil {
		log.Printf("failed to deactivate stale tours: %v", res.Error)
		return 0
	}
	return int(res.RowsAffected)
}
