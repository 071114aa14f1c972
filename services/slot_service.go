// services/slot_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"biketours-backend/models"
	"biketours-backend/utils"
)

type SlotService struct {
	DB *gorm.DB
}

func NewSlotService(db *gorm.DB) *SlotService {
	return &SlotService{DB: db}
}

// ListAvailable returns the free slots of a tour, earliest first.
func (s *SlotService) ListAvailable(tourID uint) ([]models.Slot, error) {
	var slots []models.Slot
	if err := s.DB.
		Preload("Guide.User").
		Preload("Bike").
		Where("tour_id = ? AND is_booked = ?", tourID, false).
		Order("datetime ASC").
		Find(&slots).Error; err != nil {
		return nil, fmt.Errorf("failed to list available slots: %w", err)
	}
	return slots, nil
}

func (s *SlotService) ListByTour(tourID uint) ([]models.Slot, error) {
	var slots []models.Slot
	if err := s.DB.
		Where("tour_id = ?", tourID).
		Order("datetime ASC").
		Find(&slots).Error; err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	return slots, nil
}

func isDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") || strings.Contains(lc, "constraint")
}

// Create adds a single slot. An existing (tour, guide, datetime) triple is
// reported as ErrSlotExists via the unique index.
func (s *SlotService) Create(slot *models.Slot) error {
	if err := s.DB.First(&models.Tour{}, slot.TourID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTourNotFound
		}
		return fmt.Errorf("failed to check tour: %w", err)
	}
	if err := s.DB.First(&models.Guide{}, slot.GuideID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGuideNotFound
		}
		return fmt.Errorf("failed to check guide: %w", err)
	}
	if err := s.DB.Create(slot).Error; err != nil {
		if isDuplicateEntry(err) {
			return ErrSlotExists
		}
		return fmt.Errorf("failed to create slot: %w", err)
	}
	return nil
}

// Update changes the guide, bike or datetime of an unbooked slot.
func (s *SlotService) Update(slotID uint, guideID uint, bikeID *uint, datetime time.Time) (*models.Slot, error) {
	var slot models.Slot
	if err := s.DB.First(&slot, slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to load slot: %w", err)
	}
	if slot.IsBooked {
		return nil, ErrSlotUnavailable
	}
	slot.GuideID = guideID
	slot.BikeID = bikeID
	slot.Datetime = datetime
	if err := s.DB.Save(&slot).Error; err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrSlotExists
		}
		return nil, fmt.Errorf("failed to update slot: %w", err)
	}
	return &slot, nil
}

func (s *SlotService) Delete(slotID uint) error {
	res := s.DB.Delete(&models.Slot{}, slotID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete slot: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrSlotNotFound
	}
	return nil
}

// CreateWeeklySlots creates up to one slot per day for `days` consecutive
// days starting today, all at the given guide and time of day. Days where an
// identical (tour, guide, datetime) slot already exists are skipped, so
// calling it twice with the same arguments creates nothing the second time.
// Returns the number of slots actually created.
func (s *SlotService) CreateWeeklySlots(tourID, guideID uint, timeOfDay string, days int) (int, error) {
	if days <= 0 {
		days = 7
	}
	hour, minute, err := utils.ParseTimeOfDay(timeOfDay)
	if err != nil {
		return 0, err
	}

	if err := s.DB.First(&models.Tour{}, tourID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrTourNotFound
		}
		return 0, fmt.Errorf("failed to check tour: %w", err)
	}
	if err := s.DB.First(&models.Guide{}, guideID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrGuideNotFound
		}
		return 0, fmt.Errorf("failed to check guide: %w", err)
	}

	created := 0
	today := utils.BeginningOfDay(time.Now())

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for i := 0; i < days; i++ {
			dt := utils.CombineDayTime(today.AddDate(0, 0, i), hour, minute)

			var count int64
			if err := tx.Model(&models.Slot{}).
				Where("tour_id = ? AND guide_id = ? AND datetime = ?", tourID, guideID, dt).
				Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check existing slot: %w", err)
			}
			if count > 0 {
				continue
			}

			slot := models.Slot{TourID: tourID, GuideID: guideID, Datetime: dt}
			if err := tx.Create(&slot).Error; err != nil {
				if isDuplicateEntry(err) {
					continue
				}
				return fmt.Errorf("failed to create slot for %s: %w", dt, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
