// services/guide_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"biketours-backend/models"
)

type GuideService struct {
	DB *gorm.DB
}

func NewGuideService(db *gorm.DB) *GuideService {
	return &GuideService{DB: db}
}

func (s *GuideService) List() ([]models.Guide, error) {
	var guides []models.Guide
	if err := s.DB.
		Preload("User").
		Order("rating DESC").
		Find(&guides).Error; err != nil {
		return nil, fmt.Errorf("failed to list guides: %w", err)
	}
	return guides, nil
}

func (s *GuideService) Get(guideID uint) (*models.Guide, error) {
	var guide models.Guide
	if err := s.DB.Preload("User").Preload("Tours").First(&guide, guideID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuideNotFound
		}
		return nil, fmt.Errorf("failed to load guide: %w", err)
	}
	return &guide, nil
}

// Create registers a guide profile for a user and flips the account role.
func (s *GuideService) Create(guide *models.Guide) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, guide.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("user %d not found", guide.UserID)
			}
			return fmt.Errorf("failed to check user: %w", err)
		}
		if err := tx.Create(guide).Error; err != nil {
			return fmt.Errorf("failed to create guide: %w", err)
		}
		if user.Role == models.RoleUser {
			if err := tx.Model(&user).Update("role", models.RoleGuide).Error; err != nil {
				return fmt.Errorf("failed to update user role: %w", err)
			}
		}
		return nil
	})
}

func (s *GuideService) Update(guideID uint, apply func(*models.Guide)) (*models.Guide, error) {
	guide, err := s.Get(guideID)
	if err != nil {
		return nil, err
	}
	apply(guide)
	if err := s.DB.Save(guide).Error; err != nil {
		return nil, fmt.Errorf("failed to update guide: %w", err)
	}
	return guide, nil
}

// AssignTour links a guide to a tour through the assignment entity.
// Re-assigning an existing pair is a no-op.
func (s *GuideService) AssignTour(guideID, tourID uint) error {
	if _, err := s.Get(guideID); err != nil {
		return err
	}
	if err := s.DB.First(&models.Tour{}, tourID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTourNotFound
		}
		return fmt.Errorf("failed to check tour: %w", err)
	}

	var count int64
	if err := s.DB.Model(&models.GuideTour{}).
		Where("guide_id = ? AND tour_id = ?", guideID, tourID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check assignment: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := s.DB.Create(&models.GuideTour{GuideID: guideID, TourID: tourID}).Error; err != nil {
		if isDuplicateEntry(err) {
			return nil
		}
		return fmt.Errorf("failed to assign guide to tour: %w", err)
	}
	return nil
}

func (s *GuideService) UnassignTour(guideID, tourID uint) error {
	res := s.DB.Where("guide_id = ? AND tour_id = ?", guideID, tourID).Delete(&models.GuideTour{})
	if res.Error != nil {
		return fmt.Errorf("failed to unassign guide: %w", res.Error)
	}
	return nil
}
