// services/bike_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"biketours-backend/models"
)

type BikeService struct {
	DB *gorm.DB
}

func NewBikeService(db *gorm.DB) *BikeService {
	return &BikeService{DB: db}
}

type BikeFilter struct {
	Type       string
	StatusID   uint
	LocationID uint
}

func (s *BikeService) List(f BikeFilter) ([]models.Bike, error) {
	q := s.DB.Preload("Status").Preload("Location")
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.StatusID != 0 {
		q = q.Where("status_id = ?", f.StatusID)
	}
	if f.LocationID != 0 {
		q = q.Where("location_id = ?", f.LocationID)
	}
	var bikes []models.Bike
	if err := q.Order("id ASC").Find(&bikes).Error; err != nil {
		return nil, fmt.Errorf("failed to list bikes: %w", err)
	}
	return bikes, nil
}

func (s *BikeService) Get(bikeID uint) (*models.Bike, error) {
	var bike models.Bike
	if err := s.DB.Preload("Status").Preload("Location").First(&bike, bikeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBikeNotFound
		}
		return nil, fmt.Errorf("failed to load bike: %w", err)
	}
	return &bike, nil
}

func (s *BikeService) Create(bike *models.Bike) error {
	if err := s.DB.Create(bike).Error; err != nil {
		return fmt.Errorf("failed to create bike: %w", err)
	}
	return nil
}

func (s *BikeService) Update(bikeID uint, apply func(*models.Bike)) (*models.Bike, error) {
	bike, err := s.Get(bikeID)
	if err != nil {
		return nil, err
	}
	apply(bike)
	if err := s.DB.Save(bike).Error; err != nil {
		return nil, fmt.Errorf("failed to update bike: %w", err)
	}
	return bike, nil
}

func (s *BikeService) Delete(bikeID uint) error {
	res := s.DB.Delete(&models.Bike{}, bikeID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete bike: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBikeNotFound
	}
	return nil
}

// SetStatus moves a bike to the named status label.
func (s *BikeService) SetStatus(bikeID uint, statusName string) (*models.Bike, error) {
	var status models.BikeStatus
	if err := s.DB.Where("status_name = ?", statusName).First(&status).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("unknown bike status %q", statusName)
		}
		return nil, fmt.Errorf("failed to load bike status: %w", err)
	}
	return s.Update(bikeID, func(b *models.Bike) { b.StatusID = status.ID })
}

func (s *BikeService) Statuses() ([]models.BikeStatus, error) {
	var statuses []models.BikeStatus
	if err := s.DB.Order("id ASC").Find(&statuses).Error; err != nil {
		return nil, fmt.Errorf("failed to list bike statuses: %w", err)
	}
	return statuses, nil
}
