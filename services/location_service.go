// services/location_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"biketours-backend/models"
)

type LocationService struct {
	DB *gorm.DB
}

func NewLocationService(db *gorm.DB) *LocationService {
	return &LocationService{DB: db}
}

func (s *LocationService) List() ([]models.Location, error) {
	var locations []models.Location
	if err := s.DB.Order("name ASC").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

func (s *LocationService) Get(id uint) (*models.Location, error) {
	var loc models.Location
	if err := s.DB.First(&loc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to load location: %w", err)
	}
	return &loc, nil
}

func (s *LocationService) Create(loc *models.Location) error {
	if err := s.DB.Create(loc).Error; err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

func (s *LocationService) Update(id uint, apply func(*models.Location)) (*models.Location, error) {
	loc, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	apply(loc)
	if err := s.DB.Save(loc).Error; err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}
	return loc, nil
}

func (s *LocationService) Delete(id uint) error {
	res := s.DB.Delete(&models.Location{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete location: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrLocationNotFound
	}
	return nil
}
