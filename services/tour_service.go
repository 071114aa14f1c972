// services/tour_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"biketours-backend/models"
)

type TourService struct {
	DB *gorm.DB
}

func NewTourService(db *gorm.DB) *TourService {
	return &TourService{DB: db}
}

// TourFilter is the set of catalog query options. Independent filters compose
// with AND; OR exists only inside a single filter's alternatives (the text
// search matches name OR description).
type TourFilter struct {
	Search         string
	Location       string
	NameStartsWith string
	MinPrice       *float64
	MaxPrice       *float64
	Durations      []int
	CreatedAfter   *time.Time
	CreatedBefore  *time.Time
	ActiveOnly     bool
	HasGuide       *bool
	HasReviews     *bool
	ExcludeLocation string

	Page     int
	PageSize int
}

const defaultPageSize = 9

func (f TourFilter) limits() (limit, offset int) {
	limit = f.PageSize
	if limit <= 0 || limit > 100 {
		limit = defaultPageSize
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}
	return limit, (page - 1) * limit
}

func (s *TourService) buildListQuery(f TourFilter) *gorm.DB {
	q := s.DB.Model(&models.Tour{})

	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("tours.name LIKE ? OR tours.description LIKE ?", like, like)
	}
	if f.Location != "" {
		q = q.Where("tours.location LIKE ?", "%"+f.Location+"%")
	}
	if f.NameStartsWith != "" {
		q = q.Where("tours.name LIKE ?", f.NameStartsWith+"%")
	}
	if f.ExcludeLocation != "" {
		q = q.Where("tours.location NOT LIKE ?", "%"+f.ExcludeLocation+"%")
	}
	if f.MinPrice != nil {
		q = q.Where("tours.price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("tours.price <= ?", *f.MaxPrice)
	}
	if len(f.Durations) > 0 {
		q = q.Where("tours.duration IN ?", f.Durations)
	}
	if f.CreatedAfter != nil {
		q = q.Where("tours.created_at >= ?", *f.CreatedAfter)
	}
	if f.CreatedBefore != nil {
		q = q.Where("tours.created_at <= ?", *f.CreatedBefore)
	}
	if f.ActiveOnly {
		q = q.Where("tours.is_active = ?", true)
	}
	if f.HasGuide != nil {
		sub := s.DB.Model(&models.GuideTour{}).
			Select("1").
			Where("guide_tours.tour_id = tours.id")
		if *f.HasGuide {
			q = q.Where("EXISTS (?)", sub)
		} else {
			q = q.Where("NOT EXISTS (?)", sub)
		}
	}
	if f.HasReviews != nil {
		sub := s.DB.Model(&models.Review{}).
			Select("1").
			Where("reviews.tour_id = tours.id")
		if *f.HasReviews {
			q = q.Where("EXISTS (?)", sub)
		} else {
			q = q.Where("NOT EXISTS (?)", sub)
		}
	}
	return q
}

// List returns the filtered catalog page plus the total number of matches.
// Results are distinct by tour id and ordered newest first.
func (s *TourService) List(f TourFilter) ([]models.Tour, int64, error) {
	var total int64
	if err := s.buildListQuery(f).Distinct("tours.id").Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tours: %w", err)
	}

	limit, offset := f.limits()
	var tours []models.Tour
	if err := s.buildListQuery(f).
		Distinct().
		Order("tours.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&tours).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tours: %w", err)
	}
	return tours, total, nil
}

func (s *TourService) Get(tourID uint) (*models.Tour, error) {
	var tour models.Tour
	if err := s.DB.Preload("Guides.User").First(&tour, tourID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, fmt.Errorf("failed to load tour: %w", err)
	}
	return &tour, nil
}

func (s *TourService) Create(tour *models.Tour) error {
	if err := s.DB.Create(tour).Error; err != nil {
		if errors.Is(err, models.ErrInvalidTourDuration) {
			return err
		}
		return fmt.Errorf("failed to create tour: %w", err)
	}
	return nil
}

func (s *TourService) Update(tourID uint, apply func(*models.Tour)) (*models.Tour, error) {
	var tour models.Tour
	if err := s.DB.First(&tour, tourID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, fmt.Errorf("failed to load tour: %w", err)
	}
	apply(&tour)
	if err := s.DB.Save(&tour).Error; err != nil {
		if errors.Is(err, models.ErrInvalidTourDuration) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update tour: %w", err)
	}
	return &tour, nil
}

func (s *TourService) Delete(tourID uint) error {
	res := s.DB.Delete(&models.Tour{}, tourID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete tour: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrTourNotFound
	}
	return nil
}

// Similar finds tours with the same duration or an overlapping location
// label, excluding the tour itself.
func (s *TourService) Similar(tour *models.Tour, count int) ([]models.Tour, error) {
	if count <= 0 {
		count = 4
	}
	var tours []models.Tour
	if err := s.DB.
		Where("id <> ?", tour.ID).
		Where("duration = ? OR location LIKE ?", tour.Duration, "%"+tour.Location+"%").
		Limit(count).
		Find(&tours).Error; err != nil {
		return nil, fmt.Errorf("failed to find similar tours: %w", err)
	}
	return tours, nil
}
