// services/review_service.go
package services

import (
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"biketours-backend/models"
)

// highlyRatedThreshold: tours at or above this average count as highly rated.
const highlyRatedThreshold = 4.5

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

func (s *ReviewService) Create(userID, tourID uint, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if err := s.DB.First(&models.Tour{}, tourID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, fmt.Errorf("failed to check tour: %w", err)
	}
	review := models.Review{UserID: userID, TourID: tourID, Rating: rating, Comment: comment}
	if err := s.DB.Create(&review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &review, nil
}

// ListByTour returns a tour's reviews, newest first.
func (s *ReviewService) ListByTour(tourID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.DB.
		Preload("User").
		Where("tour_id = ?", tourID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// AverageRating returns the mean rating of a tour, or nil when the tour has
// no reviews. Callers must treat nil as "no rating", not zero.
func (s *ReviewService) AverageRating(tourID uint) (*float64, error) {
	var avg sql.NullFloat64
	if err := s.DB.Model(&models.Review{}).
		Where("tour_id = ?", tourID).
		Select("AVG(rating)").
		Scan(&avg).Error; err != nil {
		return nil, fmt.Errorf("failed to compute average rating: %w", err)
	}
	if !avg.Valid {
		return nil, nil
	}
	v := avg.Float64
	return &v, nil
}

// IsHighlyRated reports whether the tour's average rating reaches the
// threshold. A tour with no reviews is never highly rated.
func (s *ReviewService) IsHighlyRated(tourID uint) (bool, error) {
	avg, err := s.AverageRating(tourID)
	if err != nil {
		return false, err
	}
	return avg != nil && *avg >= highlyRatedThreshold, nil
}
