// services/rental_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"biketours-backend/models"
)

// RentalService is the manual rental path: unlike the reservation engine it
// prices from the bike's own rate table through the calculator.
type RentalService struct {
	DB *gorm.DB
}

func NewRentalService(db *gorm.DB) *RentalService {
	return &RentalService{DB: db}
}

type RentalFilter struct {
	UserID      uint // scope: 0 means unrestricted (manager view)
	UserSearch  string
	BikeSearch  string
	Page        int
	PageSize    int
}

// Create rents a bike for an interval. The bike must carry the Available
// status; the price comes from RentalPriceForInterval.
func (s *RentalService) Create(userID, bikeID uint, start, end time.Time) (*models.Rental, error) {
	var bike models.Bike
	if err := s.DB.Preload("Status").First(&bike, bikeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBikeNotFound
		}
		return nil, fmt.Errorf("failed to load bike: %w", err)
	}
	if bike.Status.StatusName != models.BikeStatusAvailable {
		return nil, ErrBikeUnavailable
	}

	price, err := RentalPriceForInterval(bike, start, end)
	if err != nil {
		return nil, err
	}

	rental := models.Rental{
		UserID:     userID,
		BikeID:     &bike.ID,
		StartTime:  start,
		EndTime:    end,
		TotalPrice: price,
	}
	if err := s.DB.Create(&rental).Error; err != nil {
		return nil, fmt.Errorf("failed to create rental: %w", err)
	}
	return &rental, nil
}

func (s *RentalService) buildListQuery(f RentalFilter) *gorm.DB {
	q := s.DB.Model(&models.Rental{}).
		Joins("LEFT JOIN users ON users.id = rentals.user_id").
		Joins("LEFT JOIN bikes ON bikes.id = rentals.bike_id").
		Joins("LEFT JOIN locations ON locations.id = bikes.location_id")

	if f.UserID != 0 {
		q = q.Where("rentals.user_id = ?", f.UserID)
	}
	if f.UserSearch != "" {
		q = q.Where("users.username LIKE ?", "%"+f.UserSearch+"%")
	}
	if f.BikeSearch != "" {
		like := "%" + f.BikeSearch + "%"
		q = q.Where("bikes.type LIKE ? OR locations.name LIKE ?", like, like)
	}
	return q
}

// List pages through rentals. Non-manager callers pass their own UserID so
// they only ever see their own records.
func (s *RentalService) List(f RentalFilter) ([]models.Rental, int64, error) {
	var total int64
	if err := s.buildListQuery(f).Distinct("rentals.id").Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count rentals: %w", err)
	}

	limit := f.PageSize
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}

	var rentals []models.Rental
	if err := s.buildListQuery(f).
		Distinct().
		Preload("User").
		Preload("Bike.Location").
		Order("rentals.start_time DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&rentals).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list rentals: %w", err)
	}
	return rentals, total, nil
}

func (s *RentalService) Get(rentalID uint) (*models.Rental, error) {
	var rental models.Rental
	if err := s.DB.Preload("Bike").First(&rental, rentalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRentalNotFound
		}
		return nil, fmt.Errorf("failed to load rental: %w", err)
	}
	return &rental, nil
}

// Update reprices the rental from the (possibly new) bike and interval.
func (s *RentalService) Update(rentalID uint, bikeID uint, start, end time.Time) (*models.Rental, error) {
	rental, err := s.Get(rentalID)
	if err != nil {
		return nil, err
	}

	var bike models.Bike
	if err := s.DB.Preload("Status").First(&bike, bikeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBikeNotFound
		}
		return nil, fmt.Errorf("failed to load bike: %w", err)
	}

	price, err := RentalPriceForInterval(bike, start, end)
	if err != nil {
		return nil, err
	}

	rental.BikeID = &bike.ID
	rental.StartTime = start
	rental.EndTime = end
	rental.TotalPrice = price
	if err := s.DB.Save(rental).Error; err != nil {
		return nil, fmt.Errorf("failed to update rental: %w", err)
	}
	return rental, nil
}

// Delete removes a rental. Owners may delete their own; managers any.
func (s *RentalService) Delete(rentalID, requesterID uint, requesterRole models.Role) error {
	rental, err := s.Get(rentalID)
	if err != nil {
		return err
	}
	if rental.UserID != requesterID && !requesterRole.CanManageRentals() {
		return ErrForbidden
	}
	if err := s.DB.Delete(&models.Rental{}, rentalID).Error; err != nil {
		return fmt.Errorf("failed to delete rental: %w", err)
	}
	return nil
}
