// services/reservation_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"biketours-backend/models"
)

// ReservationService owns the slot-booking path: one transaction that claims
// the slot and creates the Booking/Rental pair.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

type BookingResult struct {
	BookingID     uint   `json:"booking_id"`
	RentalID      uint   `json:"rental_id"`
	ReferenceCode string `json:"reference_code"`
}

// BookSlot books a slot of a tour for a user. All writes happen inside a
// single transaction; any failure rolls the whole thing back, so a Booking
// never exists without its Rental or a still-free slot.
//
// The slot is claimed with a conditional update on is_booked and an
// affected-row check. Two concurrent attempts on the same slot both pass the
// initial read, but only one update flips the flag; the other sees zero rows
// and gets ErrSlotUnavailable.
func (s *ReservationService) BookSlot(userID, tourID, slotID uint) (*BookingResult, error) {
	var result BookingResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var tour models.Tour
		if err := tx.First(&tour, tourID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTourNotFound
			}
			return fmt.Errorf("failed to load tour %d: %w", tourID, err)
		}

		var slot models.Slot
		if err := tx.Where("id = ? AND tour_id = ?", slotID, tourID).First(&slot).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("failed to load slot %d: %w", slotID, err)
		}

		if slot.IsBooked {
			return ErrSlotUnavailable
		}

		claimed := tx.Model(&models.Slot{}).
			Where("id = ? AND is_booked = ?", slot.ID, false).
			Update("is_booked", true)
		if claimed.Error != nil {
			return fmt.Errorf("failed to claim slot %d: %w", slot.ID, claimed.Error)
		}
		if claimed.RowsAffected == 0 {
			return ErrSlotUnavailable
		}

		booking := models.Booking{
			UserID:     userID,
			TourID:     tour.ID,
			Date:       slot.Datetime,
			TotalPrice: tour.Price,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		// The rental mirrors the tour price at booking time; it is not
		// recomputed from bike rates on this path.
		rental := models.Rental{
			UserID:     userID,
			BikeID:     slot.BikeID,
			StartTime:  slot.Datetime,
			EndTime:    slot.Datetime.Add(time.Duration(tour.Duration) * time.Hour),
			TotalPrice: tour.Price,
		}
		if err := tx.Create(&rental).Error; err != nil {
			return fmt.Errorf("failed to create rental: %w", err)
		}

		result = BookingResult{
			BookingID:     booking.ID,
			RentalID:      rental.ID,
			ReferenceCode: booking.ReferenceCode,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// BookingsForUser lists a user's bookings with their tours, newest first.
func (s *ReservationService) BookingsForUser(userID uint) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("Tour").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}
