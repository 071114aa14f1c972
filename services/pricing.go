package services

import (
	"math"
	"time"

	"biketours-backend/models"
)

// dayRateCutoffHours: rentals longer than this are charged the flat day rate.
const dayRateCutoffHours = 6.0

// RentalPrice computes the price of renting a bike for the given number of
// hours. Exactly at the cutoff the hourly formula still applies; anything
// beyond it is a day rental. Pure function: same inputs, same output.
func RentalPrice(bike models.Bike, durationHours float64) (float64, error) {
	if durationHours <= 0 {
		return 0, ErrInvalidDuration
	}
	if durationHours > dayRateCutoffHours {
		return bike.RentalPriceDay, nil
	}
	return math.Round(bike.RentalPriceHour*durationHours*100) / 100, nil
}

// RentalPriceForInterval derives the duration from a start/end pair.
func RentalPriceForInterval(bike models.Bike, start, end time.Time) (float64, error) {
	return RentalPrice(bike, end.Sub(start).Hours())
}
