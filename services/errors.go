package services

import "errors"

// Shared failure taxonomy. Controllers map these onto HTTP statuses;
// everything else is wrapped and treated as an internal error.
var (
	ErrTourNotFound     = errors.New("tour_not_found")
	ErrSlotNotFound     = errors.New("slot_not_found")
	ErrBikeNotFound     = errors.New("bike_not_found")
	ErrGuideNotFound    = errors.New("guide_not_found")
	ErrRentalNotFound   = errors.New("rental_not_found")
	ErrLocationNotFound = errors.New("location_not_found")

	ErrSlotUnavailable = errors.New("slot_unavailable")
	ErrInvalidDuration = errors.New("invalid_duration")
	ErrInvalidRating   = errors.New("invalid_rating")
	ErrBikeUnavailable = errors.New("bike_unavailable")
	ErrSlotExists      = errors.New("slot_already_exists")
	ErrForbidden       = errors.New("forbidden")
)
