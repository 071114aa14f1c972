package models

import "time"

// Slot is a bookable departure of a tour with an assigned guide and,
// optionally, a bike. Once IsBooked flips to true it never goes back.
type Slot struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	TourID   uint      `gorm:"not null;uniqueIndex:idx_slot_identity" json:"tour_id"`
	GuideID  uint      `gorm:"not null;uniqueIndex:idx_slot_identity" json:"guide_id"`
	BikeID   *uint     `gorm:"column:bike_id" json:"bike_id,omitempty"`
	Datetime time.Time `gorm:"not null;index;uniqueIndex:idx_slot_identity" json:"datetime"`
	IsBooked bool      `gorm:"not null;default:false" json:"is_booked"`

	Tour  Tour  `gorm:"foreignKey:TourID" json:"tour,omitempty"`
	Guide Guide `gorm:"foreignKey:GuideID" json:"guide,omitempty"`
	Bike  *Bike `gorm:"foreignKey:BikeID" json:"bike,omitempty"`
}
