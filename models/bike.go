package models

import "gorm.io/gorm"

const (
	BikeTypeStandard = "standard"
	BikeTypeElectric = "electric"
)

// Seeded status labels, referenced by Bike.StatusID.
const (
	BikeStatusAvailable   = "Available"
	BikeStatusRented      = "Rented"
	BikeStatusMaintenance = "Maintenance"
	BikeStatusBroken      = "Broken"
)

type BikeStatus struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	StatusName string `gorm:"size:50;uniqueIndex;not null" json:"status_name"`
}

type Bike struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Type            string  `gorm:"size:20;not null" json:"type"`
	StatusID        uint    `gorm:"index;column:status_id" json:"status_id"`
	RentalPriceHour float64 `gorm:"column:rental_price_hour" json:"rental_price_hour"`
	RentalPriceDay  float64 `gorm:"column:rental_price_day" json:"rental_price_day"`
	LocationID      uint    `gorm:"index;column:location_id" json:"location_id"`

	Status   BikeStatus `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	Location Location   `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

// BeforeSave clamps a negative hourly price to zero instead of rejecting it.
func (b *Bike) BeforeSave(tx *gorm.DB) error {
	if b.RentalPriceHour < 0 {
		b.RentalPriceHour = 0
	}
	return nil
}
