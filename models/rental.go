package models

import "time"

// Rental may exist without a concrete bike: slots without an assigned bike
// still produce a rental record on booking.
type Rental struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	BikeID     *uint     `gorm:"column:bike_id;index" json:"bike_id,omitempty"`
	StartTime  time.Time `gorm:"column:start_time;not null" json:"start_time"`
	EndTime    time.Time `gorm:"column:end_time;not null" json:"end_time"`
	TotalPrice float64   `gorm:"not null" json:"total_price"`

	CreatedAt time.Time `json:"created_at"`

	User User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Bike *Bike `gorm:"foreignKey:BikeID" json:"bike,omitempty"`
}
