package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	TourID        uint      `gorm:"index;not null" json:"tour_id"`
	ReferenceCode string    `gorm:"size:64;uniqueIndex" json:"reference_code"`
	Date          time.Time `gorm:"not null" json:"date"`
	TotalPrice    float64   `gorm:"not null" json:"total_price"`

	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Tour Tour `gorm:"foreignKey:TourID" json:"tour,omitempty"`
}

// BeforeCreate assigns a short reference code customers can quote.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ReferenceCode == "" {
		b.ReferenceCode = "BK-" + strings.ToUpper(uuid.NewString()[:8])
	}
	return nil
}
