package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// TourDurations is the closed set of bookable durations, in hours.
var TourDurations = []int{1, 2, 3, 4, 6, 8, 12, 24}

var ErrInvalidTourDuration = errors.New("invalid_tour_duration")

type Tour struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:200;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Duration    int     `gorm:"not null" json:"duration"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Location    string  `gorm:"size:200" json:"location"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`

	StartTime *time.Time `gorm:"column:start_time" json:"start_time,omitempty"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Guides []Guide `gorm:"many2many:guide_tours;joinForeignKey:TourID;joinReferences:GuideID" json:"guides,omitempty"`
}

func ValidTourDuration(hours int) bool {
	for _, d := range TourDurations {
		if d == hours {
			return true
		}
	}
	return false
}

// BeforeSave strips surrounding whitespace from the name and checks the
// duration against the closed set.
func (t *Tour) BeforeSave(tx *gorm.DB) error {
	t.Name = strings.TrimSpace(t.Name)
	if !ValidTourDuration(t.Duration) {
		return ErrInvalidTourDuration
	}
	return nil
}
