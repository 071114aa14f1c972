package models

import (
	"time"

	"gorm.io/datatypes"
)

type Guide struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	Experience int            `gorm:"not null" json:"experience"`
	Languages  datatypes.JSON `gorm:"column:languages" json:"languages,omitempty"`
	Rating     float64        `gorm:"default:0" json:"rating"`
	ResumeURL  string         `gorm:"size:500;column:resume_url" json:"resume_url,omitempty"`
	ProfileURL string         `gorm:"size:500;column:profile_url" json:"profile_url,omitempty"`

	User  User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Tours []Tour `gorm:"many2many:guide_tours;joinForeignKey:GuideID;joinReferences:TourID" json:"tours,omitempty"`
}

// GuideTour is the explicit assignment entity between guides and tours.
type GuideTour struct {
	GuideID    uint      `gorm:"primaryKey;column:guide_id" json:"guide_id"`
	TourID     uint      `gorm:"primaryKey;column:tour_id" json:"tour_id"`
	AssignedAt time.Time `gorm:"autoCreateTime;column:assigned_at" json:"assigned_at"`
}
