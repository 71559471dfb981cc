package models

import (
	"time"
)

// Testimonial is a customer quote with an optional photo.
type Testimonial struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:256"`
	Location  string    `json:"location" gorm:"not null;size:256"`
	Review    string    `json:"review" gorm:"type:text;not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	Image     *string   `json:"image" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
