package models

import (
	"time"
)

// Submission is an unmoderated seller lead awaiting admin review. It shares
// the listing attribute shape but is a distinct record; approval copies the
// data into a Listing and removes the Submission.
type Submission struct {
	ID                 uint            `json:"id" gorm:"primaryKey"`
	Name               string          `json:"name" gorm:"not null;size:256"`
	Phone              string          `json:"phone" gorm:"not null;size:50"`
	Location           string          `json:"location" gorm:"not null;size:256"`
	Make               string          `json:"make" gorm:"not null;size:256"`
	Model              string          `json:"model" gorm:"not null;size:256"`
	Year               int             `json:"year" gorm:"not null"`
	Price              int             `json:"price" gorm:"not null"`
	KmDriven           int             `json:"km_driven" gorm:"not null"`
	EngineDisplacement int             `json:"engine_displacement" gorm:"not null"`
	Registration       string          `json:"registration" gorm:"not null;size:256"`
	Condition          string          `json:"condition" gorm:"not null;size:20"`
	Description        string          `json:"description" gorm:"type:text;not null"`
	Images             StringSliceType `json:"images"`
	SubmittedAt        time.Time       `json:"submitted_at" gorm:"autoCreateTime"`
}
