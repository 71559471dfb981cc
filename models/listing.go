package models

import (
	"time"
)

// Condition values accepted for listings and submissions
const (
	ConditionExcellent = "Excellent"
	ConditionGood      = "Good"
	ConditionFair      = "Fair"
	ConditionPoor      = "Poor"
)

// Listing is a live, publicly browsable motorcycle for sale.
type Listing struct {
	ID                 uint            `json:"id" gorm:"primaryKey"`
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
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
