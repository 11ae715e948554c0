package models

import (
	"gorm.io/gorm"
)

// Body measurements, all lengths in cm and weight in kg.
// Ordered by CreatedAt; the most recent row is the "latest".
type Measurement struct {
	gorm.Model
	UserID uint    `gorm:"index;not null" json:"user_id"`
	Weight float64 `gorm:"not null" json:"weight"`
	Height float64 `gorm:"not null" json:"height"`
	Waist  float64 `json:"waist"`
	Hip    float64 `json:"hip"`
	Arms   float64 `json:"arms"`
}
