package models

import (
	"gorm.io/gorm"
)

type Notification struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null" json:"user_id"`
	Title   string `gorm:"not null" json:"title"`
	Message string `gorm:"type:text;not null" json:"message"`
	Icon    string `gorm:"size:30" json:"icon"` // "water" | "workout" | "measurement" | …
	Read    bool   `gorm:"default:false" json:"read"`
}
