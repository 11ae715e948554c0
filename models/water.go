package models

import (
	"gorm.io/gorm"
)

// WaterLog is a signed intake delta in ml. "Today's total" is the
// sum of deltas since local midnight; removals are negative rows.
type WaterLog struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"user_id"`
	Amount int  `gorm:"not null" json:"amount"`
}
