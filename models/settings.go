package models

import (
	"gorm.io/gorm"
)

// Settings is one-to-one with User.
type Settings struct {
	gorm.Model
	UserID               uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	DarkMode             bool   `gorm:"default:false" json:"dark_mode"`
	Units                string `gorm:"default:'metric'" json:"units"` // "metric" | "imperial"
	NotificationSound    bool   `gorm:"default:true" json:"notification_sound"`
	WaterReminders       bool   `gorm:"default:true" json:"water_reminders"`
	WorkoutReminders     bool   `gorm:"default:true" json:"workout_reminders"`
	MeasurementReminders bool   `gorm:"default:true" json:"measurement_reminders"`
	MotivationTips       bool   `gorm:"default:false" json:"motivation_tips"`
	CalorieGoal          string `gorm:"default:'maintain'" json:"calorie_goal"` // "lose" | "maintain" | "gain"
}
