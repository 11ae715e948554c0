package services

import (
	"errors"

	"github.com/LeonySales/SmallyFit1/config"
	"github.com/LeonySales/SmallyFit1/models"

	"gorm.io/gorm"
)

func defaultSettings(userID uint) *models.Settings {
	return &models.Settings{
		UserID:               userID,
		DarkMode:             false,
		Units:                "metric",
		NotificationSound:    true,
		WaterReminders:       true,
		WorkoutReminders:     true,
		MeasurementReminders: true,
		MotivationTips:       false,
		CalorieGoal:          "maintain",
	}
}

// GetSettings returns the user's settings, creating the defaults on
// first access so callers never see a missing row.
func GetSettings(userID uint) (*models.Settings, error) {
	var s models.Settings
	err := config.DB.Where("user_id = ?", userID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = *defaultSettings(userID)
		if err := config.DB.Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SettingsUpdate carries the fields a PATCH may change; nil means
// "leave untouched".
type SettingsUpdate struct {
	DarkMode             *bool   `json:"dark_mode"`
	Units                *string `json:"units"`
	NotificationSound    *bool   `json:"notification_sound"`
	WaterReminders       *bool   `json:"water_reminders"`
	WorkoutReminders     *bool   `json:"workout_reminders"`
	MeasurementReminders *bool   `json:"measurement_reminders"`
	MotivationTips       *bool   `json:"motivation_tips"`
	CalorieGoal          *string `json:"calorie_goal"`
}

func UpdateSettings(userID uint, update SettingsUpdate) (*models.Settings, error) {
	s, err := GetSettings(userID)
	if err != nil {
		return nil, err
	}

	if update.DarkMode != nil {
		s.DarkMode = *update.DarkMode
	}
	if update.Units != nil {
		s.Units = *update.Units
	}
	if update.NotificationSound != nil {
		s.NotificationSound = *update.NotificationSound
	}
	if update.WaterReminders != nil {
		s.WaterReminders = *update.WaterReminders
	}
	if update.WorkoutReminders != nil {
		s.WorkoutReminders = *update.WorkoutReminders
	}
	if update.MeasurementReminders != nil {
		s.MeasurementReminders = *update.MeasurementReminders
	}
	if update.MotivationTips != nil {
		s.MotivationTips = *update.MotivationTips
	}
	if update.CalorieGoal != nil {
		s.CalorieGoal = *update.CalorieGoal
	}

	if err := config.DB.Save(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}
