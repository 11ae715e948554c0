package services

import (
	"github.com/LeonySales/SmallyFit1/config"
	"github.com/LeonySales/SmallyFit1/models"
)

func ListNotifications(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func MarkAllNotificationsRead(userID uint) error {
	return config.DB.Model(&models.Notification{}).
		Where("user_id = ?", userID).
		Update("read", true).Error
}

func CreateNotification(userID uint, title, message, icon string) (*models.Notification, error) {
	n := models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Icon:    icon,
	}
	if err := config.DB.Create(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

type NotificationSetting struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

// NotificationSettings exposes the reminder toggles in the shape the
// settings screen renders.
func NotificationSettings(userID uint) ([]NotificationSetting, error) {
	s, err := GetSettings(userID)
	if err != nil {
		return nil, err
	}

	return []NotificationSetting{
		{
			ID:          "water_reminders",
			Name:        "Water reminders",
			Description: "Get alerts to stay hydrated",
			Enabled:     s.WaterReminders,
		},
		{
			ID:          "workout_reminders",
			Name:        "Workout reminders",
			Description: "Be notified about your workouts",
			Enabled:     s.WorkoutReminders,
		},
		{
			ID:          "measurement_reminders",
			Name:        "Measurement updates",
			Description: "Reminders to log your measurements",
			Enabled:     s.MeasurementReminders,
		},
		{
			ID:          "motivation_tips",
			Name:        "Tips and motivation",
			Description: "Receive motivational tips",
			Enabled:     s.MotivationTips,
		},
	}, nil
}

// UpdateNotificationSetting flips one reminder toggle by its public id.
// Unknown ids are ignored, matching the settings screen contract.
func UpdateNotificationSetting(userID uint, id string, enabled bool) error {
	s, err := GetSettings(userID)
	if err != nil {
		return err
	}

	switch id {
	case "water_reminders":
		s.WaterReminders = enabled
	case "workout_reminders":
		s.WorkoutReminders = enabled
	case "measurement_reminders":
		s.MeasurementReminders = enabled
	case "motivation_tips":
		s.MotivationTips = enabled
	default:
		return nil
	}

	return config.DB.Save(s).Error
}
