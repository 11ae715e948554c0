package services

import (
	"time"

	"github.com/LeonySales/SmallyFit1/config"
	"github.com/LeonySales/SmallyFit1/models"
)

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// TodayWaterTotal sums the signed deltas recorded since local midnight.
func TodayWaterTotal(userID uint) (int, error) {
	start := dayStartLocal(time.Now())

	var total int
	err := config.DB.Model(&models.WaterLog{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND created_at >= ?", userID, start).
		Scan(&total).Error
	return total, err
}

// AdjustWater records a signed intake delta and returns the new today
// total. Negative totals are a UI concern, not enforced here.
func AdjustWater(userID uint, delta int) (int, error) {
	entry := models.WaterLog{UserID: userID, Amount: delta}
	if err := config.DB.Create(&entry).Error; err != nil {
		return 0, err
	}
	return TodayWaterTotal(userID)
}

type WaterDay struct {
	Day    string `json:"day"`
	Amount int    `json:"amount"`
}

func WaterHistory(userID uint) ([]WaterDay, error) {
	var rows []WaterDay
	err := config.DB.Model(&models.WaterLog{}).
		Select("to_char(created_at, 'YYYY-MM-DD') AS day, SUM(amount) AS amount").
		Where("user_id = ?", userID).
		Group("to_char(created_at, 'YYYY-MM-DD')").
		Order("day DESC").
		Scan(&rows).Error
	return rows, err
}
