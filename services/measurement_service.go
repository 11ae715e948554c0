package services

import (
	"errors"
	"math"
	"time"

	"github.com/LeonySales/SmallyFit1/config"
	"github.com/LeonySales/SmallyFit1/models"
	"github.com/LeonySales/SmallyFit1/utils"

	"gorm.io/gorm"
)

type MeasurementRequest struct {
	Weight float64 `json:"weight" binding:"required,gt=0"`
	Height float64 `json:"height" binding:"required,gt=0"`
	Waist  float64 `json:"waist" binding:"gte=0"`
	Hip    float64 `json:"hip" binding:"gte=0"`
	Arms   float64 `json:"arms" binding:"gte=0"`
}

// CreateMeasurement records a measurement, enforcing the free-tier cap
// of FreeMeasurementLimit rows once the trial has expired.
func CreateMeasurement(userID uint, req MeasurementRequest) (*models.Measurement, error) {
	user, err := GetUser(userID)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := config.DB.Model(&models.Measurement{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, err
	}

	trialActive := IsTrialActive(user.CreatedAt, user.IsPremium, time.Now())
	if !CanRecordMeasurement(int(count), trialActive) {
		return nil, ErrPremiumRequired
	}

	m := models.Measurement{
		UserID: userID,
		Weight: req.Weight,
		Height: req.Height,
		Waist:  req.Waist,
		Hip:    req.Hip,
		Arms:   req.Arms,
	}
	if err := config.DB.Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// LatestMeasurement returns nil without error when the user has no
// measurements yet.
func LatestMeasurement(userID uint) (*models.Measurement, error) {
	var m models.Measurement
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func MeasurementHistory(userID uint) ([]models.Measurement, error) {
	var ms []models.Measurement
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ms).Error
	return ms, err
}

type BMIPoint struct {
	Date time.Time `json:"date"`
	BMI  float64   `json:"bmi"`
}

func BMIHistory(userID uint) ([]BMIPoint, error) {
	ms, err := MeasurementHistory(userID)
	if err != nil {
		return nil, err
	}

	points := make([]BMIPoint, 0, len(ms))
	for _, m := range ms {
		points = append(points, BMIPoint{
			Date: m.CreatedAt,
			BMI:  utils.CalculateBMI(m.Weight, m.Height),
		})
	}
	return points, nil
}

type WeightProgress struct {
	StartWeight   *float64 `json:"start_weight"`
	CurrentWeight *float64 `json:"current_weight"`
	GoalWeight    *float64 `json:"goal_weight"`
	Progress      int      `json:"progress"`
}

// WeightHistory derives a goal weight of 90% of the starting weight when
// the user is losing, 110% when gaining, and reports progress toward it.
func WeightHistory(userID uint) (*WeightProgress, error) {
	ms, err := MeasurementHistory(userID)
	if err != nil {
		return nil, err
	}
	if len(ms) == 0 {
		return &WeightProgress{}, nil
	}

	start := ms[len(ms)-1].Weight
	current := ms[0].Weight

	goal := start * 1.1
	if start > current {
		goal = start * 0.9
	}

	totalDiff := math.Abs(goal - start)
	currentDiff := math.Abs(current - start)
	progress := 0
	if totalDiff > 0 {
		progress = int(math.Min(100, math.Round(currentDiff/totalDiff*100)))
	}

	return &WeightProgress{
		StartWeight:   &start,
		CurrentWeight: &current,
		GoalWeight:    &goal,
		Progress:      progress,
	}, nil
}

type UserStats struct {
	BMI          *float64 `json:"bmi"`
	BMIStatus    string   `json:"bmi_status"`
	WaterCurrent int      `json:"water_current"`
	WaterGoal    int      `json:"water_goal"`
	CalorieGoal  int      `json:"calorie_goal"`
}

func GetUserStats(userID uint) (*UserStats, error) {
	latest, err := LatestMeasurement(userID)
	if err != nil {
		return nil, err
	}

	todayWater, err := TodayWaterTotal(userID)
	if err != nil {
		return nil, err
	}

	settings, err := GetSettings(userID)
	if err != nil {
		return nil, err
	}

	stats := &UserStats{
		WaterCurrent: todayWater,
		WaterGoal:    2000, // default until a measurement exists
		CalorieGoal:  utils.CalorieGoal(settings.CalorieGoal),
	}

	if latest != nil {
		bmi := utils.CalculateBMI(latest.Weight, latest.Height)
		stats.BMI = &bmi
		stats.BMIStatus = utils.BMICategory(bmi)
		stats.WaterGoal = utils.RecommendedWaterIntakeML(latest.Weight)
	}
	return stats, nil
}
