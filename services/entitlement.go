package services

import (
	"time"

	"github.com/LeonySales/SmallyFit1/models"
)

// Free-tier limits. These are the single source of truth for both the
// API enforcement below and any client-side UX checks.
const (
	TrialDays            = 7
	FreeMeasurementLimit = 3
	FreeMealItemLimit    = 2
	FreeMaxQuantity      = 1.0
)

// elapsedTrialDays counts elapsed time since signup in whole days,
// rounding up: any elapsed time up to 24h counts as day 1.
func elapsedTrialDays(createdAt, now time.Time) int {
	elapsed := now.Sub(createdAt)
	if elapsed <= 0 {
		return 0
	}
	days := int(elapsed / (24 * time.Hour))
	if elapsed%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// IsTrialActive reports whether the user still has full access: premium
// accounts always do, free accounts during the first TrialDays days.
func IsTrialActive(createdAt time.Time, isPremium bool, now time.Time) bool {
	if isPremium {
		return true
	}
	return elapsedTrialDays(createdAt, now) <= TrialDays
}

func TrialDaysRemaining(createdAt, now time.Time) int {
	remaining := TrialDays - elapsedTrialDays(createdAt, now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CanRecordMeasurement gates measurement creation for expired free accounts.
func CanRecordMeasurement(currentCount int, trialActive bool) bool {
	return trialActive || currentCount < FreeMeasurementLimit
}

// CanAddFoodToMeal gates adding another food item to a meal.
func CanAddFoodToMeal(currentCount int, trialActive bool) bool {
	return trialActive || currentCount < FreeMealItemLimit
}

// CanIncreaseQuantity gates portion multipliers above a single serving.
func CanIncreaseQuantity(requestedQty float64, trialActive bool) bool {
	return trialActive || requestedQty <= FreeMaxQuantity
}

type SubscriptionStatus struct {
	IsPremium     bool `json:"is_premium"`
	TrialActive   bool `json:"trial_active"`
	DaysRemaining int  `json:"days_remaining"`
}

func StatusForUser(user *models.User, now time.Time) SubscriptionStatus {
	return SubscriptionStatus{
		IsPremium:     user.IsPremium,
		TrialActive:   IsTrialActive(user.CreatedAt, user.IsPremium, now),
		DaysRemaining: TrialDaysRemaining(user.CreatedAt, now),
	}
}
