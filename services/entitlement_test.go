package services

import (
	"testing"
	"time"

	"github.com/LeonySales/SmallyFit1/models"

	"github.com/stretchr/testify/assert"
)

func TestIsTrialActiveBoundaries(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		isPremium bool
		want      bool
	}{
		{"brand new account", now, false, true},
		{"one hour in", now.Add(-time.Hour), false, true},
		{"day 7 exactly", now.Add(-7 * 24 * time.Hour), false, true},
		{"one second past day 7", now.Add(-7*24*time.Hour - time.Second), false, false},
		{"long expired", now.Add(-30 * 24 * time.Hour), false, false},
		{"premium never expires", now.Add(-365 * 24 * time.Hour), true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTrialActive(tt.createdAt, tt.isPremium, now))
		})
	}
}

func TestTrialDaysRemaining(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 7, TrialDaysRemaining(now, now))
	assert.Equal(t, 6, TrialDaysRemaining(now.Add(-time.Hour), now))
	assert.Equal(t, 6, TrialDaysRemaining(now.Add(-24*time.Hour), now))
	assert.Equal(t, 0, TrialDaysRemaining(now.Add(-7*24*time.Hour), now))
	assert.Equal(t, 0, TrialDaysRemaining(now.Add(-7*24*time.Hour-time.Second), now))
	assert.Equal(t, 0, TrialDaysRemaining(now.Add(-100*24*time.Hour), now))
}

func TestCanRecordMeasurement(t *testing.T) {
	assert.True(t, CanRecordMeasurement(0, false))
	assert.True(t, CanRecordMeasurement(2, false))
	assert.False(t, CanRecordMeasurement(3, false))
	assert.False(t, CanRecordMeasurement(10, false))

	// trial or premium lifts the cap entirely
	assert.True(t, CanRecordMeasurement(3, true))
	assert.True(t, CanRecordMeasurement(1000, true))
}

func TestCanAddFoodToMeal(t *testing.T) {
	assert.True(t, CanAddFoodToMeal(0, false))
	assert.True(t, CanAddFoodToMeal(1, false))
	assert.False(t, CanAddFoodToMeal(2, false))

	assert.True(t, CanAddFoodToMeal(2, true))
}

func TestCanIncreaseQuantity(t *testing.T) {
	assert.True(t, CanIncreaseQuantity(0.5, false))
	assert.True(t, CanIncreaseQuantity(1, false))
	assert.False(t, CanIncreaseQuantity(1.5, false))

	assert.True(t, CanIncreaseQuantity(3, true))
}

func TestStatusForUser(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	free := &models.User{IsPremium: false}
	free.CreatedAt = now.Add(-2 * 24 * time.Hour)

	status := StatusForUser(free, now)
	assert.False(t, status.IsPremium)
	assert.True(t, status.TrialActive)
	assert.Equal(t, 5, status.DaysRemaining)

	expired := &models.User{IsPremium: false}
	expired.CreatedAt = now.Add(-10 * 24 * time.Hour)

	status = StatusForUser(expired, now)
	assert.False(t, status.TrialActive)
	assert.Equal(t, 0, status.DaysRemaining)
}
