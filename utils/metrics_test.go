package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	// 70 kg at 175 cm ≈ 22.86
	bmi := CalculateBMI(70, 175)
	assert.InDelta(t, 22.857, bmi, 0.001)
}

func TestCalculateBMIMonotonicInWeight(t *testing.T) {
	const height = 170.0
	prev := CalculateBMI(40, height)
	for w := 45.0; w <= 150; w += 5 {
		cur := CalculateBMI(w, height)
		require.Greater(t, cur, prev, "BMI must grow with weight at fixed height")
		prev = cur
	}
}

func TestBMICategoryBoundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{18.49999, "Underweight"},
		{18.5, "Healthy"},
		{24.9999, "Healthy"},
		{25.0, "Overweight"},
		{29.9999, "Overweight"},
		{30.0, "Obese"},
		{45.0, "Obese"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BMICategory(tt.bmi), "bmi=%v", tt.bmi)
	}
}

func TestRecommendedWaterIntakeML(t *testing.T) {
	assert.Equal(t, 2450, RecommendedWaterIntakeML(70))
	// 75.5 * 35 = 2642.5, rounds up
	assert.Equal(t, 2643, RecommendedWaterIntakeML(75.5))
}

func TestCalorieGoal(t *testing.T) {
	assert.Equal(t, 1500, CalorieGoal("lose"))
	assert.Equal(t, 2000, CalorieGoal("maintain"))
	assert.Equal(t, 2500, CalorieGoal("gain"))
	assert.Equal(t, 2000, CalorieGoal(""))
	assert.Equal(t, 2000, CalorieGoal("bulk"))
}
