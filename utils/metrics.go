package utils

import "math"

// CalculateBMI expects weight in kilograms and height in centimeters.
// Inputs are validated at the API boundary; this does no bounds checking.
func CalculateBMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100.0 // to meters
	return weightKg / (h * h)
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Healthy"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}

// RecommendedWaterIntakeML uses the common 35 ml per kg rule.
func RecommendedWaterIntakeML(weightKg float64) int {
	return int(math.Round(weightKg * 35))
}

// CalorieGoal maps a goal preference to a daily kcal target.
// Anything unrecognized falls back to the maintenance target.
func CalorieGoal(goal string) int {
	switch goal {
	case "lose":
		return 1500
	case "gain":
		return 2500
	default:
		return 2000
	}
}
