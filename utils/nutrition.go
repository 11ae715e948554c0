package utils

import (
	"math"

	"github.com/LeonySales/SmallyFit1/models"
)

// NutrientTotals carries the four macros a meal tracks.
type NutrientTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// ScaleNutrient scales a per-serving value to the consumed quantity.
func ScaleNutrient(perServing, servingSize, quantity float64) float64 {
	return perServing * (quantity / servingSize)
}

// ItemContribution computes the snapshot a meal item stores when a food
// is added: calories rounded to the nearest kcal, macros to one decimal.
func ItemContribution(food models.FoodItem, quantity float64) NutrientTotals {
	return NutrientTotals{
		Calories: math.Round(ScaleNutrient(food.Calories, food.ServingSize, quantity)),
		Protein:  round1(ScaleNutrient(food.Protein, food.ServingSize, quantity)),
		Carbs:    round1(ScaleNutrient(food.Carbs, food.ServingSize, quantity)),
		Fat:      round1(ScaleNutrient(food.Fat, food.ServingSize, quantity)),
	}
}

// AddContribution returns the meal totals incremented by a snapshot.
func AddContribution(totals, c NutrientTotals) NutrientTotals {
	return NutrientTotals{
		Calories: totals.Calories + c.Calories,
		Protein:  totals.Protein + c.Protein,
		Carbs:    totals.Carbs + c.Carbs,
		Fat:      totals.Fat + c.Fat,
	}
}

// RemoveContribution decrements totals by a stored snapshot, clamping
// each nutrient at zero so drifted totals can never go negative.
func RemoveContribution(totals, c NutrientTotals) NutrientTotals {
	return NutrientTotals{
		Calories: math.Max(0, totals.Calories-c.Calories),
		Protein:  math.Max(0, totals.Protein-c.Protein),
		Carbs:    math.Max(0, totals.Carbs-c.Carbs),
		Fat:      math.Max(0, totals.Fat-c.Fat),
	}
}

// DailyTotals folds the denormalized totals of all meals for a day.
func DailyTotals(meals []models.Meal) NutrientTotals {
	var t NutrientTotals
	for _, m := range meals {
		t.Calories += m.TotalCalories
		t.Protein += m.TotalProtein
		t.Carbs += m.TotalCarbs
		t.Fat += m.TotalFat
	}
	return t
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
