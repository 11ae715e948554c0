package utils

import (
	"testing"

	"github.com/LeonySales/SmallyFit1/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chickenBreast() models.FoodItem {
	return models.FoodItem{
		Name:        "Chicken breast",
		ServingSize: 100,
		Calories:    165,
		Protein:     31,
		Carbs:       0,
		Fat:         3.6,
	}
}

func TestScaleNutrient(t *testing.T) {
	assert.InDelta(t, 247.5, ScaleNutrient(165, 100, 150), 1e-9)
	assert.InDelta(t, 82.5, ScaleNutrient(165, 100, 50), 1e-9)
	assert.InDelta(t, 165, ScaleNutrient(165, 100, 100), 1e-9)
}

func TestItemContributionRounding(t *testing.T) {
	c := ItemContribution(chickenBreast(), 150)

	// scale factor 1.5: calories round to whole kcal, macros to one decimal
	assert.Equal(t, 248.0, c.Calories)
	assert.Equal(t, 46.5, c.Protein)
	assert.Equal(t, 0.0, c.Carbs)
	assert.Equal(t, 5.4, c.Fat)
}

func TestAddRemoveRoundTrip(t *testing.T) {
	var totals NutrientTotals

	c := ItemContribution(chickenBreast(), 150)
	totals = AddContribution(totals, c)

	assert.Equal(t, NutrientTotals{Calories: 248, Protein: 46.5, Carbs: 0, Fat: 5.4}, totals)

	totals = RemoveContribution(totals, c)
	assert.Equal(t, NutrientTotals{}, totals, "removing the only item must return totals exactly to zero")
}

func TestRemoveContributionClampsAtZero(t *testing.T) {
	// Simulated drift: the stored snapshot exceeds the current totals.
	totals := NutrientTotals{Calories: 100, Protein: 5, Carbs: 2, Fat: 1}
	snapshot := NutrientTotals{Calories: 250, Protein: 40, Carbs: 10, Fat: 8}

	got := RemoveContribution(totals, snapshot)
	assert.Equal(t, NutrientTotals{}, got)
}

func TestRepeatedAddRemoveNeverGoesNegative(t *testing.T) {
	banana := models.FoodItem{
		Name: "Banana", ServingSize: 1, ServingUnit: "unit",
		Calories: 89, Protein: 1.1, Carbs: 22.8, Fat: 0.3,
	}
	oats := models.FoodItem{
		Name: "Oats", ServingSize: 100,
		Calories: 389, Protein: 16.9, Carbs: 66.3, Fat: 6.9,
	}

	var totals NutrientTotals
	for i := 0; i < 1000; i++ {
		a := ItemContribution(banana, 1)
		b := ItemContribution(oats, 37) // awkward scale factor on purpose
		totals = AddContribution(totals, a)
		totals = AddContribution(totals, b)
		totals = RemoveContribution(totals, b)
		totals = RemoveContribution(totals, a)

		require.GreaterOrEqual(t, totals.Calories, 0.0)
		require.GreaterOrEqual(t, totals.Protein, 0.0)
		require.GreaterOrEqual(t, totals.Carbs, 0.0)
		require.GreaterOrEqual(t, totals.Fat, 0.0)
	}

	// Calories are whole numbers, so the cycle is exact; macros may carry
	// float dust but must stay pinned to (effectively) zero.
	assert.Equal(t, 0.0, totals.Calories)
	assert.InDelta(t, 0, totals.Protein, 1e-6)
	assert.InDelta(t, 0, totals.Carbs, 1e-6)
	assert.InDelta(t, 0, totals.Fat, 1e-6)
}

func TestDailyTotalsFold(t *testing.T) {
	mealA := models.Meal{TotalCalories: 248, TotalProtein: 46.5, TotalCarbs: 0, TotalFat: 5.4}
	mealB := models.Meal{TotalCalories: 130, TotalProtein: 2.7, TotalCarbs: 28, TotalFat: 0.3}

	got := DailyTotals([]models.Meal{mealA, mealB})
	assert.Equal(t, 378.0, got.Calories)
	assert.InDelta(t, 49.2, got.Protein, 1e-9)
	assert.InDelta(t, 28, got.Carbs, 1e-9)
	assert.InDelta(t, 5.7, got.Fat, 1e-9)
}

func TestDailyTotalsEmpty(t *testing.T) {
	assert.Equal(t, NutrientTotals{}, DailyTotals(nil))
	assert.Equal(t, NutrientTotals{}, DailyTotals([]models.Meal{}))
}
