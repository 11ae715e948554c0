package services

import (
	"time"

	"github.com/LeonySales/SmallyFit1/config"
	"github.com/LeonySales/SmallyFit1/models"
	"github.com/LeonySales/SmallyFit1/utils"

	"gorm.io/gorm"
)

func CreateMeal(userID uint, name, mealType string, date time.Time) (*models.Meal, error) {
	meal := models.Meal{
		UserID: userID,
		Name:   name,
		Type:   mealType,
		Date:   date,
	}
	if err := config.DB.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func MealsByDate(userID uint, date time.Time) ([]models.Meal, error) {
	start := dayStartLocal(date)
	end := start.Add(24 * time.Hour)

	var meals []models.Meal
	err := config.DB.
		Preload("Items").
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Find(&meals).Error
	return meals, err
}

// GetMeal loads a meal and checks ownership: gorm.ErrRecordNotFound for
// a missing meal, ErrForbidden for somebody else's.
func GetMeal(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	if err := config.DB.Preload("Items").First(&meal, mealID).Error; err != nil {
		return nil, err
	}
	if meal.UserID != userID {
		return nil, ErrForbidden
	}
	return &meal, nil
}

func MealItems(userID, mealID uint) ([]models.MealItem, error) {
	meal, err := GetMeal(userID, mealID)
	if err != nil {
		return nil, err
	}
	return meal.Items, nil
}

type MealItemRequest struct {
	FoodItemID uint    `json:"food_item_id" binding:"required"`
	Quantity   float64 `json:"quantity" binding:"required,gt=0"`
}

// AddMealItem snapshots the food's scaled nutrients into a new meal item
// and increments the parent meal's totals, all inside one transaction so
// a meal's totals never drift from its items within a single request.
func AddMealItem(userID, mealID uint, req MealItemRequest) (*models.MealItem, error) {
	meal, err := GetMeal(userID, mealID)
	if err != nil {
		return nil, err
	}

	food, err := GetFoodItem(req.FoodItemID)
	if err != nil {
		return nil, err
	}

	user, err := GetUser(userID)
	if err != nil {
		return nil, err
	}
	trialActive := IsTrialActive(user.CreatedAt, user.IsPremium, time.Now())
	if !CanAddFoodToMeal(len(meal.Items), trialActive) {
		return nil, ErrPremiumRequired
	}
	// The quantity cap counts servings, not grams.
	if !CanIncreaseQuantity(req.Quantity/food.ServingSize, trialActive) {
		return nil, ErrPremiumRequired
	}

	contribution := utils.ItemContribution(*food, req.Quantity)
	item := models.MealItem{
		MealID:     meal.ID,
		FoodItemID: food.ID,
		FoodName:   food.Name,
		Quantity:   req.Quantity,
		Calories:   contribution.Calories,
		Protein:    contribution.Protein,
		Carbs:      contribution.Carbs,
		Fat:        contribution.Fat,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		totals := utils.AddContribution(mealTotals(meal), contribution)
		return updateMealTotals(tx, meal.ID, totals)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteMealItem removes an item and decrements its stored snapshot from
// the meal totals, clamped at zero per nutrient.
func DeleteMealItem(userID, itemID uint) error {
	var item models.MealItem
	if err := config.DB.First(&item, itemID).Error; err != nil {
		return err
	}

	meal, err := GetMeal(userID, item.MealID)
	if err != nil {
		return err
	}

	contribution := utils.NutrientTotals{
		Calories: item.Calories,
		Protein:  item.Protein,
		Carbs:    item.Carbs,
		Fat:      item.Fat,
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}
		totals := utils.RemoveContribution(mealTotals(meal), contribution)
		return updateMealTotals(tx, meal.ID, totals)
	})
}

type DailySummary struct {
	Date        time.Time            `json:"date"`
	Totals      utils.NutrientTotals `json:"totals"`
	CalorieGoal int                  `json:"calorie_goal"`
}

func GetDailySummary(userID uint, date time.Time) (*DailySummary, error) {
	meals, err := MealsByDate(userID, date)
	if err != nil {
		return nil, err
	}

	settings, err := GetSettings(userID)
	if err != nil {
		return nil, err
	}

	return &DailySummary{
		Date:        dayStartLocal(date),
		Totals:      utils.DailyTotals(meals),
		CalorieGoal: utils.CalorieGoal(settings.CalorieGoal),
	}, nil
}

func mealTotals(meal *models.Meal) utils.NutrientTotals {
	return utils.NutrientTotals{
		Calories: meal.TotalCalories,
		Protein:  meal.TotalProtein,
		Carbs:    meal.TotalCarbs,
		Fat:      meal.TotalFat,
	}
}

func updateMealTotals(tx *gorm.DB, mealID uint, totals utils.NutrientTotals) error {
	return tx.Model(&models.Meal{}).
		Where("id = ?", mealID).
		Updates(map[string]interface{}{
			"total_calories": totals.Calories,
			"total_protein":  totals.Protein,
			"total_carbs":    totals.Carbs,
			"total_fat":      totals.Fat,
		}).Error
}
