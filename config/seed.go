package config

import (
	"github.com/LeonySales/SmallyFit1/models"

	"gorm.io/gorm"
)

// SeedFoodItems loads the built-in food catalog on first boot. Nutrient
// values are per 100 g / 100 ml, or per 1 unit for whole foods.
func SeedFoodItems(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.FoodItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	per100g := func(name string, cal, prot, carbs, fat float64) models.FoodItem {
		return models.FoodItem{Name: name, ServingSize: 100, ServingUnit: "g",
			Calories: cal, Protein: prot, Carbs: carbs, Fat: fat}
	}
	per100ml := func(name string, cal, prot, carbs, fat float64) models.FoodItem {
		return models.FoodItem{Name: name, ServingSize: 100, ServingUnit: "ml",
			Calories: cal, Protein: prot, Carbs: carbs, Fat: fat}
	}
	perUnit := func(name string, cal, prot, carbs, fat float64) models.FoodItem {
		return models.FoodItem{Name: name, ServingSize: 1, ServingUnit: "unit",
			Calories: cal, Protein: prot, Carbs: carbs, Fat: fat}
	}

	foods := []models.FoodItem{
		per100g("White rice", 130, 2.7, 28, 0.3),
		per100g("Brown rice", 111, 2.6, 23, 0.9),
		per100g("Black beans", 132, 8.7, 23.7, 0.5),
		per100g("Chicken breast", 165, 31, 0, 3.6),
		perUnit("Whole egg", 155, 13, 1.1, 11),
		perUnit("French bread roll", 150, 4, 28, 2),
		perUnit("Banana", 89, 1.1, 22.8, 0.3),
		perUnit("Apple", 52, 0.3, 13.8, 0.2),
		per100g("Sweet potato", 86, 1.6, 20.1, 0.1),
		per100g("Potato", 77, 2, 17, 0.1),
		per100g("Oats", 389, 16.9, 66.3, 6.9),
		per100ml("Whole milk", 61, 3.2, 4.8, 3.3),
		per100ml("Skim milk", 35, 3.4, 5, 0.1),
		per100g("Plain yogurt", 59, 3.5, 4.7, 3.3),
		per100g("White cheese", 264, 18.9, 1.3, 20.3),
		per100ml("Olive oil", 884, 0, 0, 100),
		per100g("Whole wheat bread", 247, 13, 41, 3.4),
		per100g("Spinach", 23, 2.9, 3.6, 0.4),
		per100g("Broccoli", 34, 2.8, 6.6, 0.4),
		per100g("Carrot", 41, 0.9, 9.6, 0.2),
	}

	return db.Create(&foods).Error
}
