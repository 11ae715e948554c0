package models

import (
	"time"

	"gorm.io/gorm"
)

// One Meal (breakfast/lunch/…) for one user on one date. The Total*
// columns are denormalized running sums of the item snapshots and are
// maintained incrementally on every item add/remove.
type Meal struct {
	gorm.Model
	UserID        uint       `gorm:"index;not null" json:"user_id"`
	Name          string     `gorm:"not null" json:"name"`
	Type          string     `gorm:"size:20" json:"type"` // "breakfast" | "lunch" | "dinner" | "snack"
	Date          time.Time  `gorm:"index;not null" json:"date"`
	TotalCalories float64    `json:"total_calories"`
	TotalProtein  float64    `json:"total_protein"`
	TotalCarbs    float64    `json:"total_carbs"`
	TotalFat      float64    `json:"total_fat"`
	Items         []MealItem `json:"items"`
}

// MealItem stores a nutrition snapshot captured when the food was
// added: later edits to the FoodItem do not change past meals.
type MealItem struct {
	gorm.Model
	MealID     uint    `gorm:"index;not null" json:"meal_id"`
	FoodItemID uint    `gorm:"not null" json:"food_item_id"`
	FoodName   string  `json:"food_name"`
	Quantity   float64 `gorm:"not null" json:"quantity"`
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	Carbs      float64 `json:"carbs"`
	Fat        float64 `json:"fat"`
}
