package models

import (
	"gorm.io/gorm"
)

// FoodItem is shared reference data: nutrient values are declared
// per ServingSize (e.g. per 100 g, or per 1 unit for whole foods).
type FoodItem struct {
	gorm.Model
	Name        string  `gorm:"not null;index" json:"name"`
	ServingSize float64 `gorm:"not null" json:"serving_size"`
	ServingUnit string  `gorm:"size:20;default:'g'" json:"serving_unit"` // "g" | "ml" | "unit"
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	Sugar       float64 `json:"sugar"`
}
