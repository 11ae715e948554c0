package services

import (
	"github.com/LeonySales/SmallyFit1/config"
	"github.com/LeonySales/SmallyFit1/models"
)

func ListFoodItems() ([]models.FoodItem, error) {
	var foods []models.FoodItem
	err := config.DB.Order("name").Find(&foods).Error
	return foods, err
}

func SearchFoodItems(query string) ([]models.FoodItem, error) {
	var foods []models.FoodItem
	err := config.DB.
		Where("name ILIKE ?", "%"+query+"%").
		Order("name").
		Find(&foods).Error
	return foods, err
}

func GetFoodItem(id uint) (*models.FoodItem, error) {
	var food models.FoodItem
	if err := config.DB.First(&food, id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

type FoodItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	ServingSize float64 `json:"serving_size" binding:"required,gt=0"`
	ServingUnit string  `json:"serving_unit"`
	Calories    float64 `json:"calories" binding:"gte=0"`
	Protein     float64 `json:"protein" binding:"gte=0"`
	Carbs       float64 `json:"carbs" binding:"gte=0"`
	Fat         float64 `json:"fat" binding:"gte=0"`
	Fiber       float64 `json:"fiber" binding:"gte=0"`
	Sugar       float64 `json:"sugar" binding:"gte=0"`
}

func CreateFoodItem(req FoodItemRequest) (*models.FoodItem, error) {
	unit := req.ServingUnit
	if unit == "" {
		unit = "g"
	}

	food := models.FoodItem{
		Name:        req.Name,
		ServingSize: req.ServingSize,
		ServingUnit: unit,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		Fiber:       req.Fiber,
		Sugar:       req.Sugar,
	}
	if err := config.DB.Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}
