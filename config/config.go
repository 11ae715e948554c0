package config

import (
	"fmt"
	"log"
	"os"

	"github.com/LeonySales/SmallyFit1/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Measurement{},
		&models.WaterLog{},
		&models.Workout{},
		&models.Exercise{},
		&models.Notification{},
		&models.Settings{},
		&models.FoodItem{},
		&models.Meal{},
		&models.MealItem{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	if err := SeedFoodItems(DB); err != nil {
		log.Fatalf("Food catalog seed failed: %v", err)
	}
}
