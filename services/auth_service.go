package services

import (
	"errors"

	"github.com/LeonySales/SmallyFit1/config"
	"github.com/LeonySales/SmallyFit1/models"
	"github.com/LeonySales/SmallyFit1/utils"

	"gorm.io/gorm"
)

func RegisterUser(name, email, password string) (*models.User, error) {
	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if err := tx.Create(defaultSettings(user.ID)).Error; err != nil {
			return err
		}
		welcome := models.Notification{
			UserID:  user.ID,
			Title:   "Welcome to SmallyFit",
			Message: "Log your first measurement to unlock BMI and water goals.",
			Icon:    "measurement",
		}
		return tx.Create(&welcome).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func IssueToken(user *models.User) (string, error) {
	return utils.GenerateJWT(user.ID, user.Email)
}

func AuthenticateUser(email, password string) (*models.User, string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUserProfile(userID uint, name, email string) (*models.User, error) {
	user, err := GetUser(userID)
	if err != nil {
		return nil, err
	}

	if email != user.Email {
		var other models.User
		err := config.DB.Where("email = ? AND id <> ?", email, userID).First(&other).Error
		if err == nil {
			return nil, ErrEmailTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	user.Name = name
	user.Email = email
	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func ChangePassword(userID uint, currentPassword, newPassword string) error {
	user, err := GetUser(userID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(currentPassword, user.Password) {
		return ErrInvalidCredentials
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return config.DB.Model(user).Update("password", hashed).Error
}

// DeleteAccount removes the user and everything they own.
func DeleteAccount(userID uint) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id IN (?)",
			tx.Model(&models.Meal{}).Select("id").Where("user_id = ?", userID),
		).Delete(&models.MealItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("workout_id IN (?)",
			tx.Model(&models.Workout{}).Select("id").Where("user_id = ?", userID),
		).Delete(&models.Exercise{}).Error; err != nil {
			return err
		}
		owned := []interface{}{
			&models.Meal{}, &models.Workout{}, &models.Measurement{},
			&models.WaterLog{}, &models.Notification{}, &models.Settings{},
		}
		for _, m := range owned {
			if err := tx.Where("user_id = ?", userID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}
