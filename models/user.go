package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name      string `gorm:"not null" json:"name"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	IsPremium bool   `gorm:"default:false" json:"is_premium"`
	IsAdmin   bool   `gorm:"default:false" json:"is_admin"`
}
