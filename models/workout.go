package models

import (
	"gorm.io/gorm"
)

// A Workout is scoped to a weekday label ("Monday", "Tuesday", …)
// and owns its exercises.
type Workout struct {
	gorm.Model
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	Title     string     `gorm:"not null" json:"title"`
	Type      string     `gorm:"not null" json:"type"`
	Day       string     `gorm:"not null" json:"day"`
	Exercises []Exercise `json:"exercises"`
}

type Exercise struct {
	gorm.Model
	WorkoutID uint   `gorm:"index;not null" json:"workout_id"`
	Name      string `gorm:"not null" json:"name"`
	Sets      int    `gorm:"not null" json:"sets"`
	Reps      int    `gorm:"not null" json:"reps"`
	Completed bool   `gorm:"default:false" json:"completed"`
}
