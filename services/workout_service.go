package services

import (
	"errors"
	"sort"
	"time"

	"github.com/LeonySales/SmallyFit1/config"
	"github.com/LeonySales/SmallyFit1/models"

	"gorm.io/gorm"
)

type ExerciseRequest struct {
	Name string `json:"name" binding:"required"`
	Sets int    `json:"sets" binding:"required,gt=0"`
	Reps int    `json:"reps" binding:"required,gt=0"`
}

func CreateWorkout(userID uint, title, workoutType, day string, exercises []ExerciseRequest) (*models.Workout, error) {
	workout := models.Workout{
		UserID: userID,
		Title:  title,
		Type:   workoutType,
		Day:    day,
	}
	for _, ex := range exercises {
		workout.Exercises = append(workout.Exercises, models.Exercise{
			Name: ex.Name,
			Sets: ex.Sets,
			Reps: ex.Reps,
		})
	}

	if err := config.DB.Create(&workout).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

// TodayWorkout returns nil without error when nothing is scheduled for
// the current weekday.
func TodayWorkout(userID uint) (*models.Workout, error) {
	today := time.Now().Weekday().String()

	var workout models.Workout
	err := config.DB.
		Preload("Exercises").
		Where("user_id = ? AND day = ?", userID, today).
		First(&workout).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

var dayOrder = map[string]int{
	"Monday":    0,
	"Tuesday":   1,
	"Wednesday": 2,
	"Thursday":  3,
	"Friday":    4,
	"Saturday":  5,
	"Sunday":    6,
}

func sortWorkoutsByDay(workouts []models.Workout) {
	sort.SliceStable(workouts, func(i, j int) bool {
		return dayOrder[workouts[i].Day] < dayOrder[workouts[j].Day]
	})
}

func WorkoutSchedule(userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := config.DB.
		Preload("Exercises").
		Where("user_id = ?", userID).
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}

	sortWorkoutsByDay(workouts)
	return workouts, nil
}

// SetExerciseCompleted flips an exercise's completed flag after checking
// that its workout belongs to the caller.
func SetExerciseCompleted(userID, exerciseID uint, completed bool) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := config.DB.First(&exercise, exerciseID).Error; err != nil {
		return nil, err
	}

	var workout models.Workout
	if err := config.DB.First(&workout, exercise.WorkoutID).Error; err != nil {
		return nil, err
	}
	if workout.UserID != userID {
		return nil, ErrForbidden
	}

	exercise.Completed = completed
	if err := config.DB.Save(&exercise).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

// CompleteWorkout marks every exercise of the workout as done.
func CompleteWorkout(userID, workoutID uint) error {
	var workout models.Workout
	if err := config.DB.First(&workout, workoutID).Error; err != nil {
		return err
	}
	if workout.UserID != userID {
		return ErrForbidden
	}

	return config.DB.Model(&models.Exercise{}).
		Where("workout_id = ?", workoutID).
		Update("completed", true).Error
}
