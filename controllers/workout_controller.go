package controllers

import (
	"net/http"
	"strconv"

	"github.com/LeonySales/SmallyFit1/services"

	"github.com/gin-gonic/gin"
)

type CreateWorkoutInput struct {
	Title     string                     `json:"title" binding:"required"`
	Type      string                     `json:"type" binding:"required"`
	Day       string                     `json:"day" binding:"required"`
	Exercises []services.ExerciseRequest `json:"exercises"`
}

func CreateWorkout(c *gin.Context) {
	uid := c.GetUint("userID")

	var input CreateWorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := services.CreateWorkout(uid, input.Title, input.Type, input.Day, input.Exercises)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

func TodayWorkout(c *gin.Context) {
	uid := c.GetUint("userID")

	workout, err := services.TodayWorkout(uid)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

func WorkoutSchedule(c *gin.Context) {
	uid := c.GetUint("userID")

	workouts, err := services.WorkoutSchedule(uid)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

type updateExerciseInput struct {
	Completed *bool `json:"completed" binding:"required"`
}

func UpdateExercise(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exercise id"})
		return
	}

	var input updateExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exercise, err := services.SetExerciseCompleted(uid, uint(id), *input.Completed)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

func CompleteWorkout(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workout id"})
		return
	}

	if err := services.CompleteWorkout(uid, uint(id)); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "workout completed"})
}
