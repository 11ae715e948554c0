package services

import (
	"testing"

	"github.com/LeonySales/SmallyFit1/models"

	"github.com/stretchr/testify/assert"
)

func TestSortWorkoutsByDay(t *testing.T) {
	workouts := []models.Workout{
		{Day: "Sunday", Title: "Stretching"},
		{Day: "Wednesday", Title: "Legs"},
		{Day: "Monday", Title: "Chest"},
		{Day: "Friday", Title: "Back"},
	}

	sortWorkoutsByDay(workouts)

	days := make([]string, len(workouts))
	for i, w := range workouts {
		days[i] = w.Day
	}
	assert.Equal(t, []string{"Monday", "Wednesday", "Friday", "Sunday"}, days)
}
