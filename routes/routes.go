package routes

import (
	"github.com/LeonySales/SmallyFit1/controllers"
	"github.com/LeonySales/SmallyFit1/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	r.POST("/api/register", controllers.Register)
	r.POST("/api/login", controllers.Login)

	// Everything else requires a valid token
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user", controllers.GetCurrentUser)
		api.PATCH("/user", controllers.UpdateCurrentUser)
		api.POST("/user/change-password", controllers.ChangePassword)
		api.DELETE("/user", controllers.DeleteCurrentUser)
		api.GET("/user/stats", controllers.GetUserStats)
		api.GET("/subscription", controllers.GetSubscription)

		api.GET("/measurements/latest", controllers.LatestMeasurement)
		api.GET("/measurements/history", controllers.MeasurementHistory)
		api.POST("/measurements", controllers.CreateMeasurement)

		api.GET("/bmi/current", controllers.CurrentBMI)
		api.GET("/bmi/history", controllers.BMIHistory)
		api.GET("/weight/history", controllers.WeightHistory)

		api.GET("/water/today", controllers.TodayWater)
		api.GET("/water/history", controllers.WaterHistory)
		api.POST("/water", controllers.AdjustWater)

		api.GET("/workouts/today", controllers.TodayWorkout)
		api.GET("/workouts/schedule", controllers.WorkoutSchedule)
		api.POST("/workouts", controllers.CreateWorkout)
		api.PATCH("/workouts/:id/complete", controllers.CompleteWorkout)
		api.PATCH("/exercises/:id", controllers.UpdateExercise)

		api.GET("/notifications", controllers.ListNotifications)
		api.PATCH("/notifications/mark-all-read", controllers.MarkAllNotificationsRead)
		api.GET("/notifications/settings", controllers.NotificationSettings)
		api.PATCH("/notifications/settings/:id", controllers.UpdateNotificationSetting)

		api.GET("/settings", controllers.GetSettings)
		api.PATCH("/settings", controllers.UpdateSettings)

		api.GET("/food-items", controllers.ListFoodItems)
		api.GET("/food-items/:id", controllers.GetFoodItem)
		api.POST("/food-items", controllers.CreateFoodItem)

		api.GET("/meals", controllers.ListMeals)
		api.GET("/meals/:id", controllers.GetMeal)
		api.POST("/meals", controllers.CreateMeal)
		api.GET("/meals/:id/items", controllers.ListMealItems)
		api.POST("/meals/:id/items", controllers.AddMealItem)
		api.DELETE("/meal-items/:id", controllers.DeleteMealItem)
		api.GET("/nutrition/daily", controllers.DailySummary)
	}

	return r
}
