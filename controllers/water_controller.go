package controllers

import (
	"net/http"

	"github.com/LeonySales/SmallyFit1/services"
	"github.com/LeonySales/SmallyFit1/utils"

	"github.com/gin-gonic/gin"
)

func TodayWater(c *gin.Context) {
	uid := c.GetUint("userID")

	current, err := services.TodayWaterTotal(uid)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	goal := 2000 // default 2L until a measurement exists
	if latest, err := services.LatestMeasurement(uid); err == nil && latest != nil {
		goal = utils.RecommendedWaterIntakeML(latest.Weight)
	}

	c.JSON(http.StatusOK, gin.H{"current": current, "goal": goal})
}

type waterInput struct {
	Amount int `json:"amount" binding:"required"`
}

// AdjustWater records a signed ml delta; negative amounts undo intake.
func AdjustWater(c *gin.Context) {
	uid := c.GetUint("userID")

	var input waterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	total, err := services.AdjustWater(uid, input.Amount)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"amount": total})
}

func WaterHistory(c *gin.Context) {
	uid := c.GetUint("userID")

	history, err := services.WaterHistory(uid)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
