package controllers

import (
	"net/http"

	"github.com/LeonySales/SmallyFit1/services"
	"github.com/LeonySales/SmallyFit1/utils"

	"github.com/gin-gonic/gin"
)

// CurrentBMI returns {"bmi": null} until the first measurement exists.
func CurrentBMI(c *gin.Context) {
	uid := c.GetUint("userID")

	latest, err := services.LatestMeasurement(uid)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if latest == nil {
		c.JSON(http.StatusOK, gin.H{"bmi": nil})
		return
	}

	bmi := utils.CalculateBMI(latest.Weight, latest.Height)
	c.JSON(http.StatusOK, gin.H{"bmi": bmi, "category": utils.BMICategory(bmi)})
}

func BMIHistory(c *gin.Context) {
	uid := c.GetUint("userID")

	points, err := services.BMIHistory(uid)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

func WeightHistory(c *gin.Context) {
	uid := c.GetUint("userID")

	progress, err := services.WeightHistory(uid)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

func GetUserStats(c *gin.Context) {
	uid := c.GetUint("userID")

	stats, err := services.GetUserStats(uid)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
