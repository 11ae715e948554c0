package controllers

import (
	"net/http"

	"github.com/LeonySales/SmallyFit1/services"

	"github.com/gin-gonic/gin"
)

func CreateMeasurement(c *gin.Context) {
	uid := c.GetUint("userID")

	var req services.MeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	measurement, err := services.CreateMeasurement(uid, req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, measurement)
}

func LatestMeasurement(c *gin.Context) {
	uid := c.GetUint("userID")

	measurement, err := services.LatestMeasurement(uid)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, measurement)
}

func MeasurementHistory(c *gin.Context) {
	uid := c.GetUint("userID")

	measurements, err := services.MeasurementHistory(uid)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, measurements)
}
