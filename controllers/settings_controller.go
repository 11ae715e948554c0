package controllers

import (
	"net/http"

	"github.com/LeonySales/SmallyFit1/services"

	"github.com/gin-gonic/gin"
)

func GetSettings(c *gin.Context) {
	uid := c.GetUint("userID")

	settings, err := services.GetSettings(uid)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func UpdateSettings(c *gin.Context) {
	uid := c.GetUint("userID")

	var update services.SettingsUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := services.UpdateSettings(uid, update)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
