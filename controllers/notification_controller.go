package controllers

import (
	"net/http"

	"github.com/LeonySales/SmallyFit1/services"

	"github.com/gin-gonic/gin"
)

func ListNotifications(c *gin.Context) {
	uid := c.GetUint("userID")

	notifications, err := services.ListNotifications(uid)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func MarkAllNotificationsRead(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := services.MarkAllNotificationsRead(uid); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "all notifications marked as read"})
}

func NotificationSettings(c *gin.Context) {
	uid := c.GetUint("userID")

	settings, err := services.NotificationSettings(uid)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

type toggleInput struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func UpdateNotificationSetting(c *gin.Context) {
	uid := c.GetUint("userID")
	id := c.Param("id")

	var input toggleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpdateNotificationSetting(uid, id, *input.Enabled); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "enabled": *input.Enabled})
}
