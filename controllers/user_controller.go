package controllers

import (
	"net/http"
	"time"

	"github.com/LeonySales/SmallyFit1/services"

	"github.com/gin-gonic/gin"
)

func GetCurrentUser(c *gin.Context) {
	uid := c.GetUint("userID")

	user, err := services.GetUser(uid)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type UpdateUserInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

func UpdateCurrentUser(c *gin.Context) {
	uid := c.GetUint("userID")

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateUserProfile(uid, input.Name, input.Email)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

func ChangePassword(c *gin.Context) {
	uid := c.GetUint("userID")

	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.ChangePassword(uid, input.CurrentPassword, input.NewPassword); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}

func DeleteCurrentUser(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := services.DeleteAccount(uid); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

// GetSubscription reports premium/trial status so the client can decide
// when to show the upsell. Enforcement happens server-side regardless.
func GetSubscription(c *gin.Context) {
	uid := c.GetUint("userID")

	user, err := services.GetUser(uid)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.StatusForUser(user, time.Now()))
}
