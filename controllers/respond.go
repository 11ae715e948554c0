package controllers

import (
	"errors"
	"net/http"

	"github.com/LeonySales/SmallyFit1/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// abortWithServiceError maps service errors onto the API's status codes.
// Entitlement denials carry a code so the client can render the upsell.
func abortWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrPremiumRequired):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error(), "code": "premium_required"})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
