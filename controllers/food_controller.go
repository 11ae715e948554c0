package controllers

import (
	"net/http"
	"strconv"

	"github.com/LeonySales/SmallyFit1/services"

	"github.com/gin-gonic/gin"
)

func ListFoodItems(c *gin.Context) {
	query := c.Query("q")

	var (
		foods interface{}
		err   error
	)
	if query != "" {
		foods, err = services.SearchFoodItems(query)
	} else {
		foods, err = services.ListFoodItems()
	}
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func GetFoodItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food item id"})
		return
	}

	food, err := services.GetFoodItem(uint(id))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

func CreateFoodItem(c *gin.Context) {
	var req services.FoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := services.CreateFoodItem(req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, food)
}
