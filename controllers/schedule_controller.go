package controllers

import (
	"net/http"

	"github.com/Akoirala47/bett/config"
	"github.com/Akoirala47/bett/models"
	"github.com/Akoirala47/bett/services"

	"github.com/gin-gonic/gin"
)

func GetSchedule(c *gin.Context) {
	uid := c.GetUint("userID")

	schedule, err := services.GetSchedule(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if schedule == nil {
		c.JSON(http.StatusOK, gin.H{"schedule": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

type scheduleInput struct {
	GymDays     []int `json:"gym_days"`
	CalorieGoal *int  `json:"calorie_goal"`
}

func UpsertSchedule(c *gin.Context) {
	uid := c.GetUint("userID")

	var input scheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for _, d := range input.GymDays {
		if d < 0 || d > 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "gym_days must be weekday indices 0-6"})
			return
		}
	}
	if input.CalorieGoal != nil && *input.CalorieGoal <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "calorie_goal must be positive"})
		return
	}

	schedule, err := services.UpsertSchedule(uid, input.GymDays, input.CalorieGoal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

func GetRivalSchedule(c *gin.Context) {
	uid := c.GetUint("userID")

	var rival models.Profile
	if err := config.DB.Where("id <> ?", uid).First(&rival).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no rival yet"})
		return
	}

	schedule, err := services.GetSchedule(rival.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}
