package controllers

import (
	"errors"
	"net/http"

	"github.com/Akoirala47/bett/config"
	"github.com/Akoirala47/bett/models"
	"github.com/Akoirala47/bett/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetMe(c *gin.Context) {
	uid := c.GetUint("userID")

	profile, err := services.FindProfile(uid)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetRival returns the other participant; 404 until they register.
func GetRival(c *gin.Context) {
	uid := c.GetUint("userID")

	var rival models.Profile
	err := config.DB.Where("id <> ?", uid).First(&rival).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no rival yet"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rival)
}
