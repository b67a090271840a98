package controllers

import (
	"net/http"
	"strconv"

	"github.com/Akoirala47/bett/config"
	"github.com/Akoirala47/bett/models"

	"github.com/gin-gonic/gin"
)

// ListAlerts returns the caller's notification backlog, newest first.
func ListAlerts(c *gin.Context) {
	uid := c.GetUint("userID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	var alerts []models.Alert
	if err := config.DB.Where("user_id = ?", uid).
		Order("created_at desc").Limit(limit).Find(&alerts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
