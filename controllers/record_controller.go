package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Akoirala47/bett/services"

	"github.com/gin-gonic/gin"
)

type RecordController struct {
	Records *services.RecordService
}

func NewRecordController(rs *services.RecordService) *RecordController {
	return &RecordController{Records: rs}
}

func (rc *RecordController) GetToday(c *gin.Context) {
	uid := c.GetUint("userID")

	record, err := rc.Records.Get(uid, time.Now().Format("2006-01-02"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": record})
}

func (rc *RecordController) ListRecent(c *gin.Context) {
	uid := c.GetUint("userID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "7"))
	records, err := rc.Records.Recent(uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (rc *RecordController) ListRivalRecent(c *gin.Context) {
	uid := c.GetUint("userID")

	rival, err := rc.Records.Rival(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rival == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no rival yet"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "14"))
	records, err := rc.Records.Recent(rival.ID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// UpsertDay writes the caller's record for :date (today included) and lets
// the dispatcher decide what the rival hears about it.
func (rc *RecordController) UpsertDay(c *gin.Context) {
	uid := c.GetUint("userID")

	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	var patch services.RecordPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if patch.CurrentCalories != nil && *patch.CurrentCalories < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "current_calories must be non-negative"})
		return
	}
	if patch.Weight != nil && *patch.Weight <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weight must be positive"})
		return
	}

	actor, err := services.FindProfile(uid)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	record, err := rc.Records.Upsert(*actor, date, patch, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": record})
}
