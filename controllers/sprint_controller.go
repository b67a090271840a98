package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Akoirala47/bett/config"
	"github.com/Akoirala47/bett/models"
	"github.com/Akoirala47/bett/services"

	"github.com/gin-gonic/gin"
)

type SprintController struct {
	Sprints *services.SprintService
}

func NewSprintController(ss *services.SprintService) *SprintController {
	return &SprintController{Sprints: ss}
}

// GetCurrent runs the lifecycle evaluation for the caller (rolling over an
// expired sprint, promoting a due pending one) and returns the result with
// derived progress.
func (sc *SprintController) GetCurrent(c *gin.Context) {
	uid := c.GetUint("userID")

	active, pending, err := sc.Sprints.EvaluateLifecycle(uid, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"sprint": active, "next_sprint": pending}
	if active != nil {
		resp["progress"] = services.Progress(active)
		resp["days_left"] = services.DaysLeft(active, time.Now())
	}
	c.JSON(http.StatusOK, resp)
}

func (sc *SprintController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.CreateSprintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sprint, err := sc.Sprints.Create(uid, input, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrActiveSprintExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"sprint": sprint})
}

func (sc *SprintController) PlanNext(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.CreateSprintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sprint, err := sc.Sprints.PlanNext(uid, input, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoActiveSprint):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrPendingSprintExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"sprint": sprint})
}

func (sc *SprintController) GetRival(c *gin.Context) {
	uid := c.GetUint("userID")

	var rival models.Profile
	if err := config.DB.Where("id <> ?", uid).First(&rival).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no rival yet"})
		return
	}

	sprint, err := sc.Sprints.RivalActive(rival.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"sprint": sprint}
	if sprint != nil {
		resp["progress"] = services.Progress(sprint)
		resp["days_left"] = services.DaysLeft(sprint, time.Now())
	}
	c.JSON(http.StatusOK, resp)
}
