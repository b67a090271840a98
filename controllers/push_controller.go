package controllers

import (
	"errors"
	"net/http"

	"github.com/Akoirala47/bett/models"
	"github.com/Akoirala47/bett/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PushController struct {
	DB    *gorm.DB
	Relay *services.PushRelay
}

func NewPushController(db *gorm.DB, relay *services.PushRelay) *PushController {
	return &PushController{DB: db, Relay: relay}
}

type subscribeInput struct {
	Endpoint string `json:"endpoint" binding:"required"`
	Keys     struct {
		P256dh string `json:"p256dh"`
		Auth   string `json:"auth"`
	} `json:"keys"`
}

// Subscribe persists the caller's push subscription. Re-posting the same
// endpoint returns the stored row unchanged; a new endpoint replaces the
// old one (at most one subscription per user).
func (pc *PushController) Subscribe(c *gin.Context) {
	uid := c.GetUint("userID")

	var input subscribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.PushSubscription
	err := pc.DB.Where("user_id = ?", uid).First(&existing).Error
	if err == nil {
		if existing.Endpoint == input.Endpoint {
			c.JSON(http.StatusOK, gin.H{"subscription": existing})
			return
		}
		existing.Endpoint = input.Endpoint
		existing.P256dh = input.Keys.P256dh
		existing.Auth = input.Keys.Auth
		if err := pc.DB.Save(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"subscription": existing})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sub := services.ExtractSubscription(uid, &services.AgentSubscription{
		Endpoint: input.Endpoint,
		P256dh:   input.Keys.P256dh,
		Auth:     input.Keys.Auth,
	})
	if err := pc.DB.Create(sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"subscription": sub})
}

func (pc *PushController) Unsubscribe(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := pc.DB.Where("user_id = ?", uid).Delete(&models.PushSubscription{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Send is the relay endpoint: look up the rival's subscription, sign and
// forward. 404 when no subscription is stored, 500 on delivery failure.
func (pc *PushController) Send(c *gin.Context) {
	var req services.RelayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rival_user_id required"})
		return
	}

	notification, err := pc.Relay.Send(req)
	if err != nil {
		if errors.Is(err, services.ErrNoSubscription) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No subscription found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Push sent",
		"notification": notification,
	})
}
