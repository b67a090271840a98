package controllers

import (
	"net/http"

	"github.com/Akoirala47/bett/services"

	"github.com/gin-gonic/gin"
)

type GameController struct {
	Game *services.GameService
}

func NewGameController(gs *services.GameService) *GameController {
	return &GameController{Game: gs}
}

func (gc *GameController) Get(c *gin.Context) {
	state, err := gc.Game.GetOrCreate()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}
