package services

import (
	"errors"

	"github.com/Akoirala47/bett/models"

	"gorm.io/gorm"
)

// gameStateID: the pot is a singleton row.
const gameStateID = 1

type GameService struct {
	db  *gorm.DB
	hub *RealtimeHub
}

func NewGameService(db *gorm.DB, hub *RealtimeHub) *GameService {
	return &GameService{db: db, hub: hub}
}

func (g *GameService) GetOrCreate() (*models.GameState, error) {
	var state models.GameState
	err := g.db.First(&state, gameStateID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		state = models.GameState{ID: gameStateID, PotAmount: 0}
		if err := g.db.Create(&state).Error; err != nil {
			return nil, err
		}
		return &state, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// AddToPot increments the shared pot. Read-modify-write with no
// compare-and-swap; concurrent increments from both clients race and the
// last write wins.
func (g *GameService) AddToPot(amount int) error {
	state, err := g.GetOrCreate()
	if err != nil {
		return err
	}
	previous := *state
	state.PotAmount += amount
	if err := g.db.Save(state).Error; err != nil {
		return err
	}
	if g.hub != nil {
		g.hub.BroadcastAll(Event{
			Kind:     "game.updated",
			Table:    "game_state",
			Previous: previous,
			Next:     state,
		})
	}
	return nil
}

func (g *GameService) PotAmount() int {
	state, err := g.GetOrCreate()
	if err != nil {
		return 0
	}
	return state.PotAmount
}
