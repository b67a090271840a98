package models

import "time"

// GameState is a singleton row (ID = 1) holding the shared wager pot.
// Both clients write it without locking; last write wins.
type GameState struct {
    ID        uint      `gorm:"primaryKey" json:"id"`
    PotAmount int       `json:"pot_amount"`
    UpdatedAt time.Time `json:"updated_at"`
}
